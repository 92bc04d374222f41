package terminal

import (
	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/fatih/color"
)

type palette struct {
	wall, corridor, door, passage, staircase *color.Color
	player, command, hint, result, heading   *color.Color
}

func newPalette(noColor bool) palette {
	p := palette{
		wall:      color.New(color.FgHiBlack),
		corridor:  color.New(color.FgWhite),
		door:      color.New(color.FgYellow),
		passage:   color.New(color.FgMagenta),
		staircase: color.New(color.FgCyan),
		player:    color.New(color.FgHiRed, color.Bold),
		command:   color.New(color.BgBlue, color.FgBlack),
		hint:      color.New(color.FgHiBlack),
		result:    color.New(color.FgGreen),
		heading:   color.New(color.FgWhite, color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{
			p.wall, p.corridor, p.door, p.passage, p.staircase, p.player, p.command, p.hint, p.result, p.heading,
		} {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) glyph(g byte) *color.Color {
	switch g {
	case board.GlyphSolid, board.GlyphWallH, board.GlyphWallV:
		return p.wall
	case board.GlyphDoorUp, board.GlyphDoorDown, board.GlyphDoorLeft, board.GlyphDoorRight:
		return p.door
	case board.GlyphPassageFwd, board.GlyphPassageBck:
		return p.passage
	case board.GlyphStaircase:
		return p.staircase
	default:
		return p.corridor
	}
}
