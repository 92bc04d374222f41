// Package board implements the mansion floor plan and the movement rules on it.
//
// The navigation state of the player is the pair (position, current room). Board is immutable and safe to share
// between games.
package board

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/models"
)

// Position is a cell on the board. X is the column and Y the row, both starting from the top-left corner.
type Position struct {
	X int
	Y int
}

// Offset is a relative movement on the board.
type Offset struct {
	DX int
	DY int
}

// Add returns p moved by o.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction is one of the four directions the player can walk in.
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists the directions in the order legal moves are reported.
var Directions = []Direction{Up, Down, Left, Right} //nolint:gochecknoglobals // constant list.

// Offset is the single-step movement in direction d.
func (d Direction) Offset() Offset {
	switch d {
	case Up:
		return Offset{DX: 0, DY: -1}
	case Down:
		return Offset{DX: 0, DY: 1}
	case Left:
		return Offset{DX: -1, DY: 0}
	case Right:
		return Offset{DX: 1, DY: 0}
	default:
		return Offset{}
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Command is the turn command that walks in direction d.
func (d Direction) Command() models.Command {
	switch d {
	case Up:
		return models.CommandUp
	case Down:
		return models.CommandDown
	case Left:
		return models.CommandLeft
	case Right:
		return models.CommandRight
	default:
		return models.CommandUnspecified
	}
}

// DirectionOf returns the direction a movement command walks in.
func DirectionOf(c models.Command) (Direction, bool) {
	for _, d := range Directions {
		if d.Command() == c {
			return d, true
		}
	}
	return 0, false
}

// Passage is the far end of a secret passage.
type Passage struct {
	// From is the room the passage starts in.
	From models.RoomID
	// To is the passage cell on the other end.
	To Position
	// Room is the room the passage leads into.
	Room models.RoomID
}

// Transition is the navigation state after a legal move.
type Transition struct {
	From Position
	To   Position
	// Room is the room the player is in after the move, models.RoomNone in corridors.
	Room models.RoomID
	// ThroughDoor is true when the move jumped through a door.
	ThroughDoor bool
}

// Board is the mansion floor plan.
type Board struct {
	rows []string
}

// New returns the mansion floor plan. It panics if the compiled-in layout is inconsistent, which the tests guard
// against.
func New() *Board {
	b := &Board{rows: strings.Split(layout, "\n")}
	if err := b.validate(); err != nil {
		panic(err)
	}
	return b
}

// Rows returns the glyph rows of the board, top row first.
func (b *Board) Rows() []string {
	return append([]string(nil), b.rows...)
}

// Glyph returns the glyph at p. Cells outside the board are solid.
func (b *Board) Glyph(p Position) byte {
	if p.X < 0 || p.Y < 0 || p.X >= Width || p.Y >= Height {
		return GlyphSolid
	}
	return b.rows[p.Y][p.X]
}

// Walkable reports whether the player may stand on p.
func (b *Board) Walkable(p Position) bool {
	switch b.Glyph(p) {
	case GlyphSolid, GlyphWallH, GlyphWallV:
		return false
	default:
		return true
	}
}

// LegalMoves returns the directions the player can move in from p, in the order of Directions.
func (b *Board) LegalMoves(p Position) []Direction {
	var moves []Direction
	for _, d := range Directions {
		if _, _, ok := b.target(p, d); ok {
			moves = append(moves, d)
		}
	}
	return moves
}

// Move applies a step in direction d from at while the player is in room. It returns false if the move is not legal.
//
// Going through a door or walking up off the staircase leaves the current room. Arriving on a room's entrance enters
// that room. Any other arrival leaves the room unchanged.
func (b *Board) Move(at Position, room models.RoomID, d Direction) (Transition, bool) {
	to, door, ok := b.target(at, d)
	if !ok {
		return Transition{}, false
	}
	next := room
	if door || (room == models.RoomStaircase && d == Up) {
		next = models.RoomNone
	}
	if entered, found := b.RoomAt(to); found {
		next = entered
	}
	return Transition{From: at, To: to, Room: next, ThroughDoor: door}, true
}

// target computes where a step from p in direction d lands and whether it went through a door.
func (b *Board) target(p Position, d Direction) (Position, bool, bool) {
	if doorDir, isDoor := doorDirection(b.Glyph(p)); isDoor && doorDir == d {
		offset, skewed := skewedDoors[doorKey{at: p, dir: d}]
		if !skewed {
			step := d.Offset()
			offset = Offset{DX: 2 * step.DX, DY: 2 * step.DY}
		}
		return p.Add(offset), true, true
	}
	next := p.Add(d.Offset())
	if !b.Walkable(next) {
		return Position{}, false, false
	}
	return next, false, true
}

// RoomAt returns the room whose entrance is at p. The second return value is false when p is no room's entrance,
// which is the normal case in corridors.
func (b *Board) RoomAt(p Position) (models.RoomID, bool) {
	for _, room := range models.AllRooms {
		for _, e := range entrances[room] {
			if e == p {
				return room, true
			}
		}
	}
	return models.RoomNone, false
}

// Entrances returns the entrance cells of room.
func (b *Board) Entrances(room models.RoomID) []Position {
	return append([]Position(nil), entrances[room]...)
}

// PassageAt returns the secret passage starting at p, if any.
func (b *Board) PassageAt(p Position) (Passage, bool) {
	passage, ok := passages[p]
	return passage, ok
}

func doorDirection(glyph byte) (Direction, bool) {
	switch glyph {
	case GlyphDoorUp:
		return Up, true
	case GlyphDoorDown:
		return Down, true
	case GlyphDoorLeft:
		return Left, true
	case GlyphDoorRight:
		return Right, true
	default:
		return 0, false
	}
}

// validate checks that the layout and the registries agree with each other.
func (b *Board) validate() error {
	if len(b.rows) != Height {
		return errors.New("unexpected layout height", slog.Int("rows", len(b.rows)))
	}
	for y, row := range b.rows {
		if len(row) != Width {
			return errors.New("unexpected layout width", slog.Int("row", y), slog.Int("cells", len(row)))
		}
		for x := range row {
			p := Position{X: x, Y: y}
			if dir, isDoor := doorDirection(row[x]); isDoor {
				to, _, _ := b.target(p, dir)
				if !b.Walkable(to) {
					return errors.New("door leads into a wall",
						slog.String("door", p.String()), slog.String("target", to.String()))
				}
			}
		}
	}
	for room, cells := range entrances {
		for _, p := range cells {
			if !b.Walkable(p) {
				return errors.New("entrance is not walkable",
					slog.String("room", room.String()), slog.String("entrance", p.String()))
			}
		}
	}
	for p, passage := range passages {
		if g := b.Glyph(p); g != GlyphPassageFwd && g != GlyphPassageBck {
			return errors.New("passage cell has wrong glyph", slog.String("passage", p.String()))
		}
		if back, ok := passages[passage.To]; !ok || back.To != p {
			return errors.New("passage is not paired", slog.String("passage", p.String()))
		}
	}
	return nil
}
