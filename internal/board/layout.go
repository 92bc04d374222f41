package board

import "github.com/27achang/2024WinterFinal/internal/models"

// Width and Height of the mansion floor plan in cells.
const (
	Width  = 24
	Height = 25
)

// Cell glyphs.
const (
	GlyphSolid      = 'X'
	GlyphWallH      = '-'
	GlyphWallV      = '|'
	GlyphCorridor   = '.'
	GlyphStaircase  = 'S'
	GlyphDoorUp     = '^'
	GlyphDoorDown   = 'v'
	GlyphDoorLeft   = '<'
	GlyphDoorRight  = '>'
	GlyphPassageFwd = '/'
	GlyphPassageBck = '\\'
)

// layout is the mansion floor plan, row 0 at the top. Door glyphs come in pairs: the one on a room's entrance cell
// points out of the room and the one on the corridor cell two steps away points back in.
const layout = `XXXXXXX|..|XXXX|.|XXXXXX
XXXXXXX|..|XXXX|.|XXXXXX
XXXXXXX|..|XXXX|.|XXXXXX
XXXXX\v|..|XXXX|.|XXXXXX
--------..|XXXX|.|XXXXXX
.......^.>|<XXX|.|Xv/XXX
--------..|XvvX|.-------
XXXXXXX|..------..^.....
XXXXXXX|....^^..........
XXXXXX>|<.|SSS|..-------
XXXXvXX|..|XXX|..|XXXXXX
--------..|XXX|.>|<XXXXX
..v.^.....|XXX|..|XXXXXX
-------...|XXX|.>|<XXXXX
XX^XXX|...|XXX|..|XXXXXX
XXXXXX|...-----..|XXXXXX
XXXXX>|<.........-------
XXXXXX|..-------........
-------..|XXXXXX|...v...
......v.>|<XXXX>|<------
-------->|<XXXX>|<|X^\XX
XXXX/^X|.|XXXXXX|.|XXXXX
XXXXXXX|.|XXXXXX|.|XXXXX
XXXXXXX|.|XXXXXX|.|XXXXX
XXXXXXX|.|XXXXXX|.|XXXXX`

// StartPosition is where the detective begins: the staircase, next to Detective Joseph.
var StartPosition = Position{X: 12, Y: 9} //nolint:gochecknoglobals // constant position.

// entrances registers the cells on which the player counts as being inside a room.
var entrances = map[models.RoomID][]Position{ //nolint:gochecknoglobals // fixed floor plan.
	models.RoomHall:         {{11, 5}, {12, 6}, {13, 6}},
	models.RoomLounge:       {{19, 5}},
	models.RoomDiningRoom:   {{18, 11}, {18, 13}},
	models.RoomKitchen:      {{20, 20}},
	models.RoomBallroom:     {{10, 19}, {15, 19}, {10, 20}, {15, 20}},
	models.RoomConservatory: {{5, 21}},
	models.RoomBilliardRoom: {{2, 14}, {5, 16}},
	models.RoomLibrary:      {{6, 9}, {4, 10}},
	models.RoomStudy:        {{6, 3}},
	models.RoomStaircase:    {{11, 9}, {12, 9}, {13, 9}},
}

// passages are the secret passage cells. Each leads to the passage cell in the diagonally opposite corner.
var passages = map[Position]Passage{ //nolint:gochecknoglobals // fixed floor plan.
	{5, 3}:   {From: models.RoomStudy, To: Position{21, 20}, Room: models.RoomKitchen},
	{21, 20}: {From: models.RoomKitchen, To: Position{5, 3}, Room: models.RoomStudy},
	{20, 5}:  {From: models.RoomLounge, To: Position{4, 21}, Room: models.RoomConservatory},
	{4, 21}:  {From: models.RoomConservatory, To: Position{20, 5}, Room: models.RoomLounge},
}

type doorKey struct {
	at  Position
	dir Direction
}

// skewedDoors are the corner-room doors that open diagonally instead of straight through the wall.
var skewedDoors = map[doorKey]Offset{ //nolint:gochecknoglobals // fixed floor plan.
	{Position{6, 3}, Down}:  {DX: 1, DY: 2},   // Study, leaving.
	{Position{7, 5}, Up}:    {DX: -1, DY: -2}, // Study, entering.
	{Position{19, 5}, Down}: {DX: -1, DY: 2},  // Lounge, leaving.
	{Position{18, 7}, Up}:   {DX: 1, DY: -2},  // Lounge, entering.
	{Position{5, 21}, Up}:   {DX: 1, DY: -2},  // Conservatory, leaving.
	{Position{6, 19}, Down}: {DX: -1, DY: 2},  // Conservatory, entering.
}
