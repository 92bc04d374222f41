package board_test

import (
	"testing"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/stretchr/testify/require"
)

func pos(x, y int) board.Position {
	return board.Position{X: x, Y: y}
}

func TestNew(t *testing.T) {
	b := board.New()
	rows := b.Rows()
	require.Len(t, rows, board.Height)
	for _, row := range rows {
		require.Len(t, row, board.Width)
	}
	room, ok := b.RoomAt(board.StartPosition)
	require.True(t, ok)
	require.Equal(t, models.RoomStaircase, room)
}

func TestEveryRoomHasEntrances(t *testing.T) {
	b := board.New()
	for _, room := range models.AllRooms {
		require.NotEmpty(t, b.Entrances(room), room.String())
		for _, e := range b.Entrances(room) {
			got, ok := b.RoomAt(e)
			require.True(t, ok)
			require.Equal(t, room, got)
		}
	}
}

func TestRoomAtMiss(t *testing.T) {
	b := board.New()
	room, ok := b.RoomAt(pos(8, 8))
	require.False(t, ok, "corridor is no room")
	require.Equal(t, models.RoomNone, room)
}

func TestDoors(t *testing.T) {
	b := board.New()
	tests := []struct {
		name     string
		from     board.Position
		room     models.RoomID
		dir      board.Direction
		wantTo   board.Position
		wantRoom models.RoomID
	}{
		{name: "leave hall west", from: pos(11, 5), room: models.RoomHall, dir: board.Left, wantTo: pos(9, 5)},
		{name: "enter hall west", from: pos(9, 5), dir: board.Right, wantTo: pos(11, 5), wantRoom: models.RoomHall},
		{name: "leave hall south", from: pos(12, 6), room: models.RoomHall, dir: board.Down, wantTo: pos(12, 8)},
		{name: "enter hall south", from: pos(13, 8), dir: board.Up, wantTo: pos(13, 6), wantRoom: models.RoomHall},
		{name: "leave library east", from: pos(6, 9), room: models.RoomLibrary, dir: board.Right, wantTo: pos(8, 9)},
		{name: "enter library south", from: pos(4, 12), dir: board.Up, wantTo: pos(4, 10), wantRoom: models.RoomLibrary},
		{name: "enter billiard room north", from: pos(2, 12), dir: board.Down, wantTo: pos(2, 14), wantRoom: models.RoomBilliardRoom},
		{name: "leave billiard room east", from: pos(5, 16), room: models.RoomBilliardRoom, dir: board.Right, wantTo: pos(7, 16)},
		{name: "enter dining room", from: pos(16, 13), dir: board.Right, wantTo: pos(18, 13), wantRoom: models.RoomDiningRoom},
		{name: "leave kitchen", from: pos(20, 20), room: models.RoomKitchen, dir: board.Up, wantTo: pos(20, 18)},
		{name: "enter ballroom east", from: pos(17, 20), dir: board.Left, wantTo: pos(15, 20), wantRoom: models.RoomBallroom},
		{name: "leave ballroom west", from: pos(10, 19), room: models.RoomBallroom, dir: board.Left, wantTo: pos(8, 19)},
		{name: "leave study skewed", from: pos(6, 3), room: models.RoomStudy, dir: board.Down, wantTo: pos(7, 5)},
		{name: "enter study skewed", from: pos(7, 5), dir: board.Up, wantTo: pos(6, 3), wantRoom: models.RoomStudy},
		{name: "leave lounge skewed", from: pos(19, 5), room: models.RoomLounge, dir: board.Down, wantTo: pos(18, 7)},
		{name: "enter lounge skewed", from: pos(18, 7), dir: board.Up, wantTo: pos(19, 5), wantRoom: models.RoomLounge},
		{name: "leave conservatory skewed", from: pos(5, 21), room: models.RoomConservatory, dir: board.Up, wantTo: pos(6, 19)},
		{name: "enter conservatory skewed", from: pos(6, 19), dir: board.Down, wantTo: pos(5, 21), wantRoom: models.RoomConservatory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, ok := b.Move(tt.from, tt.room, tt.dir)
			require.True(t, ok)
			require.True(t, tr.ThroughDoor)
			require.Equal(t, tt.wantTo, tr.To)
			require.Equal(t, tt.wantRoom, tr.Room)
		})
	}
}

func TestStaircase(t *testing.T) {
	b := board.New()

	require.Equal(t, []board.Direction{board.Up, board.Left, board.Right}, b.LegalMoves(pos(12, 9)))
	require.Equal(t, []board.Direction{board.Up, board.Right}, b.LegalMoves(pos(11, 9)))

	tr, ok := b.Move(pos(12, 9), models.RoomStaircase, board.Up)
	require.True(t, ok)
	require.False(t, tr.ThroughDoor)
	require.Equal(t, pos(12, 8), tr.To)
	require.Equal(t, models.RoomNone, tr.Room, "walking up leaves the staircase")

	tr, ok = b.Move(pos(12, 8), models.RoomNone, board.Down)
	require.True(t, ok)
	require.Equal(t, models.RoomStaircase, tr.Room)

	tr, ok = b.Move(pos(12, 9), models.RoomStaircase, board.Right)
	require.True(t, ok)
	require.Equal(t, models.RoomStaircase, tr.Room)
}

func TestWallsBlock(t *testing.T) {
	b := board.New()
	tests := []struct {
		name string
		from board.Position
		dir  board.Direction
	}{
		{name: "vertical wall", from: pos(9, 9), dir: board.Right},
		{name: "horizontal wall", from: pos(8, 4), dir: board.Left},
		{name: "solid room interior", from: pos(12, 6), dir: board.Up},
		{name: "off the board", from: pos(0, 12), dir: board.Left},
		{name: "door only opens its own way", from: pos(11, 5), dir: board.Up},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := b.Move(tt.from, models.RoomNone, tt.dir)
			require.False(t, ok)
			require.NotContains(t, b.LegalMoves(tt.from), tt.dir)
		})
	}
}

func TestWalkingWithinRoomKeepsRoom(t *testing.T) {
	b := board.New()

	tr, ok := b.Move(pos(6, 3), models.RoomStudy, board.Left)
	require.True(t, ok)
	require.Equal(t, pos(5, 3), tr.To)
	require.Equal(t, models.RoomStudy, tr.Room, "passage cell is no entrance, the room is kept")

	tr, ok = b.Move(pos(10, 19), models.RoomBallroom, board.Down)
	require.True(t, ok)
	require.Equal(t, models.RoomBallroom, tr.Room)
}

func TestPassages(t *testing.T) {
	b := board.New()
	tests := []struct {
		from     board.Position
		wantTo   board.Position
		wantRoom models.RoomID
	}{
		{from: pos(5, 3), wantTo: pos(21, 20), wantRoom: models.RoomKitchen},
		{from: pos(21, 20), wantTo: pos(5, 3), wantRoom: models.RoomStudy},
		{from: pos(20, 5), wantTo: pos(4, 21), wantRoom: models.RoomConservatory},
		{from: pos(4, 21), wantTo: pos(20, 5), wantRoom: models.RoomLounge},
	}
	for _, tt := range tests {
		t.Run(tt.wantRoom.String(), func(t *testing.T) {
			p, ok := b.PassageAt(tt.from)
			require.True(t, ok)
			require.Equal(t, tt.wantTo, p.To)
			require.Equal(t, tt.wantRoom, p.Room)

			// The passage cell is reachable from the room's entrance.
			reachable := false
			for _, e := range b.Entrances(p.From) {
				for _, d := range b.LegalMoves(e) {
					if tr, _ := b.Move(e, p.From, d); tr.To == tt.from {
						reachable = true
					}
				}
			}
			require.True(t, reachable)
		})
	}

	_, ok := b.PassageAt(board.StartPosition)
	require.False(t, ok)
}

func TestEveryCorridorIsConnected(t *testing.T) {
	b := board.New()
	seen := map[board.Position]bool{board.StartPosition: true}
	queue := []board.Position{board.StartPosition}
	room := map[board.Position]models.RoomID{board.StartPosition: models.RoomStaircase}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range b.LegalMoves(p) {
			tr, ok := b.Move(p, room[p], d)
			require.True(t, ok)
			if !seen[tr.To] {
				seen[tr.To] = true
				room[tr.To] = tr.Room
				queue = append(queue, tr.To)
			}
		}
		if passage, ok := b.PassageAt(p); ok && !seen[passage.To] {
			seen[passage.To] = true
			room[passage.To] = passage.Room
			queue = append(queue, passage.To)
		}
	}

	for y, row := range b.Rows() {
		for x := range row {
			p := pos(x, y)
			if b.Walkable(p) {
				require.True(t, seen[p], "cell %s is unreachable", p)
			}
		}
	}
	for _, r := range models.AllRooms {
		for _, e := range b.Entrances(r) {
			require.Equal(t, r, room[e])
		}
	}
}

func TestDirectionOf(t *testing.T) {
	for _, d := range board.Directions {
		got, ok := board.DirectionOf(d.Command())
		require.True(t, ok)
		require.Equal(t, d, got)
	}
	_, ok := board.DirectionOf(models.CommandSearch)
	require.False(t, ok)
}
