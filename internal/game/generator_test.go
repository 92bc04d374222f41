package game_test

import (
	"testing"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/game"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
	"github.com/27achang/2024WinterFinal/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func TestNewCaseInvariants(t *testing.T) {
	for seed := range int64(500) {
		s := game.NewCase(random.New(seed), game.Options{StartingDonuts: 7})

		require.Len(t, s.Rooms, len(models.InvestigableRooms))
		var weaponRooms, dnaRooms int
		items := map[models.Item]models.RoomID{}
		for id, rs := range s.Rooms {
			require.True(t, id.Investigable())
			if rs.Weapon != models.WeaponNone {
				weaponRooms++
				require.Equal(t, s.Answer.Weapon, rs.Weapon)
				require.Equal(t, s.Answer.Suspect, rs.FingerprintOwner)
			}
			if rs.DNAOwner != models.SuspectUnknown {
				dnaRooms++
				require.Equal(t, s.Answer.Room, id)
				require.Equal(t, s.Answer.Suspect, rs.DNAOwner)
			}
			if rs.UVClue {
				require.Equal(t, s.Answer.Room, id)
			}
			if rs.Item != models.ItemNone {
				_, dup := items[rs.Item]
				require.False(t, dup)
				items[rs.Item] = id
			}
		}
		require.Equal(t, 1, weaponRooms)
		require.Equal(t, 1, dnaRooms)
		require.Len(t, items, len(models.Items))

		require.GreaterOrEqual(t, s.CameraCost, game.CameraMinCost)
		require.LessOrEqual(t, s.CameraCost, game.CameraMaxCost)
		require.Equal(t, 7, s.Inventory.Donuts)
		require.Equal(t, board.StartPosition, s.Position)
		require.Equal(t, models.RoomStaircase, s.Room)
	}
}

func TestNewCaseIsReproducible(t *testing.T) {
	a := game.NewCase(random.New(99), game.Options{})
	b := game.NewCase(random.New(99), game.Options{})
	require.Equal(t, a.Answer, b.Answer)
	require.Equal(t, a.CameraCost, b.CameraCost)
	for id := range a.Rooms {
		require.Equal(t, *a.Rooms[id], *b.Rooms[id])
	}
	require.NotEqual(t, a.ID, b.ID)
}

func TestPlaceItemsRetriesTakenRooms(t *testing.T) {
	rooms := map[models.RoomID]*game.RoomState{}
	for _, r := range models.InvestigableRooms {
		rooms[r] = &game.RoomState{}
	}
	// The second and third tool first land on the Hall, which is already taken.
	src := &testhelpers.ScriptedSource{Ints: []int{0, 0, 1, 0, 0, 2}}
	game.PlaceItems(src, rooms)

	require.Equal(t, models.ItemFingerprintCollector, rooms[models.RoomHall].Item)
	require.Equal(t, models.ItemDNACollector, rooms[models.RoomLounge].Item)
	require.Equal(t, models.ItemUVScanner, rooms[models.RoomDiningRoom].Item)
}

func TestPlaceCluesSameRoom(t *testing.T) {
	rooms := map[models.RoomID]*game.RoomState{}
	for _, r := range models.InvestigableRooms {
		rooms[r] = &game.RoomState{}
	}
	answer := models.Answer{Suspect: models.SuspectGreen, Weapon: models.WeaponRevolver, Room: models.RoomKitchen}
	src := &testhelpers.ScriptedSource{Ints: []int{3}, Floats: []float64{0.8}}
	game.PlaceClues(src, rooms, answer)

	kitchen := rooms[models.RoomKitchen]
	require.Equal(t, models.WeaponRevolver, kitchen.Weapon)
	require.Equal(t, models.SuspectGreen, kitchen.FingerprintOwner)
	require.Equal(t, models.SuspectGreen, kitchen.DNAOwner)
	require.False(t, kitchen.UVClue)
}
