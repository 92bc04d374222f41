package game

import (
	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
	"github.com/google/uuid"
)

// Camera footage costs between these many donuts, decided once per game.
const (
	CameraMinCost = 2
	CameraMaxCost = 5
)

// UVClueChance is the probability that the murder room has a UV clue.
const UVClueChance = 0.75

// Options configure a new case.
type Options struct {
	Detective      string
	StartingDonuts int
}

// NewCase generates a case and puts the detective on the staircase.
func NewCase(src random.Source, opts Options) *State {
	rooms := make(map[models.RoomID]*RoomState, len(models.InvestigableRooms))
	for _, r := range models.InvestigableRooms {
		rooms[r] = &RoomState{}
	}

	answer := SelectAnswer(src)
	PlaceItems(src, rooms)
	PlaceClues(src, rooms, answer)

	return &State{
		ID:         uuid.New(),
		Detective:  opts.Detective,
		Answer:     answer,
		Rooms:      rooms,
		Position:   board.StartPosition,
		Room:       models.RoomStaircase,
		Visited:    map[models.RoomID]bool{models.RoomStaircase: true},
		Inventory:  Inventory{Donuts: opts.StartingDonuts},
		CameraCost: random.Between(src, CameraMinCost, CameraMaxCost),
	}
}

// SelectAnswer draws the suspect, weapon and room of the murder.
func SelectAnswer(src random.Source) models.Answer {
	return models.Answer{
		Suspect: models.Suspects[src.IntN(len(models.Suspects))],
		Weapon:  models.Weapons[src.IntN(len(models.Weapons))],
		Room:    models.InvestigableRooms[src.IntN(len(models.InvestigableRooms))],
	}
}

// PlaceItems hides each tool in a different room.
func PlaceItems(src random.Source, rooms map[models.RoomID]*RoomState) {
	for _, item := range models.Items {
		for {
			rs := rooms[models.InvestigableRooms[src.IntN(len(models.InvestigableRooms))]]
			if rs.Item == models.ItemNone {
				rs.Item = item
				break
			}
		}
	}
}

// PlaceClues leaves the weapon with the killer's fingerprints in a random room, the killer's DNA in the murder room
// and, most of the time, a UV clue in the murder room too. The weapon room and the murder room are drawn
// independently and may be the same room.
func PlaceClues(src random.Source, rooms map[models.RoomID]*RoomState, answer models.Answer) {
	weaponRoom := rooms[models.InvestigableRooms[src.IntN(len(models.InvestigableRooms))]]
	weaponRoom.Weapon = answer.Weapon
	weaponRoom.FingerprintOwner = answer.Suspect

	murderRoom := rooms[answer.Room]
	murderRoom.DNAOwner = answer.Suspect
	murderRoom.UVClue = random.Chance(src, UVClueChance)
}
