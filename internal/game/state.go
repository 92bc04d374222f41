// Package game runs a murder investigation from case generation to accusation.
package game

import (
	"slices"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/errors"
	"github.com/27achang/2024WinterFinal/internal/evidence"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/google/uuid"
)

// MaxActionableTurns is how many actionable turns the detective has before the killer gets away.
const MaxActionableTurns = 250

// DefaultStartingDonuts is how many donuts the detective brings to bribe Joseph with.
const DefaultStartingDonuts = 10

// ErrGameOver is returned when a finished game is played on.
var ErrGameOver = errors.NewSentinel("game over")

// RoomState is what the case generator hid in a room.
type RoomState struct {
	Item             models.Item
	Weapon           models.Weapon
	FingerprintOwner models.Suspect
	DNAOwner         models.Suspect
	UVClue           bool
}

// Inventory is what the detective carries.
type Inventory struct {
	Tools        []models.Item
	DNA          *evidence.DNASample
	Fingerprints *evidence.FingerprintSample
	Donuts       int
}

// Has reports whether the detective carries tool.
func (inv Inventory) Has(tool models.Item) bool {
	return slices.Contains(inv.Tools, tool)
}

// Empty reports whether there is nothing to look at in the bag.
func (inv Inventory) Empty() bool {
	return len(inv.Tools) == 0 && inv.DNA == nil && inv.Fingerprints == nil && inv.Donuts == 0
}

// State is one game. Every room of the mansion has its own RoomState in Rooms, so two games never share anything.
type State struct {
	ID        uuid.UUID
	Detective string
	Answer    models.Answer
	Rooms     map[models.RoomID]*RoomState

	Position board.Position
	// Room is models.RoomNone while in a corridor.
	Room    models.RoomID
	Visited map[models.RoomID]bool

	Inventory  Inventory
	Lab        evidence.Lab
	CameraCost int

	Stats models.Stats
	Log   []models.LogEntry

	Over    bool
	Outcome models.Outcome
}

// Snapshot is what the host shell renders before each prompt.
type Snapshot struct {
	Position       board.Position
	Room           models.RoomID
	Inventory      Inventory
	Turn           int
	TurnsRemaining int
}

// Snapshot returns the current view of s for rendering.
func (s *State) Snapshot() Snapshot {
	inv := s.Inventory
	inv.Tools = slices.Clone(inv.Tools)
	return Snapshot{
		Position:       s.Position,
		Room:           s.Room,
		Inventory:      inv,
		Turn:           s.Stats.ActionableTurns + 1,
		TurnsRemaining: max(0, MaxActionableTurns-s.Stats.ActionableTurns),
	}
}

// CurrentRoom returns the state of the room the detective is standing in. The second return value is false in
// corridors and on the staircase.
func (s *State) CurrentRoom() (*RoomState, bool) {
	if !s.Room.Investigable() {
		return nil, false
	}
	rs, ok := s.Rooms[s.Room]
	return rs, ok
}

// turn is the actionable turn being played.
func (s *State) turn() int {
	return s.Stats.ActionableTurns + 1
}

func (s *State) addLog(text string) {
	s.Log = append(s.Log, models.LogEntry{Turn: s.turn(), Text: text})
}

// enter moves the detective to to in room and reports whether this is the first visit of the room.
func (s *State) enter(to board.Position, room models.RoomID) bool {
	s.Position = to
	s.Room = room
	if room == models.RoomNone || s.Visited[room] {
		return false
	}
	s.Visited[room] = true
	return true
}
