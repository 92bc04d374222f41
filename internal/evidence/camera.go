package evidence

import (
	"fmt"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
)

// Camera footage takes between these many actionable turns to arrive.
const (
	CameraMinDelay = 8
	CameraMaxDelay = 10
)

// Reveal thresholds for camera footage. A field is revealed truthfully when the roll is below the reveal threshold
// and replaced by a red herring when the roll is at or above the red herring threshold.
const (
	roomReveal        = 0.8
	roomRedHerring    = 0.9
	weaponReveal      = 0.35
	suspectReveal     = 0.1
	fieldRedHerring   = 0.9
	footagePrefix     = "The footage that you requested from the night of the murder showed "
	footageNoActivity = "no activity."
)

// CameraResult is the security footage Joseph pulled for the detective. Fields that the footage does not show are
// the zero value of their type. Every field is decided once when the footage is requested.
type CameraResult struct {
	// Target is the room whose cameras the detective asked for.
	Target models.RoomID

	Room              models.RoomID
	RoomRedHerring    bool
	Weapon            models.Weapon
	WeaponRedHerring  bool
	Suspect           models.Suspect
	SuspectRedHerring bool

	Delay int
}

// NewCameraResult rolls what the footage of target shows of the murder described by answer.
//
// The room is shown truthfully 80% of the time, replaced by a red herring 10% of the time and otherwise missing. When
// the room is missing the footage shows nothing at all. The weapon is then shown 35% of the time and the suspect 10%
// of the time, each replaced by a red herring 10% of the time.
func NewCameraResult(src random.Source, target models.RoomID, answer models.Answer) CameraResult {
	c := CameraResult{
		Target: target,
		Delay:  random.Between(src, CameraMinDelay, CameraMaxDelay),
	}

	r := src.Float64()
	switch {
	case r < roomReveal:
		c.Room = answer.Room
	case r < roomRedHerring:
		c.Room = pickOther(src, models.InvestigableRooms, answer.Room)
		c.RoomRedHerring = true
	default:
		return c
	}

	if r := src.Float64(); r < weaponReveal {
		c.Weapon = answer.Weapon
	} else if r >= fieldRedHerring {
		c.Weapon = pickOther(src, models.Weapons, answer.Weapon)
		c.WeaponRedHerring = true
	}

	if r := src.Float64(); r < suspectReveal {
		c.Suspect = answer.Suspect
	} else if r >= fieldRedHerring {
		c.Suspect = pickOther(src, models.Suspects, answer.Suspect)
		c.SuspectRedHerring = true
	}

	return c
}

// pickOther draws uniformly from values without not.
func pickOther[T comparable](src random.Source, values []T, not T) T {
	others := make([]T, 0, len(values))
	for _, v := range values {
		if v != not {
			others = append(others, v)
		}
	}
	return others[src.IntN(len(others))]
}

// Message describes the footage.
func (c CameraResult) Message() string {
	return CameraMessage(c.Room, c.RoomRedHerring, c.Weapon, c.WeaponRedHerring, c.Suspect, c.SuspectRedHerring)
}

// CameraMessage describes footage showing room, weapon and suspect. The zero value of a field means the footage does
// not show it. The result depends on nothing but its arguments.
func CameraMessage(
	room models.RoomID, roomRH bool,
	weapon models.Weapon, weaponRH bool,
	suspect models.Suspect, suspectRH bool,
) string {
	if room == models.RoomNone {
		return footagePrefix + footageNoActivity
	}

	r := strings.ToLower(room.String())
	w := strings.ToLower(weapon.String())
	hasWeapon := weapon != models.WeaponNone
	hasSuspect := suspect != models.SuspectUnknown

	var body string
	if !roomRH {
		switch {
		case hasWeapon && !weaponRH && hasSuspect && !suspectRH:
			body = fmt.Sprintf("%s killing Thompson with a %s in the %s.", suspect, w, r)
		case hasWeapon && !weaponRH && hasSuspect:
			body = fmt.Sprintf("%s passing through the %s with a bloody %s and a dead body in the background.",
				suspect, r, w)
		case hasWeapon && !weaponRH:
			body = fmt.Sprintf("a figure killing Thompson with a %s in the %s.", w, r)
		case hasWeapon && hasSuspect && !suspectRH:
			body = fmt.Sprintf("%s holding a %s with some red liquid on it in the %s.", suspect, w, r)
		case hasWeapon && hasSuspect:
			body = fmt.Sprintf("%s passing through the %s with a %s with some red liquid on it and a dead body in "+
				"the background.", suspect, r, w)
		case hasWeapon:
			body = fmt.Sprintf("a figure holding a %s with some red liquid on it in the %s.", w, r)
		case hasSuspect && !suspectRH:
			body = fmt.Sprintf("%s killing Thompson in the %s.", suspect, r)
		case hasSuspect:
			body = fmt.Sprintf("%s passing through the %s with a dead body in the background.", suspect, r)
		default:
			body = fmt.Sprintf("a figure killing Thompson in the %s.", r)
		}
		return footagePrefix + body
	}

	// A red herring room never shows the body.
	switch {
	case hasWeapon && !weaponRH && hasSuspect && !suspectRH:
		body = fmt.Sprintf("%s holding a bloody %s sneaking across the back wall of the %s.", suspect, w, r)
	case hasWeapon && !weaponRH && hasSuspect:
		body = fmt.Sprintf("%s passing through the %s with a bloody %s in the background.", suspect, r, w)
	case hasWeapon && !weaponRH:
		body = fmt.Sprintf("a bloody %s in the %s.", w, r)
	case hasWeapon && hasSuspect && !suspectRH:
		body = fmt.Sprintf("%s holding a %s with some red liquid on it sneaking across the back wall of the %s.",
			suspect, w, r)
	case hasWeapon && hasSuspect:
		body = fmt.Sprintf("%s passing through the %s with a %s with some red liquid on it in the background.",
			suspect, r, w)
	case hasWeapon:
		body = fmt.Sprintf("a %s with some red liquid on it in the %s.", w, r)
	case hasSuspect && !suspectRH:
		body = fmt.Sprintf("%s sneaking across the back wall of the %s.", suspect, r)
	case hasSuspect:
		body = fmt.Sprintf("%s passing through the %s.", suspect, r)
	default:
		body = fmt.Sprintf("some activity in the %s.", r)
	}
	return footagePrefix + body
}
