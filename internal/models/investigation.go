package models

// Suspect is one of the six people who could have killed Brian Thompson. The zero value means no suspect, e.g., an
// inconclusive sample.
type Suspect int

const (
	SuspectUnknown Suspect = iota
	SuspectScarlet
	SuspectMustard
	SuspectWhite
	SuspectGreen
	SuspectPeacock
	SuspectPlum
)

// Suspects lists every suspect in display order.
var Suspects = []Suspect{SuspectScarlet, SuspectMustard, SuspectWhite, SuspectGreen, SuspectPeacock, SuspectPlum}

func (s Suspect) String() string {
	switch s {
	case SuspectScarlet:
		return "Miss Scarlet"
	case SuspectMustard:
		return "Colonel Mustard"
	case SuspectWhite:
		return "Mrs. White"
	case SuspectGreen:
		return "Reverend Green"
	case SuspectPeacock:
		return "Mrs. Peacock"
	case SuspectPlum:
		return "Professor Plum"
	case SuspectUnknown:
		return "Unknown"
	default:
		return "Unknown"
	}
}

// Weapon is one of the six possible murder weapons. The zero value means no weapon.
type Weapon int

const (
	WeaponNone Weapon = iota
	WeaponCandlestick
	WeaponDagger
	WeaponLeadPipe
	WeaponRevolver
	WeaponRope
	WeaponWrench
)

// Weapons lists every weapon in display order.
var Weapons = []Weapon{WeaponCandlestick, WeaponDagger, WeaponLeadPipe, WeaponRevolver, WeaponRope, WeaponWrench}

func (w Weapon) String() string {
	switch w {
	case WeaponCandlestick:
		return "Candlestick"
	case WeaponDagger:
		return "Dagger"
	case WeaponLeadPipe:
		return "Lead pipe"
	case WeaponRevolver:
		return "Revolver"
	case WeaponRope:
		return "Rope"
	case WeaponWrench:
		return "Wrench"
	case WeaponNone:
		return "None"
	default:
		return "None"
	}
}

// RoomID identifies a room of the mansion. The zero value means the player is not in any room.
type RoomID int

const (
	RoomNone RoomID = iota
	RoomHall
	RoomLounge
	RoomDiningRoom
	RoomKitchen
	RoomBallroom
	RoomConservatory
	RoomBilliardRoom
	RoomLibrary
	RoomStudy
	RoomStaircase
)

// InvestigableRooms are the nine rooms where the murder could have happened. The staircase is not one of them.
var InvestigableRooms = []RoomID{
	RoomHall, RoomLounge, RoomDiningRoom, RoomKitchen, RoomBallroom,
	RoomConservatory, RoomBilliardRoom, RoomLibrary, RoomStudy,
}

// AllRooms are the investigable rooms followed by the staircase.
var AllRooms = append(append([]RoomID{}, InvestigableRooms...), RoomStaircase)

func (r RoomID) String() string {
	switch r {
	case RoomHall:
		return "Hall"
	case RoomLounge:
		return "Lounge"
	case RoomDiningRoom:
		return "Dining Room"
	case RoomKitchen:
		return "Kitchen"
	case RoomBallroom:
		return "Ballroom"
	case RoomConservatory:
		return "Conservatory"
	case RoomBilliardRoom:
		return "Billiard Room"
	case RoomLibrary:
		return "Library"
	case RoomStudy:
		return "Study"
	case RoomStaircase:
		return "Staircase"
	case RoomNone:
		return "Corridor"
	default:
		return "Corridor"
	}
}

// Investigable reports whether the murder could have happened in r.
func (r RoomID) Investigable() bool {
	return r >= RoomHall && r <= RoomStudy
}

// Item is a forensic tool the player can find while searching rooms.
type Item int

const (
	ItemNone Item = iota
	ItemFingerprintCollector
	ItemDNACollector
	ItemUVScanner
)

// Items lists the three tools hidden in the mansion.
var Items = []Item{ItemFingerprintCollector, ItemDNACollector, ItemUVScanner}

func (i Item) String() string {
	switch i {
	case ItemFingerprintCollector:
		return "Fingerprint Collector"
	case ItemDNACollector:
		return "DNA Collector"
	case ItemUVScanner:
		return "UV Scanner"
	case ItemNone:
		return "None"
	default:
		return "None"
	}
}

// Description explains what the tool is for.
func (i Item) Description() string {
	switch i {
	case ItemFingerprintCollector:
		return "Collect fingerprints from various surfaces. Analyze these with Detective Joseph."
	case ItemDNACollector:
		return "Collect DNA samples from various surfaces. Analyze these with Detective Joseph."
	case ItemUVScanner:
		return "Scan rooms with UV light for hidden clues."
	case ItemNone:
		return ""
	default:
		return ""
	}
}

// Answer is the suspect, weapon, and room of the murder. It is also used for the player's accusation.
type Answer struct {
	Suspect Suspect
	Weapon  Weapon
	Room    RoomID
}
