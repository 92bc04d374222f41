// Package evidence holds the forensic samples the detective collects and the lab that analyses them.
package evidence

import (
	"fmt"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
)

// DNADelay is the number of actionable turns Joseph needs to analyse a DNA sample.
const DNADelay = 5

// Fingerprint analysis takes between these many actionable turns.
const (
	FingerprintMinDelay = 5
	FingerprintMaxDelay = 10
)

// DNASample is DNA collected in a room. A sample without a suspect is inconclusive.
type DNASample struct {
	Room    models.RoomID
	Suspect models.Suspect
	Delay   int
}

// NewDNASample collects DNA of suspect in room. Pass models.SuspectUnknown for an inconclusive sample.
func NewDNASample(room models.RoomID, suspect models.Suspect) DNASample {
	return DNASample{Room: room, Suspect: suspect, Delay: DNADelay}
}

// Conclusive reports whether the lab can attribute the sample to a suspect.
func (s DNASample) Conclusive() bool {
	return s.Suspect != models.SuspectUnknown
}

func (s DNASample) String() string {
	return fmt.Sprintf("DNA sample from the %s", s.Room)
}

// Report is Joseph's analysis of the sample.
func (s DNASample) Report() string {
	if !s.Conclusive() {
		return fmt.Sprintf("The DNA sample from the %s was inconclusive. Whoever left it is not in our database.", s.Room)
	}
	return fmt.Sprintf("The DNA you found in the %s belongs to %s.", s.Room, s.Suspect)
}

// FingerprintSample is a set of fingerprints lifted from a weapon.
type FingerprintSample struct {
	Room    models.RoomID
	Weapon  models.Weapon
	Suspect models.Suspect
	Delay   int
}

// NewFingerprintSample lifts the fingerprints of suspect from weapon in room. The analysis delay is drawn from src.
func NewFingerprintSample(
	src random.Source,
	room models.RoomID,
	weapon models.Weapon,
	suspect models.Suspect,
) FingerprintSample {
	return FingerprintSample{
		Room:    room,
		Weapon:  weapon,
		Suspect: suspect,
		Delay:   random.Between(src, FingerprintMinDelay, FingerprintMaxDelay),
	}
}

func (s FingerprintSample) String() string {
	return fmt.Sprintf("Fingerprints from a %s in the %s", strings.ToLower(s.Weapon.String()), s.Room)
}

// Report is Joseph's analysis of the sample.
func (s FingerprintSample) Report() string {
	if s.Suspect == models.SuspectUnknown {
		return fmt.Sprintf("The fingerprints on the %s from the %s were too smudged to match anyone.",
			strings.ToLower(s.Weapon.String()), s.Room)
	}
	return fmt.Sprintf("The fingerprints on the %s from the %s belong to %s.",
		strings.ToLower(s.Weapon.String()), s.Room, s.Suspect)
}
