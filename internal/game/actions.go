package game

import (
	"fmt"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/board"
	"github.com/27achang/2024WinterFinal/internal/evidence"
	"github.com/27achang/2024WinterFinal/internal/models"
	"github.com/27achang/2024WinterFinal/internal/random"
)

// Costs of Joseph's services in donuts.
const (
	DNACost         = 2
	FingerprintCost = 2
)

// Probabilities of the lucky finds.
const (
	InconclusiveDNAChance = 0.3
	DonutChance           = 0.15
)

// LegalCommands returns the commands the detective may choose from, in the order of models.Commands.
func LegalCommands(b *board.Board, s *State) []models.Command {
	var cmds []models.Command
	for _, d := range b.LegalMoves(s.Position) {
		cmds = append(cmds, d.Command())
	}

	if _, ok := b.PassageAt(s.Position); ok {
		cmds = append(cmds, models.CommandPass)
	}

	inv := s.Inventory
	if s.Room.Investigable() {
		cmds = append(cmds, models.CommandSearch)
		if inv.Has(models.ItemDNACollector) && inv.DNA == nil {
			cmds = append(cmds, models.CommandCollectDNA)
		}
		if inv.Has(models.ItemFingerprintCollector) && inv.Fingerprints == nil {
			cmds = append(cmds, models.CommandCollectFingerprints)
		}
		if inv.Has(models.ItemUVScanner) {
			cmds = append(cmds, models.CommandUVScan)
		}
	}

	if s.Room == models.RoomStaircase {
		if inv.DNA != nil {
			cmds = append(cmds, models.CommandSubmitDNA)
		}
		if inv.Fingerprints != nil {
			cmds = append(cmds, models.CommandSubmitFingerprints)
		}
		cmds = append(cmds, models.CommandRequestCamera, models.CommandAccuse)
	}

	if inv.DNA != nil {
		cmds = append(cmds, models.CommandDiscardDNA)
	}
	if inv.Fingerprints != nil {
		cmds = append(cmds, models.CommandDiscardFingerprints)
	}
	if !inv.Empty() {
		cmds = append(cmds, models.CommandInventory)
	}
	if len(s.Log) > 0 {
		cmds = append(cmds, models.CommandLog)
	}
	return cmds
}

// Move walks the detective one step in direction d. It returns the notice for a first visit of a room, or "".
func Move(b *board.Board, s *State, d board.Direction) string {
	tr, ok := b.Move(s.Position, s.Room, d)
	if !ok {
		return ""
	}
	if s.enter(tr.To, tr.Room) {
		return firstVisit(tr.Room)
	}
	return ""
}

// Pass takes the secret passage the detective is standing on.
func Pass(b *board.Board, s *State) string {
	p, ok := b.PassageAt(s.Position)
	if !ok {
		return "There is no secret passage here."
	}
	text := fmt.Sprintf("You squeeze through a secret passage and come out in the %s.", p.Room)
	if s.enter(p.To, p.Room) {
		text += "\n" + firstVisit(p.Room)
	}
	return text
}

func firstVisit(room models.RoomID) string {
	if room == models.RoomStaircase {
		return "You are back at the staircase. Detective Joseph is waiting for you here."
	}
	return fmt.Sprintf("You entered the %s for the first time.", room)
}

// Search looks around the current room. A tool lying there is picked up and the murder weapon is noticed. Sometimes
// a donut turns up.
func Search(s *State, src random.Source) string {
	rs, ok := s.CurrentRoom()
	if !ok {
		return "There is nothing to search here."
	}
	s.Stats.Searches++

	var lines []string
	if rs.Item != models.ItemNone {
		s.Inventory.Tools = append(s.Inventory.Tools, rs.Item)
		lines = append(lines, fmt.Sprintf("You found a %s! %s", rs.Item, rs.Item.Description()))
		rs.Item = models.ItemNone
	}
	if rs.Weapon != models.WeaponNone {
		w := strings.ToLower(rs.Weapon.String())
		lines = append(lines, fmt.Sprintf("There is a %s lying on the floor. It looks like it has been used recently.", w))
		s.addLog(fmt.Sprintf("Found a %s in the %s.", w, s.Room))
	}
	if random.Chance(src, DonutChance) {
		s.Inventory.Donuts++
		lines = append(lines, "You found a donut under a cushion. Joseph will appreciate it.")
	}
	if len(lines) == 0 {
		return fmt.Sprintf("You searched the %s but found nothing of interest.", s.Room)
	}
	return strings.Join(lines, "\n")
}

// CollectDNA swabs the current room for DNA. The murder room always gives the killer's DNA. Other rooms sometimes
// give an inconclusive sample.
func CollectDNA(s *State, src random.Source) string {
	rs, ok := s.CurrentRoom()
	if !ok || !s.Inventory.Has(models.ItemDNACollector) || s.Inventory.DNA != nil {
		return "You can't collect DNA right now."
	}

	var sample evidence.DNASample
	switch {
	case rs.DNAOwner != models.SuspectUnknown:
		sample = evidence.NewDNASample(s.Room, rs.DNAOwner)
	case random.Chance(src, InconclusiveDNAChance):
		sample = evidence.NewDNASample(s.Room, models.SuspectUnknown)
	default:
		return fmt.Sprintf("You swabbed every surface of the %s but found no DNA.", s.Room)
	}
	s.Inventory.DNA = &sample
	s.Stats.SamplesCollected++
	return fmt.Sprintf("You collected a DNA sample in the %s. Bring it to Detective Joseph for analysis.", s.Room)
}

// CollectFingerprints lifts the fingerprints from the weapon in the current room.
func CollectFingerprints(s *State, src random.Source) string {
	rs, ok := s.CurrentRoom()
	if !ok || !s.Inventory.Has(models.ItemFingerprintCollector) || s.Inventory.Fingerprints != nil {
		return "You can't collect fingerprints right now."
	}
	if rs.Weapon == models.WeaponNone {
		return fmt.Sprintf("You dusted the %s but found no usable fingerprints.", s.Room)
	}
	sample := evidence.NewFingerprintSample(src, s.Room, rs.Weapon, rs.FingerprintOwner)
	s.Inventory.Fingerprints = &sample
	s.Stats.SamplesCollected++
	return fmt.Sprintf("You lifted fingerprints from the %s. Bring them to Detective Joseph for analysis.",
		strings.ToLower(rs.Weapon.String()))
}

// ScanUV lights up the current room with the UV scanner.
func ScanUV(s *State) string {
	rs, ok := s.CurrentRoom()
	if !ok || !s.Inventory.Has(models.ItemUVScanner) {
		return "You can't use the UV scanner right now."
	}
	s.Stats.UVScans++
	if !rs.UVClue {
		return fmt.Sprintf("The UV light shows nothing unusual in the %s.", s.Room)
	}
	s.addLog(fmt.Sprintf("UV light revealed traces of blood in the %s.", s.Room))
	return fmt.Sprintf("The UV light reveals traces of blood that someone tried to clean up in the %s!", s.Room)
}

// SubmitDNA hands the held DNA sample to Joseph.
func SubmitDNA(s *State) string {
	if s.Inventory.DNA == nil {
		return "You have no DNA sample to submit."
	}
	if declined := payFor(s, evidence.KindDNA, DNACost); declined != "" {
		return declined
	}
	s.Lab.SubmitDNA(*s.Inventory.DNA)
	s.Inventory.DNA = nil
	s.Stats.SamplesAnalyzed++
	return fmt.Sprintf("Detective Joseph takes your DNA sample and %d donuts. He'll get back to you soon.", DNACost)
}

// SubmitFingerprints hands the held fingerprint sample to Joseph.
func SubmitFingerprints(s *State) string {
	if s.Inventory.Fingerprints == nil {
		return "You have no fingerprints to submit."
	}
	if declined := payFor(s, evidence.KindFingerprints, FingerprintCost); declined != "" {
		return declined
	}
	s.Lab.SubmitFingerprints(*s.Inventory.Fingerprints)
	s.Inventory.Fingerprints = nil
	s.Stats.SamplesAnalyzed++
	return fmt.Sprintf("Detective Joseph takes your fingerprints and %d donuts. He'll get back to you soon.",
		FingerprintCost)
}

// CanRequestCamera returns "" when Joseph would accept a footage request, or his reason to decline.
func CanRequestCamera(s *State) string {
	if s.Lab.Busy(evidence.KindCamera) {
		return "Joseph is still waiting on the last footage you asked for."
	}
	if s.Inventory.Donuts < s.CameraCost {
		return fmt.Sprintf("Joseph wants %d donuts to pull the camera footage. You only have %d.",
			s.CameraCost, s.Inventory.Donuts)
	}
	return ""
}

// RequestCamera asks Joseph for the footage of target.
func RequestCamera(s *State, src random.Source, target models.RoomID) string {
	if declined := CanRequestCamera(s); declined != "" {
		return declined
	}
	s.Inventory.Donuts -= s.CameraCost
	s.Stats.DonutsSpent += s.CameraCost
	s.Stats.CameraRequests++
	s.Lab.RequestCamera(evidence.NewCameraResult(src, target, s.Answer))
	return fmt.Sprintf("Detective Joseph takes %d donuts and calls security about the cameras in the %s.",
		s.CameraCost, target)
}

// payFor charges cost donuts for an analysis of kind k. It returns Joseph's reason to decline, leaving s unchanged,
// or "" when paid.
func payFor(s *State, k evidence.Kind, cost int) string {
	if s.Lab.Busy(k) {
		return fmt.Sprintf("Joseph is still working on your last %s sample.", k)
	}
	if s.Inventory.Donuts < cost {
		return fmt.Sprintf("Joseph won't work for less than %d donuts. You only have %d.", cost, s.Inventory.Donuts)
	}
	s.Inventory.Donuts -= cost
	s.Stats.DonutsSpent += cost
	return ""
}

// DiscardDNA throws away the held DNA sample.
func DiscardDNA(s *State) string {
	s.Inventory.DNA = nil
	return "You threw away your DNA sample."
}

// DiscardFingerprints throws away the held fingerprint sample.
func DiscardFingerprints(s *State) string {
	s.Inventory.Fingerprints = nil
	return "You threw away your fingerprints."
}

// InventoryText lists the contents of the detective's bag.
func InventoryText(s *State) string {
	inv := s.Inventory
	var lines []string
	for _, tool := range inv.Tools {
		lines = append(lines, fmt.Sprintf("%s: %s", tool, tool.Description()))
	}
	if inv.DNA != nil {
		lines = append(lines, inv.DNA.String())
	}
	if inv.Fingerprints != nil {
		lines = append(lines, inv.Fingerprints.String())
	}
	lines = append(lines, fmt.Sprintf("Donuts: %d", inv.Donuts))
	return strings.Join(lines, "\n")
}

// LogText is the detective's log, oldest entry first.
func LogText(s *State) string {
	lines := make([]string, 0, len(s.Log))
	for _, e := range s.Log {
		lines = append(lines, fmt.Sprintf("Turn %d: %s", e.Turn, e.Text))
	}
	return strings.Join(lines, "\n")
}
