package models

import "slices"

// Command is an action the player can take on a turn.
//
// The order of the constants is the order in which legal commands are offered to the player.
type Command int

const (
	CommandUnspecified Command = iota
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandPass
	CommandSearch
	CommandCollectDNA
	CommandCollectFingerprints
	CommandUVScan
	CommandSubmitDNA
	CommandSubmitFingerprints
	CommandRequestCamera
	CommandAccuse
	CommandDiscardDNA
	CommandDiscardFingerprints
	CommandInventory
	CommandLog
)

// Commands lists every turn command in offering order.
var Commands = []Command{
	CommandUp, CommandDown, CommandLeft, CommandRight, CommandPass,
	CommandSearch, CommandCollectDNA, CommandCollectFingerprints, CommandUVScan,
	CommandSubmitDNA, CommandSubmitFingerprints, CommandRequestCamera, CommandAccuse,
	CommandDiscardDNA, CommandDiscardFingerprints, CommandInventory, CommandLog,
}

type commandInfo struct {
	name        string
	description string
	aliases     []string
}

var commandInfos = map[Command]commandInfo{
	CommandUp:                  {"up", "Move up", []string{"u", "w", "north"}},
	CommandDown:                {"down", "Move down", []string{"d", "s", "south"}},
	CommandLeft:                {"left", "Move left", []string{"l", "a", "west"}},
	CommandRight:               {"right", "Move right", []string{"r", "east"}},
	CommandPass:                {"pass", "Take the secret passage", []string{"p", "passage"}},
	CommandSearch:              {"search", "Search the room", []string{"look"}},
	CommandCollectDNA:          {"dna", "Collect a DNA sample", []string{"collect dna"}},
	CommandCollectFingerprints: {"fingerprints", "Collect fingerprints", []string{"fp", "collect fingerprints"}},
	CommandUVScan:              {"uv", "Scan the room with UV light", []string{"scan", "uv scan"}},
	CommandSubmitDNA:           {"submit dna", "Give your DNA sample to Detective Joseph", []string{"sd"}},
	CommandSubmitFingerprints:  {"submit fingerprints", "Give your fingerprint sample to Detective Joseph", []string{"sf", "submit fp"}},
	CommandRequestCamera:       {"cameras", "Request security camera footage", []string{"camera", "footage"}},
	CommandAccuse:              {"accuse", "Make your final accusation", nil},
	CommandDiscardDNA:          {"discard dna", "Throw away your DNA sample", nil},
	CommandDiscardFingerprints: {"discard fingerprints", "Throw away your fingerprint sample", []string{"discard fp"}},
	CommandInventory:           {"inventory", "Look through your bag", []string{"i", "inv"}},
	CommandLog:                 {"log", "Read your detective's log", []string{"notes"}},
}

// Name is the canonical text the player types.
func (c Command) Name() string {
	return commandInfos[c].name
}

// Description is shown next to the command when it is offered.
func (c Command) Description() string {
	return commandInfos[c].description
}

// Aliases are alternative texts accepted for the command.
func (c Command) Aliases() []string {
	return commandInfos[c].aliases
}

// Matches reports whether input is the name or one of the aliases of c.
func (c Command) Matches(input string) bool {
	info, ok := commandInfos[c]
	if !ok {
		return false
	}
	return input == info.name || slices.Contains(info.aliases, input)
}

// IsView reports whether c only shows information. View commands do not use up an actionable turn.
func (c Command) IsView() bool {
	return c == CommandInventory || c == CommandLog
}

// IsMove reports whether c is one of the four directional moves.
func (c Command) IsMove() bool {
	return c >= CommandUp && c <= CommandRight
}

func (c Command) String() string {
	if name := c.Name(); name != "" {
		return name
	}
	return "unspecified"
}
