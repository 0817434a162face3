package main

import "strings"

// StartupChoice is the parsed result of the startup prompt: which side the
// human plays, or self-play mode.
type StartupChoice int

const (
	ChoiceX StartupChoice = iota
	ChoiceO
	ChoiceSelfPlay
)

// parseStartupChoice parses the §6 startup-choice-token vocabulary,
// case-insensitively, defaulting an empty input to X.
func parseStartupChoice(raw string) StartupChoice {
	token := strings.ToUpper(strings.TrimSpace(raw))
	switch token {
	case "":
		return ChoiceX
	case "X":
		return ChoiceX
	case "O":
		return ChoiceO
	case "C", "AI", "AUTO", "COMPUTER", "COMPUTERVSCOMPUTER", "SELF", "SELFPLAY", "SELFPLAYMODE":
		return ChoiceSelfPlay
	default:
		return ChoiceX
	}
}
