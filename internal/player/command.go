package player

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned by ParseCommand for unrecognized input.
var ErrUnknownCommand = errors.New("unknown command")

// RateStep is the rate change of one faster or slower command.
const RateStep = 25

// Command is one keyboard action read from the command source.
type Command int

const (
	CmdToggle Command = iota
	CmdNextSentence
	CmdPreviousSentence
	CmdSkipForward
	CmdSkipBackward
	CmdFaster
	CmdSlower
	CmdReset
	CmdQuit
)

var commandNames = map[Command]string{
	CmdToggle:           "toggle",
	CmdNextSentence:     "next-sentence",
	CmdPreviousSentence: "previous-sentence",
	CmdSkipForward:      "skip-forward",
	CmdSkipBackward:     "skip-backward",
	CmdFaster:           "faster",
	CmdSlower:           "slower",
	CmdReset:            "reset",
	CmdQuit:             "quit",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps one input line to a Command. An empty line toggles
// playback.
func ParseCommand(line string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "", "p", "space":
		return CmdToggle, nil
	case "n":
		return CmdNextSentence, nil
	case "b":
		return CmdPreviousSentence, nil
	case ">", ".":
		return CmdSkipForward, nil
	case "<", ",":
		return CmdSkipBackward, nil
	case "+", "=":
		return CmdFaster, nil
	case "-", "_":
		return CmdSlower, nil
	case "r":
		return CmdReset, nil
	case "q", "quit", "exit":
		return CmdQuit, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnknownCommand, strings.TrimSpace(line))
	}
}

// Help is a one-line summary of the accepted commands.
const Help = "enter/p play-pause  n/b sentence  >/< skip  +/- rate  r reset  q quit"
