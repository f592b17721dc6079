package protocol

import (
	"fmt"
	"strings"
)

// Cmd represents a command
type Cmd int

const (
	Null Cmd = iota
	// inbound gestures
	NewGame
	Draw
	SelectCard
	SelectPile
	// outbound notifications
	Render
	Error
)

var cmdNames = []string{
	"null",
	"new_game",
	"draw",
	"select_card",
	"select_pile",
	"render",
	"error",
}

func (c Cmd) String() string {
	if c < Null || int(c) >= len(cmdNames) {
		return ""
	}
	return cmdNames[c]
}

func (c Cmd) MarshalText() ([]byte, error) {
	name := c.String()
	if name == "" {
		return nil, fmt.Errorf("unknown command %d", int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range cmdNames {
		if n == name {
			*c = Cmd(i)
			return nil
		}
	}
	return fmt.Errorf("unknown command %q", name)
}
