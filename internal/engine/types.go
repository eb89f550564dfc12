// Package engine implements the real-time target simulation: spawn cadence,
// per-mode movement, collisions between bouncing targets and scoring.
//
// A Session is driven from a single timeline (a UI update loop, a
// websocket connection loop or Run) and is not safe for concurrent use.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSessionRunning is returned by Start and Configure while a session is running.
var ErrSessionRunning = errors.New("engine: session already running")

// Mode selects the movement strategy for every target of a session.
type Mode int

const (
	Classic Mode = iota
	Bouncing
	Shooting
	Gliding
)

// Modes lists all modes in menu order.
var Modes = []Mode{Classic, Bouncing, Shooting, Gliding}

func (m Mode) String() string {
	switch m {
	case Classic:
		return "classic"
	case Bouncing:
		return "bouncing"
	case Shooting:
		return "shooting"
	case Gliding:
		return "gliding"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Next returns the following mode, wrapping around.
func (m Mode) Next() Mode {
	return Modes[(int(m)+1)%len(Modes)]
}

// ParseMode converts a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "classic", "":
		return Classic, nil
	case "bouncing":
		return Bouncing, nil
	case "shooting":
		return Shooting, nil
	case "gliding":
		return Gliding, nil
	default:
		return Classic, fmt.Errorf("engine: unknown mode %q", s)
	}
}

// State is the session lifecycle: Idle -> Running -> Ended -> Running ...
type State int

const (
	Idle State = iota
	Running
	Ended
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome is the result of a movement update.
type Outcome int

const (
	Continue Outcome = iota
	Expire
)

// Resolution says why a target left the field.
type Resolution int

const (
	ResolvedHit Resolution = iota
	ResolvedMiss
	ResolvedCleared // Removed at session end, never scored
)

func (r Resolution) String() string {
	switch r {
	case ResolvedHit:
		return "hit"
	case ResolvedMiss:
		return "miss"
	case ResolvedCleared:
		return "cleared"
	default:
		return fmt.Sprintf("Resolution(%d)", int(r))
	}
}
