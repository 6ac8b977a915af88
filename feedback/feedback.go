// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package feedback provides fire-and-forget attention pulses for pagekit
// components.
//
// Terminals have no haptics, so the default sink maps feedback kinds to the
// terminal bell. Hosts embedding pagekit in a richer environment can install
// their own Sink and route kinds to whatever the platform offers.
package feedback

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
)

// =============================================================================
// FEEDBACK KINDS
// =============================================================================

// Kind selects the flavor of feedback pulse to play on a page change or a
// recognized gesture.
type Kind int

const (
	None    Kind = iota // feedback disabled
	Impact              // generic page-change pulse
	Success             // long-press recognized, stronger pulse
)

// String returns the config-file name of the kind.
func (k Kind) String() string {
	switch k {
	case Impact:
		return "impact"
	case Success:
		return "success"
	default:
		return "none"
	}
}

// ParseKind converts a config-file name into a Kind. Unknown names disable
// feedback rather than failing.
func ParseKind(s string) Kind {
	switch s {
	case "impact":
		return Impact
	case "success":
		return Success
	default:
		return None
	}
}

// =============================================================================
// SINKS
// =============================================================================

// Sink plays feedback pulses. Play returns a command so the write happens on
// the program's event loop; sinks must never block.
type Sink interface {
	Play(kind Kind) tea.Cmd
}

// Terminal is the default sink. It writes BEL through a termenv output, one
// ring for Impact and two for Success.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a sink writing to the default termenv output.
func NewTerminal() *Terminal {
	return &Terminal{out: termenv.NewOutput(os.Stdout)}
}

// NewTerminalWithOutput creates a sink writing to w. Used by tests.
func NewTerminalWithOutput(w io.Writer) *Terminal {
	return &Terminal{out: w}
}

// Play emits the pulse for kind. None is a no-op.
func (t *Terminal) Play(kind Kind) tea.Cmd {
	if kind == None || t == nil || t.out == nil {
		return nil
	}
	bell := "\a"
	if kind == Success {
		bell = "\a\a"
	}
	return func() tea.Msg {
		// Best effort; a closed tty is not worth surfacing.
		_, _ = io.WriteString(t.out, bell)
		return nil
	}
}

// Nop is a sink that discards every pulse.
type Nop struct{}

// Play always returns nil.
func (Nop) Play(Kind) tea.Cmd { return nil }
