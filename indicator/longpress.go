// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package indicator provides the page indicator component for pagekit.
//
// This file holds the long-press state machine:
//
//	inactive -> pressing -> pressed -> inactive
//
// Entering "pressing" happens on pointer down. If the pointer is still down
// and has not been converted into a drag when the minimum duration elapses,
// the press is recognized: the callback runs, success feedback plays, and the
// emphasized rendering holds for a fixed beat before returning to inactive.
// An early release falls back to tap handling in gesture.go.
package indicator

import (
	"time"

	"github.com/jeranaias/pagekit/feedback"
)

// longPressPhase is the recognition state of the long-press machine.
type longPressPhase int

const (
	phaseInactive longPressPhase = iota
	phasePressing
	phasePressed
)

// String returns the phase name, for test failure output.
func (p longPressPhase) String() string {
	switch p {
	case phasePressing:
		return "pressing"
	case phasePressed:
		return "pressed"
	default:
		return "inactive"
	}
}

// pressState tracks the long-press machine. gen is bumped on every phase
// entry so timer messages from an abandoned cycle are dropped instead of
// overwriting newer state.
type pressState struct {
	phase       longPressPhase
	gen         int
	minDuration time.Duration
}

// handleLongPressElapsed runs when the minimum press duration elapses with
// the press still active. Generation filtering has already happened in
// Update.
func (m Model) handleLongPressElapsed() (Model, []effect) {
	if m.press.phase != phasePressing || m.dragAnchor == nil || m.dragMoved {
		return m, nil
	}
	m.press.phase = phasePressed
	return m, []effect{
		{kind: fxInvokeLongPress},
		{kind: fxPlayFeedback, feedback: feedback.Success},
		{kind: fxScheduleHold},
	}
}
