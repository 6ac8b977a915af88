// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
//
// This file is the index reconciliation state machine. Every index write —
// host message, key press, indicator gesture — lands here. The pass resolves
// the requested value against the loop policy, infers the transition
// direction (with the loop-boundary override), and updates internal and
// external index in the same synchronous step so the host never observes
// them disagreeing.
package pager

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pagekit/feedback"
)

// resolveIndex normalizes a requested index against the loop policy.
// Looping wraps out-of-range values to the opposite end; otherwise they
// clamp. maxIndex below zero (no pages) is the caller's guard, not ours.
func resolveIndex(requested, maxIndex int, looping bool) int {
	if looping {
		if requested < 0 {
			return maxIndex
		}
		if requested > maxIndex {
			return 0
		}
		return requested
	}
	if requested < 0 {
		return 0
	}
	if requested > maxIndex {
		return maxIndex
	}
	return requested
}

// inferDirection determines the transition direction for a resolved change.
// A jump across the loop boundary is a continuation in the direction of
// travel even though the raw index delta points the other way: advancing
// past the last page lands on the first but still moves forward, and the
// mirror case still moves backward.
func inferDirection(old, resolved, maxIndex int, looping bool) Direction {
	switch {
	case looping && old == maxIndex && resolved == 0:
		return Forward
	case looping && old == 0 && resolved == maxIndex:
		return Backward
	case resolved > old:
		return Forward
	default:
		return Backward
	}
}

// reconcile runs one reconciliation pass for a host-originated index write.
func (m Model) reconcile(requested int) (Model, tea.Cmd) {
	if m.pageCount == 0 {
		// No content yet; index math would divide by nothing.
		return m, nil
	}
	maxIndex := m.pageCount - 1
	old := m.internalIndex
	resolved := resolveIndex(requested, maxIndex, m.looping)

	var cmds []tea.Cmd

	// Any value the controller writes back through the binding is tagged
	// originSelf; the echo is dropped on arrival instead of re-entering
	// this pass.
	selfWrite := func() {
		id, v := m.id, resolved
		cmds = append(cmds, func() tea.Msg {
			return SetIndexMsg{ID: id, Index: v, origin: originSelf}
		})
	}

	if resolved == old {
		if requested != resolved {
			// The host handed us an out-of-range value that
			// normalizes to the current page. Write the corrected
			// value back so the host's copy converges.
			m.externalIndex = resolved
			selfWrite()
			return m, tea.Batch(cmds...)
		}
		return m, nil
	}

	dir := inferDirection(old, resolved, maxIndex, m.looping)
	m.movingForward = dir == Forward

	// Internal and external index move together, in this same step.
	m.internalIndex = resolved
	m.externalIndex = resolved
	selfWrite()

	m = m.startSlide(dir)
	if m.slide.animating {
		cmds = append(cmds, m.slideFrame())
	}

	var indCmd tea.Cmd
	m.ind, indCmd = m.ind.SetIndex(resolved)
	if indCmd != nil {
		cmds = append(cmds, indCmd)
	}

	id := m.id
	cmds = append(cmds, func() tea.Msg {
		return PageChangedMsg{ID: id, Old: old, New: resolved, Direction: dir}
	})
	if m.onPageChange != nil {
		fn := m.onPageChange
		cmds = append(cmds, func() tea.Msg {
			fn(old, resolved, dir)
			return nil
		})
	}

	// Feedback is gated until the initial page has settled so the first
	// paint never pulses.
	if m.settled && m.feedbackKind != feedback.None && m.sink != nil {
		if cmd := m.sink.Play(m.feedbackKind); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}
