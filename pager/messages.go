// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
//
// This file defines the pager's message surface. Index writes carry an
// origin tag: the host writes originHost, and every write the controller
// makes to normalize or wrap an index is tagged originSelf. The controller
// drops originSelf messages on arrival, so its own writes can never re-enter
// the reconciliation path and oscillate, no matter how many writes are queued
// ahead of the echo.
package pager

import (
	tea "github.com/charmbracelet/bubbletea"
)

// writeOrigin tags who produced an index write.
type writeOrigin int

const (
	originHost writeOrigin = iota // the embedding application
	originSelf                    // the controller's own normalization write
)

// SetIndexMsg asks a pager to show the page at Index. An empty ID addresses
// every pager in the program; a non-empty ID only the matching instance.
// Out-of-range values are wrapped or clamped per the pager's loop policy.
type SetIndexMsg struct {
	ID     string
	Index  int
	origin writeOrigin
}

// SetIndex returns a command that broadcasts an index write to all pagers.
func SetIndex(index int) tea.Cmd {
	return func() tea.Msg {
		return SetIndexMsg{Index: index}
	}
}

// SetIndexFor returns a command that writes the index of one pager instance.
func SetIndexFor(id string, index int) tea.Cmd {
	return func() tea.Msg {
		return SetIndexMsg{ID: id, Index: index}
	}
}

// PageChangedMsg announces a completed reconciliation pass. Old and New are
// resolved, in-range indices.
type PageChangedMsg struct {
	ID        string
	Old       int
	New       int
	Direction Direction
}

// settledMsg marks the end of the bootstrap settle delay. gen guards against
// a stale tick from a superseded bootstrap cycle.
type settledMsg struct {
	id  string
	gen int
}

// slideFrameMsg drives the slide transition animation.
type slideFrameMsg struct {
	id string
}
