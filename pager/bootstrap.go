// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
//
// This file implements the initial-page bootstrap. Bootstrap assigns the
// starting index directly, without passing through reconciliation, so the
// first paint triggers neither a transition nor a page-change notification.
// The settle tick that follows carries a generation number; if the pager is
// re-bootstrapped (new pages, changed default) before the tick fires, the
// stale tick is dropped rather than marking the wrong cycle settled.
package pager

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pagekit/internal/ui/styles"
)

// DefaultPage selects which page a freshly mounted pager shows when the host
// has not supplied a starting index.
type DefaultPage int

const (
	DefaultNone  DefaultPage = iota // unspecified; behaves like DefaultFirst
	DefaultFirst                    // index 0
	DefaultLast                     // index pageCount-1
)

// bootstrap computes and assigns the initial index. Runs whenever page
// content or a bootstrap-relevant option changes; a no-op until there are
// pages to show.
func (m Model) bootstrap() Model {
	if m.pageCount == 0 {
		return m
	}
	maxIndex := m.pageCount - 1

	// A non-zero host-supplied index wins over the configured default.
	target := m.externalIndex
	if target == 0 {
		switch m.defaultPage {
		case DefaultLast:
			target = maxIndex
		default:
			target = 0
		}
	}
	resolved := resolveIndex(target, maxIndex, m.looping)

	m.internalIndex = resolved
	m.externalIndex = resolved
	m.bootstrapped = true
	m.settled = false
	m.settleGen++

	m.ind = m.ind.SnapIndex(resolved)
	return m
}

// settleTick schedules the settle marker for the current bootstrap cycle.
func (m Model) settleTick() tea.Cmd {
	id, gen := m.id, m.settleGen
	return tea.Tick(styles.SettleDelay, func(time.Time) tea.Msg {
		return settledMsg{id: id, gen: gen}
	})
}
