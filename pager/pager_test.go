// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pagekit/feedback"
	"github.com/jeranaias/pagekit/indicator"
)

func TestNewDefaults(t *testing.T) {
	m := New(Text("a"), Text("b"))

	if m.Count() != 2 {
		t.Errorf("count = %d, want 2", m.Count())
	}
	if m.Index() != 0 {
		t.Errorf("index = %d, want 0", m.Index())
	}
	if m.Looping() {
		t.Error("looping should default to false")
	}
	if m.Settled() {
		t.Error("pager should not start settled")
	}
	if m.indicatorVisible() {
		t.Error("indicator should be hidden unless requested")
	}
	if m.ID() == "" {
		t.Error("pager has no instance ID")
	}
}

func TestViewShowsCurrentPage(t *testing.T) {
	m := testPager(3, false)
	m.pages = []Page{Text("alpha"), Text("beta"), Text("gamma")}

	if !strings.Contains(m.View(), "alpha") {
		t.Errorf("view %q does not show first page", m.View())
	}
	m, _ = m.Update(SetIndexMsg{Index: 2})
	// Without a measured width there is no slide; the new page is
	// immediately visible.
	if !strings.Contains(m.View(), "gamma") {
		t.Errorf("view %q does not show third page", m.View())
	}
}

func TestViewZeroPages(t *testing.T) {
	m := New()
	if m.View() != "" {
		t.Errorf("zero-page view = %q, want empty", m.View())
	}
}

func TestKeyNavigation(t *testing.T) {
	m := testPager(4, false)

	press := func(m Model, k tea.KeyType) Model {
		m, _ = m.Update(tea.KeyMsg{Type: k})
		return m
	}

	m = press(m, tea.KeyRight)
	if m.Index() != 1 {
		t.Errorf("after right: index = %d, want 1", m.Index())
	}
	m = press(m, tea.KeyEnd)
	if m.Index() != 3 {
		t.Errorf("after end: index = %d, want 3", m.Index())
	}
	m = press(m, tea.KeyLeft)
	if m.Index() != 2 {
		t.Errorf("after left: index = %d, want 2", m.Index())
	}
	m = press(m, tea.KeyHome)
	if m.Index() != 0 {
		t.Errorf("after home: index = %d, want 0", m.Index())
	}

	// Prev at the first page without looping stays put.
	m = press(m, tea.KeyLeft)
	if m.Index() != 0 {
		t.Errorf("prev at first page: index = %d, want 0", m.Index())
	}
}

func TestKeyNavigationLoops(t *testing.T) {
	m := testPager(3, true)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Index() != 2 {
		t.Errorf("prev at first page with looping: index = %d, want 2", m.Index())
	}
	if m.MovingForward() {
		t.Error("wrap to last page should move backward")
	}
}

func TestIndicatorJumpRoutesThroughReconciliation(t *testing.T) {
	m := testPager(5, true)

	m, _ = m.Update(indicator.JumpMsg{ID: m.ID(), Index: 3})
	if m.Index() != 3 {
		t.Errorf("jump: index = %d, want 3", m.Index())
	}

	m, _ = m.Update(indicator.JumpMsg{ID: "other", Index: 1})
	if m.Index() != 3 {
		t.Errorf("foreign jump applied: index = %d, want 3", m.Index())
	}
}

func TestBuiltInIndicatorRendered(t *testing.T) {
	m := testPager(3, false).WithIndicator(nil)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 30, Height: 8})

	view := m.View()
	if len(strings.Split(view, "\n")) != 8 {
		t.Errorf("view has %d rows, want 8", len(strings.Split(view, "\n")))
	}
	if !strings.Contains(view, "o") {
		t.Errorf("view %q does not contain the active dot glyph", view)
	}
}

func TestCustomIndicator(t *testing.T) {
	var gotIndex, gotCount int
	m := testPager(4, false).WithCustomIndicator(func(index, count int) string {
		gotIndex, gotCount = index, count
		return "custom-indicator"
	})
	m, _ = m.Update(SetIndexMsg{Index: 2})

	if !strings.Contains(m.View(), "custom-indicator") {
		t.Error("custom indicator not rendered")
	}
	if gotIndex != 2 || gotCount != 4 {
		t.Errorf("custom indicator called with (%d, %d), want (2, 4)", gotIndex, gotCount)
	}
}

func TestOnPageChangeCallback(t *testing.T) {
	var calls []string
	m := testPager(4, false).WithOnPageChange(func(old, new int, dir Direction) {
		calls = append(calls, dir.String())
	})

	m, cmd := m.Update(SetIndexMsg{Index: 2})
	drainMsgs(cmd)
	if len(calls) != 1 || calls[0] != "forward" {
		t.Errorf("callbacks = %v, want [forward]", calls)
	}
}

func TestFeedbackKindNames(t *testing.T) {
	for _, kind := range []feedback.Kind{feedback.None, feedback.Impact, feedback.Success} {
		if feedback.ParseKind(kind.String()) != kind {
			t.Errorf("ParseKind(%q) did not round-trip", kind.String())
		}
	}
}
