// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
package pager

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func sizedPager(count, width, height int, looping bool) Model {
	m := testPager(count, looping)
	m, _ = m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

func TestStartSlideEdges(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
		want Edge
	}{
		{"forward enters from trailing", Forward, EdgeTrailing},
		{"backward enters from leading", Backward, EdgeLeading},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := sizedPager(3, 40, 10, false)
			m = m.startSlide(tc.dir)
			if !m.slide.animating {
				t.Fatal("slide not animating after startSlide")
			}
			if m.slide.from != tc.want {
				t.Errorf("slide edge = %v, want %v", m.slide.from, tc.want)
			}
			if m.slide.offset != 40 {
				t.Errorf("initial offset = %v, want full width 40", m.slide.offset)
			}
		})
	}
}

func TestStartSlideWithoutWidth(t *testing.T) {
	m := testPager(3, false)
	m = m.startSlide(Forward)
	if m.slide.animating {
		t.Error("slide animating with zero width")
	}
}

// TestSlideConverges steps the spring until the slide completes and bounds
// the number of frames it may take.
func TestSlideConverges(t *testing.T) {
	m := sizedPager(3, 80, 24, false)
	m = m.startSlide(Forward)

	for i := 0; i < 1000; i++ {
		m = m.stepSlide()
		if !m.slide.animating {
			return
		}
	}
	t.Fatalf("slide did not converge; offset still %v", m.slide.offset)
}

// TestSlideOffsetMonotonic checks the incoming page only moves toward rest.
func TestSlideOffsetMonotonic(t *testing.T) {
	m := sizedPager(3, 80, 24, false)
	m = m.startSlide(Forward)

	prev := m.slide.offset
	for i := 0; i < 1000 && m.slide.animating; i++ {
		m = m.stepSlide()
		if m.slide.offset > prev+slideOffsetEpsilon {
			t.Fatalf("offset moved away from rest: %v -> %v", prev, m.slide.offset)
		}
		prev = m.slide.offset
	}
}

func TestRenderSlideTrailingIndents(t *testing.T) {
	m := sizedPager(2, 20, 5, false)
	m.slide = slideState{animating: true, offset: 4, from: EdgeTrailing}

	got := m.renderSlide("hello\nworld")
	for _, line := range strings.Split(got, "\n") {
		if line != "" && !strings.HasPrefix(line, "    ") {
			t.Errorf("line %q not indented by offset", line)
		}
	}
	if !strings.Contains(got, "hello") {
		t.Errorf("content lost during slide: %q", got)
	}
}

func TestRenderSlideLeadingCrops(t *testing.T) {
	m := sizedPager(2, 20, 5, false)
	m.slide = slideState{animating: true, offset: 2, from: EdgeLeading}

	got := m.renderSlide("hello")
	if got != "llo" {
		t.Errorf("renderSlide leading crop = %q, want %q", got, "llo")
	}
}

// TestReconcileStartsSlide checks that a page change on a measured pager
// kicks off the transition with the right edge.
func TestReconcileStartsSlide(t *testing.T) {
	m := sizedPager(4, 60, 20, false)

	m, _ = m.Update(SetIndexMsg{Index: 2})
	if !m.slide.animating {
		t.Fatal("page change did not start a slide")
	}
	if m.slide.from != EdgeTrailing {
		t.Errorf("forward change slid from %v, want trailing", m.slide.from)
	}

	m, _ = m.Update(SetIndexMsg{Index: 1})
	if m.slide.from != EdgeLeading {
		t.Errorf("backward change slid from %v, want leading", m.slide.from)
	}
}

// TestCustomTransitionDescriptors checks the configured edges are honored.
func TestCustomTransitionDescriptors(t *testing.T) {
	m := sizedPager(4, 60, 20, false).
		WithTransition(SlideFromLeading, SlideFromTrailing, DefaultSpring)

	m, _ = m.Update(SetIndexMsg{Index: 2})
	if m.slide.from != EdgeLeading {
		t.Errorf("swapped forward transition slid from %v, want leading", m.slide.from)
	}
}

func TestSlideFrameScopedToInstance(t *testing.T) {
	m := sizedPager(3, 40, 10, false)
	m, _ = m.Update(SetIndexMsg{Index: 1})
	if !m.slide.animating {
		t.Fatal("no slide in flight")
	}
	offset := m.slide.offset

	m, _ = m.Update(slideFrameMsg{id: "someone-else"})
	if m.slide.offset != offset {
		t.Error("foreign slide frame advanced the spring")
	}

	m, _ = m.Update(slideFrameMsg{id: m.ID()})
	if m.slide.offset >= offset {
		t.Error("own slide frame did not advance the spring")
	}
}
