// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
//
// This file implements page transitions. The pager does no interpolation of
// its own; it hands a target and spring parameters to harmonica and renders
// whatever offset the spring reports each frame.
package pager

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"

	"github.com/jeranaias/pagekit/internal/ui/styles"
	"github.com/jeranaias/pagekit/internal/util"
)

// =============================================================================
// DESCRIPTORS
// =============================================================================

// Direction is the inferred movement direction of a page change.
type Direction int

const (
	Backward Direction = iota
	Forward
)

// String returns the direction name.
func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// Edge identifies a horizontal edge of the pager.
type Edge int

const (
	EdgeLeading  Edge = iota // left in left-to-right layouts
	EdgeTrailing             // right
)

// Transition describes how the incoming page enters the frame.
type Transition struct {
	From Edge
}

// Built-in transitions. The defaults pair SlideFromTrailing with forward
// movement and SlideFromLeading with backward movement.
var (
	SlideFromTrailing = Transition{From: EdgeTrailing}
	SlideFromLeading  = Transition{From: EdgeLeading}
)

// SpringSpec carries the parameters handed to harmonica for the slide.
type SpringSpec struct {
	Frequency float64
	Damping   float64
}

// DefaultSpring is slightly overdamped so pages land without bouncing.
var DefaultSpring = SpringSpec{Frequency: 6.0, Damping: 1.0}

// =============================================================================
// SLIDE STATE
// =============================================================================

// slideOffsetEpsilon is the sub-cell offset below which a slide is done.
const slideOffsetEpsilon = 0.5

// slideState tracks an in-flight slide transition. offset is the number of
// columns the incoming page still has to travel.
type slideState struct {
	animating bool
	offset    float64
	velocity  float64
	from      Edge
	spring    harmonica.Spring
}

// startSlide begins a slide for a page change in dir. Without a measured
// width there is nothing to animate.
func (m Model) startSlide(dir Direction) Model {
	if m.width <= 0 {
		m.slide = slideState{}
		return m
	}
	t := m.forward
	if dir == Backward {
		t = m.backward
	}
	m.slide = slideState{
		animating: true,
		offset:    float64(m.width),
		from:      t.From,
		spring:    harmonica.NewSpring(harmonica.FPS(60), m.springSpec.Frequency, m.springSpec.Damping),
	}
	return m
}

// stepSlide advances the slide spring one frame.
func (m Model) stepSlide() Model {
	if !m.slide.animating {
		return m
	}
	m.slide.offset, m.slide.velocity = m.slide.spring.Update(m.slide.offset, m.slide.velocity, 0)
	if m.slide.offset < slideOffsetEpsilon && m.slide.velocity > -slideOffsetEpsilon && m.slide.velocity < slideOffsetEpsilon {
		m.slide = slideState{}
	}
	return m
}

// slideFrame schedules the next slide animation frame.
func (m Model) slideFrame() tea.Cmd {
	id := m.id
	return tea.Tick(styles.FrameInterval, func(time.Time) tea.Msg {
		return slideFrameMsg{id: id}
	})
}

// renderSlide shifts the incoming page by the current offset. Entering from
// the trailing edge indents each line; entering from the leading edge crops
// the leading columns so the visible part hugs the left edge.
func (m Model) renderSlide(page string) string {
	offset := int(m.slide.offset)
	if offset <= 0 {
		return page
	}
	lines := strings.Split(page, "\n")
	for i, line := range lines {
		if m.slide.from == EdgeTrailing {
			lines[i] = util.TruncateWidth(strings.Repeat(" ", offset)+line, m.width)
		} else {
			lines[i] = util.CropLeftWidth(line, offset)
		}
	}
	return strings.Join(lines, "\n")
}
