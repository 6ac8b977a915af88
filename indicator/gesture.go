// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package indicator provides the page indicator component for pagekit.
//
// This file implements gesture recognition. Pointer handling is split into a
// pure state-transition function returning a list of effects, and a thin
// materialization step turning effects into Bubble Tea commands. The pure
// half is what the tests exercise.
package indicator

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/pagekit/feedback"
	"github.com/jeranaias/pagekit/internal/ui/styles"
)

// =============================================================================
// MESSAGES
// =============================================================================

// JumpMsg is a page-change request produced by a tap zone or drag gesture.
// The host routes it back through the pager's index path.
type JumpMsg struct {
	ID    string
	Index int
}

// FrameMsg drives the bar animator. Scoped by instance ID so multiple
// indicators in one program do not consume each other's frames.
type FrameMsg struct {
	ID string
}

// longPressMsg fires when the minimum press duration elapses.
type longPressMsg struct {
	id  string
	gen int
}

// holdDoneMsg fires when the post-recognition emphasis hold elapses.
type holdDoneMsg struct {
	id  string
	gen int
}

// pulseDoneMsg ends the brief tap emphasis pulse.
type pulseDoneMsg struct {
	id  string
	gen int
}

// =============================================================================
// POINTER EVENTS
// =============================================================================

type pointerKind int

const (
	pointerDown pointerKind = iota
	pointerMove
	pointerUp
)

// pointerEvent is a normalized pointer event in host-frame coordinates.
type pointerEvent struct {
	kind pointerKind
	x, y int
}

// translateMouse converts a raw mouse message into a pointer event. Only
// events that concern this indicator survive: presses must start inside its
// bounds, moves and releases are relevant only while a gesture is active.
func (m Model) translateMouse(msg tea.MouseMsg) (pointerEvent, bool) {
	switch msg.Type {
	case tea.MouseLeft:
		if m.dragAnchor != nil {
			return pointerEvent{kind: pointerMove, x: msg.X, y: msg.Y}, true
		}
		if !m.contains(msg.X, msg.Y) {
			return pointerEvent{}, false
		}
		return pointerEvent{kind: pointerDown, x: msg.X, y: msg.Y}, true
	case tea.MouseRelease:
		if m.dragAnchor == nil {
			return pointerEvent{}, false
		}
		return pointerEvent{kind: pointerUp, x: msg.X, y: msg.Y}, true
	}
	return pointerEvent{}, false
}

// contains reports whether the host-frame cell (x, y) is inside the
// indicator's rendered bounds.
func (m Model) contains(x, y int) bool {
	w := m.Width()
	if w == 0 {
		return false
	}
	return y == m.originY && x >= m.originX && x < m.originX+w
}

// =============================================================================
// EFFECTS
// =============================================================================

type effectKind int

const (
	fxRequestIndex effectKind = iota // emit JumpMsg
	fxInvokeTap                      // run tap callback
	fxInvokeLongPress                // run long-press callback
	fxPlayFeedback                   // play a feedback pulse
	fxScheduleLongPress              // arm the min-duration timer
	fxScheduleHold                   // arm the pressed-hold timer
	fxSchedulePulse                  // arm the tap pulse timer
)

// effect is a side effect requested by a pure gesture transition.
type effect struct {
	kind     effectKind
	index    int
	feedback feedback.Kind
}

// runEffects materializes effects into Bubble Tea commands.
func (m Model) runEffects(effects []effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, fx := range effects {
		switch fx.kind {
		case fxRequestIndex:
			id, index := m.id, fx.index
			cmds = append(cmds, func() tea.Msg {
				return JumpMsg{ID: id, Index: index}
			})
		case fxInvokeTap:
			if m.onTap != nil {
				fn := m.onTap
				cmds = append(cmds, func() tea.Msg {
					fn()
					return nil
				})
			}
		case fxInvokeLongPress:
			if m.onLongPress != nil {
				fn := m.onLongPress
				cmds = append(cmds, func() tea.Msg {
					fn()
					return nil
				})
			}
		case fxPlayFeedback:
			if m.sink != nil {
				if cmd := m.sink.Play(fx.feedback); cmd != nil {
					cmds = append(cmds, cmd)
				}
			}
		case fxScheduleLongPress:
			id, gen, d := m.id, m.press.gen, m.press.minDuration
			cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg {
				return longPressMsg{id: id, gen: gen}
			}))
		case fxScheduleHold:
			id, gen := m.id, m.press.gen
			cmds = append(cmds, tea.Tick(styles.PressedHold, func(time.Time) tea.Msg {
				return holdDoneMsg{id: id, gen: gen}
			}))
		case fxSchedulePulse:
			id, gen := m.id, m.pulseGen
			cmds = append(cmds, tea.Tick(styles.TapPulse, func(time.Time) tea.Msg {
				return pulseDoneMsg{id: id, gen: gen}
			}))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// =============================================================================
// POINTER STATE MACHINE
// =============================================================================

// handlePointer is the pure gesture transition. It owns the drag anchor and
// the handoff between tap, long-press and drag recognition.
func (m Model) handlePointer(ev pointerEvent) (Model, []effect) {
	switch ev.kind {
	case pointerDown:
		m.dragAnchor = &point{x: ev.x, y: ev.y}
		m.dragMoved = false
		m.dragZone = m.zoneAt(ev.x)
		m.press.phase = phasePressing
		m.press.gen++
		return m, []effect{{kind: fxScheduleLongPress}}

	case pointerMove:
		if m.dragAnchor == nil {
			return m, nil
		}
		travel := ev.x - m.dragAnchor.x
		if travel < 0 {
			travel = -travel
		}
		if !m.dragMoved && travel < dragThreshold {
			return m, nil
		}
		// Travel threshold crossed: this is a drag, not a tap or press.
		if !m.dragMoved {
			m.dragMoved = true
			m.press.phase = phaseInactive
			m.press.gen++
		}
		m.dragAnchor = &point{x: ev.x, y: ev.y}
		if !m.dragEnabled {
			return m, nil
		}
		zone := m.zoneAt(ev.x)
		if zone < 0 || zone == m.dragZone {
			return m, nil
		}
		m.dragZone = zone
		return m, []effect{{kind: fxRequestIndex, index: zone}}

	case pointerUp:
		effects := []effect(nil)
		if !m.dragMoved && m.press.phase == phasePressing {
			// Released before the long-press threshold: a tap.
			m.press.phase = phaseInactive
			m.press.gen++
			m.pulseGen++
			m.pulseActive = true
			effects = append(effects,
				effect{kind: fxInvokeTap},
				effect{kind: fxSchedulePulse},
			)
		}
		m.dragAnchor = nil
		m.dragMoved = false
		return m, effects
	}
	return m, nil
}

// =============================================================================
// COORDINATE MAPPING
// =============================================================================

// zoneAt maps a host-frame x coordinate to a page index, or -1 when the
// geometry cannot support a mapping (no pages, zero width).
func (m Model) zoneAt(x int) int {
	if m.count == 0 {
		return -1
	}
	if m.style == StyleBar {
		return barZone(x-m.originX, m.barWidth, m.count)
	}
	return dotZone(x-m.originX-m.hPadding, m.Width()-2*m.hPadding, m.count)
}

// dotZone divides the dot content region (width minus fixed padding) into
// count equal zones and returns the zone containing relative x.
func dotZone(relX, contentWidth, count int) int {
	if contentWidth <= 0 || count == 0 {
		return -1
	}
	zoneWidth := float64(contentWidth) / float64(count)
	zone := int(float64(relX) / zoneWidth)
	return clampIndex(zone, count)
}

// barZone maps an absolute x within the bar to a page index by fractional
// position.
func barZone(relX, barWidth, count int) int {
	if barWidth <= 0 || count == 0 {
		return -1
	}
	frac := float64(relX) / float64(barWidth)
	return clampIndex(int(frac*float64(count)), count)
}

// clampIndex clamps zone into [0, count-1].
func clampIndex(zone, count int) int {
	if zone < 0 {
		return 0
	}
	if zone >= count {
		return count - 1
	}
	return zone
}
