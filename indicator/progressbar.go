// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package indicator provides the page indicator component for pagekit.
//
// This file holds the progress bar animator: a capsule whose fill length
// represents (index+1)/count. Ordinary index changes spring the fill to its
// new length. Loop wraps get a two-phase treatment so the bar appears to
// wrap around the edge instead of snapping across its whole width:
//
//	forward wrap (last -> first):  the fill resets and a trailing-aligned
//	overlay drains full-to-empty, then the fill grows to one page's worth.
//	backward wrap (first -> last): the fill grows to full from the trailing
//	edge, then alignment flips back to leading at full length.
//
// While a backward wrap is in flight, further index changes accumulate in
// pendingDelta and are applied in one step when the wrap completes, so a fast
// backward drag cannot pile conflicting animations onto the bar.
package indicator

import (
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pagekit/internal/ui/styles"
)

// =============================================================================
// STATE
// =============================================================================

// alignment selects which edge the fill grows from.
type alignment int

const (
	alignLeading alignment = iota
	alignTrailing
)

// loopDirection marks an in-flight loop-boundary animation.
type loopDirection int

const (
	loopNone loopDirection = iota
	loopForward
	loopBackward
)

// springFrequency and springDamping tune the fill animation. Slightly
// overdamped so the fill never overshoots past the capsule edge.
const (
	springFrequency = 7.0
	springDamping   = 1.0

	// settleEpsilon bounds position and velocity below which a spring is
	// considered at rest.
	settleEpsilon = 0.001
)

// barAnimator owns the progress bar's animation state. It is rebuilt whenever
// the indicator switches into the bar style or the page count changes.
type barAnimator struct {
	width int
	count int

	// lastIndex is the most recent logical index handed to SetIndex. The
	// animation may lag behind it during a loop wrap.
	lastIndex int

	progress float64
	velocity float64
	target   float64
	align    alignment

	loopDir loopDirection
	// loopBase is the index the in-flight backward wrap landed on;
	// pendingDelta accumulates changes that arrived during the wrap.
	loopBase     int
	pendingDelta int

	// overlay is the trailing-aligned drain bar used by the forward wrap.
	overlay    float64
	overlayVel float64

	spring    harmonica.Spring
	animating bool
}

// newBarAnimator creates an animator at rest on index.
func newBarAnimator(width, count, index int) *barAnimator {
	b := &barAnimator{
		width:  width,
		count:  count,
		align:  alignLeading,
		spring: harmonica.NewSpring(harmonica.FPS(60), springFrequency, springDamping),
	}
	if count > 0 {
		b.lastIndex = clampIndex(index, count)
		b.progress = b.fillFor(b.lastIndex)
		b.target = b.progress
	}
	return b
}

// fillFor returns the resting fill fraction for index.
func (b *barAnimator) fillFor(index int) float64 {
	if b.count == 0 {
		return 0
	}
	return float64(index+1) / float64(b.count)
}

// =============================================================================
// STATE MACHINE
// =============================================================================

// SetIndex feeds a render-index change into the animator.
func (b *barAnimator) SetIndex(index int) {
	if b.count == 0 {
		return
	}
	index = clampIndex(index, b.count)
	old := b.lastIndex
	if index == old {
		return
	}
	b.lastIndex = index

	switch {
	case b.loopDir == loopBackward:
		// Back-pressure: the wrap animation owns the bar until it
		// settles. Remember how far the index moved meanwhile.
		b.pendingDelta += index - old
		return

	case b.loopDir == loopForward:
		// The completion handler animates to lastIndex, which we just
		// updated. Nothing else to do mid-flight.
		return

	case b.count > 1 && old == b.count-1 && index == 0:
		// Forward wrap: reset the fill and drain the trailing overlay.
		b.loopDir = loopForward
		b.align = alignLeading
		b.progress = 0
		b.velocity = 0
		b.overlay = 1
		b.overlayVel = 0
		b.animating = true
		return

	case b.count > 1 && old == 0 && index == b.count-1:
		// Backward wrap: grow to full from the trailing edge.
		b.loopDir = loopBackward
		b.loopBase = index
		b.pendingDelta = 0
		b.align = alignTrailing
		b.velocity = 0
		b.target = 1
		b.animating = true
		return
	}

	// Normal update: spring the fill to the new length, leading-aligned.
	b.align = alignLeading
	b.target = b.fillFor(index)
	b.animating = true
}

// Step advances one animation frame. It returns true while more frames are
// needed. Phase completions advance here: overlay drained, wrap landed,
// pending deltas applied.
func (b *barAnimator) Step() bool {
	if !b.animating {
		return false
	}

	switch b.loopDir {
	case loopForward:
		b.overlay, b.overlayVel = b.spring.Update(b.overlay, b.overlayVel, 0)
		if settled(b.overlay, b.overlayVel, 0) {
			b.overlay = 0
			b.overlayVel = 0
			b.loopDir = loopNone
			// Land on whatever index is current; never rest at an
			// empty bar.
			b.target = b.fillFor(b.lastIndex)
		}
		return true

	case loopBackward:
		b.progress, b.velocity = b.spring.Update(b.progress, b.velocity, b.target)
		if settled(b.progress, b.velocity, b.target) {
			// Flip back to leading at full length, then apply all
			// index changes that queued up during the wrap at once.
			b.align = alignLeading
			b.progress = 1
			b.velocity = 0
			b.loopDir = loopNone
			landing := clampIndex(b.loopBase+b.pendingDelta, b.count)
			b.pendingDelta = 0
			b.target = b.fillFor(landing)
			if settled(b.progress, 0, b.target) {
				b.animating = false
			}
		}
		return b.animating

	default:
		b.progress, b.velocity = b.spring.Update(b.progress, b.velocity, b.target)
		if settled(b.progress, b.velocity, b.target) {
			b.progress = b.target
			b.velocity = 0
			b.animating = false
		}
		return b.animating
	}
}

// settled reports whether a spring is at rest on its target.
func settled(pos, vel, target float64) bool {
	d := pos - target
	if d < 0 {
		d = -d
	}
	v := vel
	if v < 0 {
		v = -v
	}
	return d < settleEpsilon && v < settleEpsilon
}

// =============================================================================
// RENDERING
// =============================================================================

// View renders the capsule row.
func (b *barAnimator) View() string {
	if b.width <= 0 || b.count == 0 {
		return ""
	}

	fill := int(b.progress*float64(b.width) + 0.5)
	if fill > b.width {
		fill = b.width
	}
	overlayFill := int(b.overlay*float64(b.width) + 0.5)
	if overlayFill > b.width {
		overlayFill = b.width
	}

	cells := make([]bool, b.width)
	for i := range cells {
		if b.align == alignLeading {
			cells[i] = i < fill
		} else {
			cells[i] = i >= b.width-fill
		}
		// Trailing overlay drawn during the forward wrap.
		if !cells[i] && overlayFill > 0 && i >= b.width-overlayFill {
			cells[i] = true
		}
	}

	fillStyle := lipgloss.NewStyle().Foreground(styles.Cyan)
	emptyStyle := lipgloss.NewStyle().Foreground(styles.OverlayDim)

	// Style contiguous runs rather than cell by cell.
	var sb strings.Builder
	for i := 0; i < b.width; {
		j := i
		for j < b.width && cells[j] == cells[i] {
			j++
		}
		if cells[i] {
			sb.WriteString(fillStyle.Render(strings.Repeat(styles.BarFull, j-i)))
		} else {
			sb.WriteString(emptyStyle.Render(strings.Repeat(styles.BarEmpty, j-i)))
		}
		i = j
	}
	return sb.String()
}
