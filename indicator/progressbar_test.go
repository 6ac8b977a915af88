// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package indicator provides the page indicator component for pagekit.
package indicator

import (
	"testing"
)

// runToRest steps the animator until it settles, bounding the frame count.
func runToRest(t *testing.T, b *barAnimator) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		if !b.Step() {
			return
		}
	}
	t.Fatalf("animator did not settle: progress=%v target=%v loopDir=%v",
		b.progress, b.target, b.loopDir)
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.01
}

func TestBarAnimatorAtRest(t *testing.T) {
	b := newBarAnimator(20, 5, 2)
	if !approx(b.progress, 0.6) {
		t.Errorf("initial progress = %v, want 0.6", b.progress)
	}
	if b.align != alignLeading {
		t.Error("initial alignment should be leading")
	}
	if b.Step() {
		t.Error("animator should start at rest")
	}
}

func TestNormalUpdateAnimatesToFill(t *testing.T) {
	b := newBarAnimator(20, 5, 0)
	b.SetIndex(1)

	if !b.animating {
		t.Fatal("normal update did not start animating")
	}
	runToRest(t, b)
	if !approx(b.progress, 0.4) {
		t.Errorf("progress at rest = %v, want 0.4", b.progress)
	}
	if b.align != alignLeading {
		t.Error("normal update should stay leading-aligned")
	}
}

// TestForwardLoop checks the rest state after wrapping last -> first with
// five pages: the bar must rest leading-aligned at 1/5, never at zero fill.
func TestForwardLoop(t *testing.T) {
	b := newBarAnimator(20, 5, 4)
	b.SetIndex(0)

	if b.loopDir != loopForward {
		t.Fatalf("loopDir = %v, want loopForward", b.loopDir)
	}
	if b.overlay != 1 {
		t.Errorf("overlay fill = %v, want 1", b.overlay)
	}

	runToRest(t, b)
	if b.align != alignLeading {
		t.Error("forward loop did not rest leading-aligned")
	}
	if !approx(b.progress, 0.2) {
		t.Errorf("progress at rest = %v, want 0.2 (one page of five)", b.progress)
	}
	if b.progress < settleEpsilon {
		t.Error("forward loop rested at empty fill")
	}
	if b.loopDir != loopNone {
		t.Errorf("loopDir at rest = %v, want loopNone", b.loopDir)
	}
}

func TestBackwardLoop(t *testing.T) {
	b := newBarAnimator(20, 5, 0)
	b.SetIndex(4)

	if b.loopDir != loopBackward {
		t.Fatalf("loopDir = %v, want loopBackward", b.loopDir)
	}
	if b.align != alignTrailing {
		t.Error("backward loop should animate from the trailing edge")
	}

	runToRest(t, b)
	if b.align != alignLeading {
		t.Error("backward loop did not flip back to leading")
	}
	if !approx(b.progress, 1.0) {
		t.Errorf("progress at rest = %v, want 1.0 (last page)", b.progress)
	}
}

// TestBackwardLoopBackPressure checks that index changes arriving during a
// backward wrap accumulate and are applied in one step on completion.
func TestBackwardLoopBackPressure(t *testing.T) {
	b := newBarAnimator(20, 5, 0)
	b.SetIndex(4) // wrap in flight

	// A fast backward drag keeps decrementing before the wrap settles.
	b.SetIndex(3)
	b.SetIndex(2)
	if b.pendingDelta != -2 {
		t.Errorf("pendingDelta = %d, want -2", b.pendingDelta)
	}
	// Mid-flight requests must not retarget the running animation.
	if b.target != 1 {
		t.Errorf("target redirected mid-wrap to %v", b.target)
	}

	runToRest(t, b)
	if b.pendingDelta != 0 {
		t.Errorf("pendingDelta not drained: %d", b.pendingDelta)
	}
	if !approx(b.progress, 0.6) {
		t.Errorf("progress at rest = %v, want 0.6 (page 3 of 5)", b.progress)
	}
	if b.align != alignLeading {
		t.Error("not leading-aligned after drain")
	}
}

// TestForwardLoopWithLateChange checks that a change arriving during the
// forward wrap decides the landing fill.
func TestForwardLoopWithLateChange(t *testing.T) {
	b := newBarAnimator(20, 5, 4)
	b.SetIndex(0)
	b.SetIndex(1) // arrives while the overlay is still draining

	runToRest(t, b)
	if !approx(b.progress, 0.4) {
		t.Errorf("progress at rest = %v, want 0.4 (page 2 of 5)", b.progress)
	}
}

func TestSetIndexGuards(t *testing.T) {
	b := newBarAnimator(20, 0, 0)
	b.SetIndex(3) // zero pages: must not panic or animate
	if b.animating {
		t.Error("animator animating with zero pages")
	}

	b = newBarAnimator(20, 5, 2)
	b.SetIndex(2) // same index: no-op
	if b.animating {
		t.Error("same-index write started an animation")
	}
}

func TestBarViewFillLengths(t *testing.T) {
	b := newBarAnimator(10, 5, 4)
	view := stripANSI(b.View())
	if got := countRune(view, '#'); got != 10 {
		t.Errorf("full bar renders %d fill cells, want 10", got)
	}

	b = newBarAnimator(10, 5, 0)
	view = stripANSI(b.View())
	if got := countRune(view, '#'); got != 2 {
		t.Errorf("one-fifth bar renders %d fill cells, want 2", got)
	}
	if got := countRune(view, '-'); got != 8 {
		t.Errorf("one-fifth bar renders %d empty cells, want 8", got)
	}
}

func TestBarViewTrailingAlignment(t *testing.T) {
	b := newBarAnimator(10, 5, 0)
	b.SetIndex(4)
	// Step a little: fill grows from the trailing edge.
	for i := 0; i < 10; i++ {
		b.Step()
	}
	view := stripANSI(b.View())
	if view[0] == '#' {
		t.Error("trailing-aligned fill starts at the leading edge")
	}
	if view[len(view)-1] != '#' {
		t.Error("trailing-aligned fill missing at the trailing edge")
	}
}

// countRune counts occurrences of r in s.
func countRune(s string, r rune) int {
	n := 0
	for _, c := range s {
		if c == r {
			n++
		}
	}
	return n
}

// stripANSI removes escape sequences from a rendered string.
func stripANSI(s string) string {
	var out []rune
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
