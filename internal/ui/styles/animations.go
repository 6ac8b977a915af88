// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for pagekit.
package styles

import "time"

// =============================================================================
// INDICATOR GLYPHS
// =============================================================================

// Dot glyphs per symbol size (ASCII-only for compatibility). Index 0 is the
// inactive glyph, index 1 the active one.
var (
	DotGlyphsSmall   = [2]string{".", "*"}
	DotGlyphsRegular = [2]string{".", "o"}
	DotGlyphsLarge   = [2]string{"o", "O"}
)

// Progress bar characters for the continuous indicator style.
var (
	BarFull  = "#"
	BarEmpty = "-"
)

// =============================================================================
// TIMING
// =============================================================================

// FrameInterval is the tick rate for spring-driven animations.
var FrameInterval = time.Second / 60

// SettleDelay is how long after bootstrap the first page is considered
// settled; feedback is gated until then.
var SettleDelay = 250 * time.Millisecond

// PressedHold is how long the long-press "pressed" emphasis is held before
// the indicator returns to its resting state.
var PressedHold = 500 * time.Millisecond

// TapPulse is the duration of the brief emphasis pulse played on a tap.
var TapPulse = 150 * time.Millisecond
