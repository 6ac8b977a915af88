// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package indicator provides the page indicator component for pagekit.
//
// The indicator renders one element per page, either as a row of dots or as a
// single continuous progress bar, and translates mouse gestures (tap,
// long-press, drag) into page-change requests. It never mutates the pager's
// index directly; every gesture resolves to a JumpMsg the host routes back
// through the pager.
package indicator

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/jeranaias/pagekit/feedback"
	"github.com/jeranaias/pagekit/internal/ui/styles"
	"github.com/jeranaias/pagekit/internal/util"
)

// =============================================================================
// STYLE VARIANTS
// =============================================================================

// Style selects the indicator's visual form.
type Style int

const (
	StyleDot Style = iota // one glyph per page
	StyleBar              // continuous progress capsule
)

// SymbolSize selects the glyph pair used by the dot style.
type SymbolSize int

const (
	SizeSmall SymbolSize = iota
	SizeRegular
	SizeLarge
	SizeCustom // glyphs supplied via SetSymbols
)

// Spacing selects the gap between dot glyphs.
type Spacing int

const (
	SpacingAutomatic Spacing = iota
	SpacingNarrow
	SpacingWide
	SpacingCustom // gap supplied via SetCustomGap
)

// =============================================================================
// MODEL
// =============================================================================

// point is a pointer location in host-frame cell coordinates.
type point struct {
	x, y int
}

// symbolConfig holds the dot-style glyph configuration.
type symbolConfig struct {
	active    string
	inactive  string
	size      SymbolSize
	spacing   Spacing
	customGap int
}

// Model is the indicator component. It is a value model in the Bubble Tea
// style: Update returns the modified copy.
type Model struct {
	id    string
	style Style
	count int
	index int

	// Layout. originX/originY are set by the host each frame so pointer
	// coordinates can be translated into the indicator's local space.
	originX  int
	originY  int
	hPadding int
	barWidth int

	symbol     symbolConfig
	background lipgloss.Style
	hasBg      bool

	// Gesture state
	dragEnabled bool
	dragAnchor  *point
	dragMoved   bool
	dragZone    int

	press       pressState
	pulseActive bool
	pulseGen    int

	onTap       func()
	onLongPress func()
	sink        feedback.Sink

	bar *barAnimator
}

// New creates a dot-style indicator for count pages.
func New(count int) Model {
	m := Model{
		id:       uuid.NewString(),
		style:    StyleDot,
		count:    count,
		hPadding: 1,
		barWidth: defaultBarWidth,
		symbol: symbolConfig{
			size:    SizeRegular,
			spacing: SpacingAutomatic,
		},
		press: pressState{minDuration: defaultMinPressDuration},
		sink:  feedback.NewTerminal(),
	}
	m.background = lipgloss.NewStyle().Background(styles.SurfaceBright)
	m.hasBg = true
	return m
}

const (
	defaultBarWidth         = 20
	defaultMinPressDuration = 500 * time.Millisecond

	// dragThreshold is the minimum horizontal travel, in cells, before a
	// press is treated as a drag instead of a tap.
	dragThreshold = 1
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// SetStyle switches between dot and bar rendering. Switching into the bar
// style rebuilds the bar animator from the current index.
func (m *Model) SetStyle(style Style) {
	m.style = style
	if style == StyleBar {
		m.bar = newBarAnimator(m.barWidth, m.count, m.index)
	} else {
		m.bar = nil
	}
}

// SetBarWidth sets the capsule width in cells for the bar style.
func (m *Model) SetBarWidth(width int) {
	if width > 0 {
		m.barWidth = width
	}
	if m.bar != nil {
		m.bar = newBarAnimator(m.barWidth, m.count, m.index)
	}
}

// SetDragEnabled toggles drag-to-navigate.
func (m *Model) SetDragEnabled(enabled bool) {
	m.dragEnabled = enabled
}

// SetSymbols sets custom active/inactive glyphs for the dot style.
func (m *Model) SetSymbols(active, inactive string) {
	m.symbol.active = active
	m.symbol.inactive = inactive
	m.symbol.size = SizeCustom
}

// SetSymbolSize selects one of the built-in glyph pairs.
func (m *Model) SetSymbolSize(size SymbolSize) {
	m.symbol.size = size
}

// SetSpacing selects the gap between dot glyphs.
func (m *Model) SetSpacing(spacing Spacing) {
	m.symbol.spacing = spacing
}

// SetCustomGap sets an explicit gap in cells and switches to SpacingCustom.
func (m *Model) SetCustomGap(gap int) {
	if gap < 0 {
		gap = 0
	}
	m.symbol.customGap = gap
	m.symbol.spacing = SpacingCustom
}

// SetBackground sets the backdrop style behind the indicator.
func (m *Model) SetBackground(style lipgloss.Style) {
	m.background = style
	m.hasBg = true
}

// ClearBackground removes the backdrop.
func (m *Model) ClearBackground() {
	m.hasBg = false
}

// SetOnTap installs the tap callback.
func (m *Model) SetOnTap(fn func()) {
	m.onTap = fn
}

// SetOnLongPress installs the long-press callback.
func (m *Model) SetOnLongPress(fn func()) {
	m.onLongPress = fn
}

// SetMinPressDuration sets how long a press must be held before it is
// recognized as a long press.
func (m *Model) SetMinPressDuration(d time.Duration) {
	if d > 0 {
		m.press.minDuration = d
	}
}

// SetSink replaces the feedback sink.
func (m *Model) SetSink(sink feedback.Sink) {
	m.sink = sink
}

// SetID overrides the generated instance ID so a pager and its indicator can
// share one message scope.
func (m *Model) SetID(id string) {
	m.id = id
}

// SetPosition records the indicator's top-left corner in host-frame
// coordinates. The host calls this whenever layout changes.
func (m *Model) SetPosition(x, y int) {
	m.originX = x
	m.originY = y
}

// SetCount updates the page count. The current index is clamped into range.
func (m *Model) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	m.count = count
	if m.index >= count {
		m.index = count - 1
	}
	if m.index < 0 {
		m.index = 0
	}
	if m.bar != nil {
		m.bar = newBarAnimator(m.barWidth, m.count, m.index)
	}
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID returns the instance ID used to scope this indicator's messages.
func (m Model) ID() string { return m.id }

// Index returns the page the indicator currently highlights.
func (m Model) Index() int { return m.index }

// Count returns the page count.
func (m Model) Count() int { return m.count }

// DragEnabled reports whether drag-to-navigate is on.
func (m Model) DragEnabled() bool { return m.dragEnabled }

// Width returns the rendered width in cells.
func (m Model) Width() int {
	if m.count == 0 {
		return 0
	}
	if m.style == StyleBar {
		return m.barWidth
	}
	active, _ := m.glyphs()
	glyphW := util.StringWidth(active)
	if glyphW < 1 {
		glyphW = 1
	}
	return m.count*glyphW + m.gap()*(m.count-1) + 2*m.hPadding
}

// Height returns the rendered height in cells. Always one row.
func (m Model) Height() int { return 1 }

// gap returns the cell gap between dot glyphs for the configured spacing.
func (m Model) gap() int {
	switch m.symbol.spacing {
	case SpacingNarrow:
		return 0
	case SpacingWide:
		return 2
	case SpacingCustom:
		return m.symbol.customGap
	default:
		return 1
	}
}

// glyphs returns the active/inactive glyph pair for the configured size.
func (m Model) glyphs() (active, inactive string) {
	if m.symbol.size == SizeCustom && m.symbol.active != "" {
		inactive = m.symbol.inactive
		if inactive == "" {
			inactive = styles.DotGlyphsRegular[0]
		}
		return m.symbol.active, inactive
	}
	switch m.symbol.size {
	case SizeSmall:
		return styles.DotGlyphsSmall[1], styles.DotGlyphsSmall[0]
	case SizeLarge:
		return styles.DotGlyphsLarge[1], styles.DotGlyphsLarge[0]
	default:
		return styles.DotGlyphsRegular[1], styles.DotGlyphsRegular[0]
	}
}

// =============================================================================
// INDEX UPDATES
// =============================================================================

// SnapIndex moves the highlight to index without animating; the bar is
// rebuilt at rest. Used for initial placement.
func (m Model) SnapIndex(index int) Model {
	if m.count == 0 {
		return m
	}
	m.index = clampIndex(index, m.count)
	if m.bar != nil {
		m.bar = newBarAnimator(m.barWidth, m.count, m.index)
	}
	return m
}

// SetIndex moves the highlight to index and, in bar style, starts the fill
// animation. The returned command keeps animation frames flowing.
func (m Model) SetIndex(index int) (Model, tea.Cmd) {
	if m.count == 0 {
		return m, nil
	}
	if index < 0 {
		index = 0
	}
	if index >= m.count {
		index = m.count - 1
	}
	if index == m.index {
		return m, nil
	}
	m.index = index
	if m.bar != nil {
		m.bar.SetIndex(index)
		return m, m.frameTick()
	}
	return m, nil
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles mouse and timer messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		ev, ok := m.translateMouse(msg)
		if !ok {
			return m, nil
		}
		var effects []effect
		m, effects = m.handlePointer(ev)
		return m, m.runEffects(effects)

	case longPressMsg:
		if msg.id != m.id || msg.gen != m.press.gen {
			return m, nil
		}
		var effects []effect
		m, effects = m.handleLongPressElapsed()
		return m, m.runEffects(effects)

	case holdDoneMsg:
		if msg.id != m.id || msg.gen != m.press.gen {
			return m, nil
		}
		m.press.phase = phaseInactive
		return m, nil

	case pulseDoneMsg:
		if msg.id != m.id || msg.gen != m.pulseGen {
			return m, nil
		}
		m.pulseActive = false
		return m, nil

	case FrameMsg:
		if msg.ID != m.id || m.bar == nil {
			return m, nil
		}
		if m.bar.Step() {
			return m, m.frameTick()
		}
		return m, nil
	}
	return m, nil
}

// frameTick schedules the next bar animation frame.
func (m Model) frameTick() tea.Cmd {
	id := m.id
	return tea.Tick(styles.FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the indicator as a single row.
func (m Model) View() string {
	if m.count == 0 {
		return ""
	}
	var content string
	if m.style == StyleBar && m.bar != nil {
		content = m.bar.View()
	} else {
		content = m.viewDots()
	}
	if m.hasBg {
		return m.background.Render(content)
	}
	return content
}

// viewDots renders the dot row with long-press and tap emphasis applied.
func (m Model) viewDots() string {
	active, inactive := m.glyphs()

	activeStyle := lipgloss.NewStyle().Foreground(styles.Purple)
	inactiveStyle := lipgloss.NewStyle().Foreground(styles.TextMuted)
	switch {
	case m.press.phase == phasePressed:
		activeStyle = lipgloss.NewStyle().Foreground(styles.Emerald).Bold(true)
	case m.press.phase == phasePressing || m.pulseActive:
		activeStyle = activeStyle.Bold(true)
	}

	gap := strings.Repeat(" ", m.gap())
	pad := strings.Repeat(" ", m.hPadding)

	parts := make([]string, 0, m.count)
	for i := 0; i < m.count; i++ {
		if i == m.index {
			parts = append(parts, activeStyle.Render(active))
		} else {
			parts = append(parts, inactiveStyle.Render(inactive))
		}
	}
	return pad + strings.Join(parts, gap) + pad
}
