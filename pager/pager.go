// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package pager provides the paging component for pagekit.
//
// A pager shows one page from an ordered set at a time. The host owns the
// current index and writes it with SetIndexMsg; the pager reconciles each
// write against its loop policy, animates the transition, and announces the
// result with PageChangedMsg. An optional indicator (dots or a progress bar)
// renders below the page and feeds tap and drag gestures back through the
// same index path.
package pager

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jeranaias/pagekit/feedback"
	"github.com/jeranaias/pagekit/indicator"
)

// =============================================================================
// PAGES
// =============================================================================

// Page is a renderable unit of pager content.
type Page interface {
	View() string
}

// Text adapts a plain string into a Page.
type Text string

// View returns the string itself.
func (t Text) View() string { return string(t) }

// =============================================================================
// MODEL
// =============================================================================

// Model is the pager component. It is a value model: Update returns the
// modified copy, and the fluent With options return modified copies too.
type Model struct {
	id    string
	pages []Page

	// Navigation state. externalIndex mirrors the host's view of the
	// index; internalIndex drives rendering and direction inference and
	// is only ever written by reconcile and bootstrap.
	externalIndex int
	internalIndex int
	pageCount     int
	looping       bool
	movingForward bool

	// Bootstrap state
	bootstrapped bool
	settled      bool
	settleGen    int
	defaultPage  DefaultPage

	// Transition state
	forward    Transition
	backward   Transition
	springSpec SpringSpec
	slide      slideState

	width  int
	height int

	feedbackKind feedback.Kind
	sink         feedback.Sink
	keymap       KeyMap
	onPageChange func(old, new int, dir Direction)

	// Indicator state. The built-in indicator is hidden unless requested;
	// a custom render function replaces it entirely.
	showIndicator   bool
	customIndicator func(index, count int) string
	indicatorOffset int
	ind             indicator.Model
}

// New creates a pager over the given pages, bootstrapped onto its initial
// page and ready for Init.
func New(pages ...Page) Model {
	m := Model{
		id:           uuid.NewString(),
		pages:        pages,
		pageCount:    len(pages),
		forward:      SlideFromTrailing,
		backward:     SlideFromLeading,
		springSpec:   DefaultSpring,
		feedbackKind: feedback.Impact,
		sink:         feedback.NewTerminal(),
		keymap:       DefaultKeyMap(),
	}
	m.ind = indicator.New(len(pages))
	m.ind.SetID(m.id)
	m.ind.SetSink(m.sink)
	return m.bootstrap()
}

// =============================================================================
// OPTIONS
// =============================================================================

// WithIndex sets the host-supplied starting index and re-runs bootstrap.
func (m Model) WithIndex(index int) Model {
	m.externalIndex = index
	return m.bootstrap()
}

// WithLooping sets the wraparound policy. Immutable after mounting by
// convention; changing it re-runs bootstrap.
func (m Model) WithLooping(looping bool) Model {
	m.looping = looping
	return m.bootstrap()
}

// WithDefaultPage selects the page shown when no starting index is supplied.
func (m Model) WithDefaultPage(dp DefaultPage) Model {
	m.defaultPage = dp
	return m.bootstrap()
}

// WithTransition sets the forward and backward transition descriptors and
// the spring parameters handed to the animation engine.
func (m Model) WithTransition(forward, backward Transition, spring SpringSpec) Model {
	m.forward = forward
	m.backward = backward
	if spring.Frequency > 0 {
		m.springSpec = spring
	}
	return m
}

// WithFeedback selects the feedback kind played on page changes.
// feedback.None disables it.
func (m Model) WithFeedback(kind feedback.Kind) Model {
	m.feedbackKind = kind
	return m
}

// WithFeedbackSink replaces the feedback sink for both the pager and its
// indicator.
func (m Model) WithFeedbackSink(sink feedback.Sink) Model {
	m.sink = sink
	m.ind.SetSink(sink)
	return m
}

// WithKeyMap replaces the navigation key bindings.
func (m Model) WithKeyMap(keymap KeyMap) Model {
	m.keymap = keymap
	return m
}

// WithOnPageChange installs a host callback invoked after each page change.
func (m Model) WithOnPageChange(fn func(old, new int, dir Direction)) Model {
	m.onPageChange = fn
	return m
}

// WithIndicator shows the built-in indicator and applies cfg to it.
func (m Model) WithIndicator(cfg func(*indicator.Model)) Model {
	m.showIndicator = true
	if cfg != nil {
		cfg(&m.ind)
	}
	return m
}

// WithCustomIndicator replaces the built-in indicator with a host-rendered
// one. The function receives the current index and page count.
func (m Model) WithCustomIndicator(fn func(index, count int) string) Model {
	m.customIndicator = fn
	return m
}

// WithIndicatorOffset sets the indicator's vertical offset, in rows, from
// the bottom edge.
func (m Model) WithIndicatorOffset(rows int) Model {
	if rows >= 0 {
		m.indicatorOffset = rows
	}
	return m
}

// SetPages replaces the page content. The page count is discovered from the
// new content and bootstrap re-runs; call Init's settle tick again via the
// returned command.
func (m Model) SetPages(pages []Page) (Model, tea.Cmd) {
	m.pages = pages
	m.pageCount = len(pages)
	m.bootstrapped = false
	m.ind.SetCount(m.pageCount)
	m = m.bootstrap()
	if !m.bootstrapped {
		return m, nil
	}
	return m, m.settleTick()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// ID returns the pager's instance ID, used to address it with SetIndexFor.
func (m Model) ID() string { return m.id }

// Index returns the current page index.
func (m Model) Index() int { return m.internalIndex }

// Count returns the page count.
func (m Model) Count() int { return m.pageCount }

// Looping reports the wraparound policy.
func (m Model) Looping() bool { return m.looping }

// MovingForward reports the direction of the most recent page change.
func (m Model) MovingForward() bool { return m.movingForward }

// Settled reports whether the bootstrap settle delay has elapsed.
func (m Model) Settled() bool { return m.settled }

// Indicator returns the built-in indicator model.
func (m Model) Indicator() indicator.Model { return m.ind }

// =============================================================================
// BUBBLE TEA INTERFACE
// =============================================================================

// Init schedules the bootstrap settle tick.
func (m Model) Init() tea.Cmd {
	if m.pageCount == 0 {
		return nil
	}
	return m.settleTick()
}

// Update handles index writes, navigation keys, indicator gestures and
// animation frames.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetIndexMsg:
		if msg.ID != "" && msg.ID != m.id {
			return m, nil
		}
		if msg.origin == originSelf {
			// Echo of a controller-initiated write; already applied.
			return m, nil
		}
		return m.reconcile(msg.Index)

	case indicator.JumpMsg:
		if msg.ID != m.id {
			return m, nil
		}
		// Gesture-driven writes take the same path as host writes.
		return m.reconcile(msg.Index)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutIndicator()
		return m, nil

	case tea.MouseMsg:
		if !m.indicatorVisible() || m.customIndicator != nil {
			return m, nil
		}
		var cmd tea.Cmd
		m.ind, cmd = m.ind.Update(msg)
		return m, cmd

	case settledMsg:
		if msg.id == m.id && msg.gen == m.settleGen {
			m.settled = true
		}
		return m, nil

	case slideFrameMsg:
		if msg.id != m.id {
			return m, nil
		}
		m = m.stepSlide()
		if m.slide.animating {
			return m, m.slideFrame()
		}
		return m, nil

	default:
		// Indicator timers and bar animation frames.
		var cmd tea.Cmd
		m.ind, cmd = m.ind.Update(msg)
		return m, cmd
	}
}

// handleKey maps navigation keys onto reconciliation requests.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Next):
		return m.reconcile(m.internalIndex + 1)
	case key.Matches(msg, m.keymap.Prev):
		return m.reconcile(m.internalIndex - 1)
	case key.Matches(msg, m.keymap.First):
		return m.reconcile(0)
	case key.Matches(msg, m.keymap.Last):
		return m.reconcile(m.pageCount - 1)
	}
	return m, nil
}

// indicatorVisible reports whether any indicator renders: the built-in one
// when requested, or a custom one when supplied.
func (m Model) indicatorVisible() bool {
	return m.showIndicator || m.customIndicator != nil
}

// layoutIndicator repositions the indicator after a size change so pointer
// coordinates keep mapping onto it correctly.
func (m *Model) layoutIndicator() {
	if m.height <= 0 {
		return
	}
	row := m.height - 1 - m.indicatorOffset
	if row < 0 {
		row = 0
	}
	x := (m.width - m.ind.Width()) / 2
	if x < 0 {
		x = 0
	}
	m.ind.SetPosition(x, row)
}

// =============================================================================
// VIEW
// =============================================================================

// View renders the current page with the indicator overlaid near the bottom
// edge.
func (m Model) View() string {
	if m.pageCount == 0 {
		return ""
	}
	page := m.pages[m.internalIndex].View()
	if m.slide.animating {
		page = m.renderSlide(page)
	}
	if !m.indicatorVisible() {
		return page
	}

	var ind string
	if m.customIndicator != nil {
		ind = m.customIndicator(m.internalIndex, m.pageCount)
	} else {
		ind = m.ind.View()
	}
	if ind == "" {
		return page
	}
	if m.height <= 0 {
		return page + "\n" + ind
	}

	// Pad the page down so the indicator lands on its configured row, then
	// center it horizontally at the same origin used for gesture mapping.
	lines := strings.Split(page, "\n")
	indRow := m.height - 1 - m.indicatorOffset
	if indRow < 0 {
		indRow = 0
	}
	for len(lines) < indRow {
		lines = append(lines, "")
	}
	if len(lines) > indRow {
		lines = lines[:indRow]
	}
	x := (m.width - m.ind.Width()) / 2
	if m.customIndicator != nil {
		x = 0
	}
	if x < 0 {
		x = 0
	}
	lines = append(lines, strings.Repeat(" ", x)+ind)
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
