// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Command pagerdemo is a small program showing pagekit end to end: a pager
// over a few sample pages with the indicator enabled, drag navigation, and
// live config reload.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/pagekit/feedback"
	"github.com/jeranaias/pagekit/indicator"
	"github.com/jeranaias/pagekit/internal/config"
	"github.com/jeranaias/pagekit/internal/ui/styles"
	"github.com/jeranaias/pagekit/pager"
)

// =============================================================================
// SAMPLE CONTENT
// =============================================================================

var samplePages = []string{
	"Welcome to pagekit.\n\nUse left/right (or h/l) to change pages,\nor drag across the indicator below.",
	"Looping.\n\nWith looping enabled, advancing past the last\npage wraps around to the first as a forward move.",
	"Indicator styles.\n\nThe indicator renders as dots or as a\ncontinuous progress bar (indicator.style = \"bar\").",
	"Gestures.\n\nTap the indicator to pulse it, or press and\nhold for half a second to trigger a long press.",
	"Configuration.\n\nEdit ~/.config/pagerdemo/config.toml while this\nprogram runs; changes apply immediately.",
}

// =============================================================================
// APP MODEL
// =============================================================================

// configReloadedMsg carries a freshly loaded config into the event loop.
type configReloadedMsg struct {
	cfg *Config
}

// Config aliases the demo config type for message payloads.
type Config = config.Config

type app struct {
	pager    pager.Model
	status   string
	quitting bool
}

// buildPager assembles a pager from the config.
func buildPager(cfg *Config) pager.Model {
	bodies := cfg.Pages
	if len(bodies) == 0 {
		bodies = samplePages
	}
	pageStyle := lipgloss.NewStyle().
		Foreground(styles.TextPrimary).
		Padding(1, 2)
	pages := make([]pager.Page, len(bodies))
	for i, body := range bodies {
		pages[i] = pager.Text(pageStyle.Render(body))
	}

	m := pager.New(pages...).
		WithLooping(cfg.Pager.Loop).
		WithFeedback(feedback.ParseKind(cfg.Pager.Feedback))
	if cfg.Pager.DefaultPage == "last" {
		m = m.WithDefaultPage(pager.DefaultLast)
	}
	if cfg.Pager.InitialIndex != 0 {
		m = m.WithIndex(cfg.Pager.InitialIndex)
	}
	if cfg.Indicator.Visible {
		m = m.WithIndicator(func(ind *indicator.Model) {
			applyIndicatorConfig(ind, cfg)
		}).WithIndicatorOffset(cfg.Indicator.Offset)
	}
	return m.WithKeyMap(buildKeyMap(cfg))
}

// buildKeyMap applies per-binding key overrides on top of the defaults.
func buildKeyMap(cfg *Config) pager.KeyMap {
	km := pager.DefaultKeyMap()
	if len(cfg.Keys.Next) > 0 {
		km.Next = key.NewBinding(key.WithKeys(cfg.Keys.Next...))
	}
	if len(cfg.Keys.Prev) > 0 {
		km.Prev = key.NewBinding(key.WithKeys(cfg.Keys.Prev...))
	}
	if len(cfg.Keys.First) > 0 {
		km.First = key.NewBinding(key.WithKeys(cfg.Keys.First...))
	}
	if len(cfg.Keys.Last) > 0 {
		km.Last = key.NewBinding(key.WithKeys(cfg.Keys.Last...))
	}
	return km
}

// applyIndicatorConfig maps config enums onto indicator options.
func applyIndicatorConfig(ind *indicator.Model, cfg *Config) {
	if cfg.Indicator.Style == "bar" {
		ind.SetBarWidth(cfg.Indicator.BarWidth)
		ind.SetStyle(indicator.StyleBar)
	}
	ind.SetDragEnabled(cfg.Indicator.Drag)
	switch cfg.Indicator.Size {
	case "small":
		ind.SetSymbolSize(indicator.SizeSmall)
	case "large":
		ind.SetSymbolSize(indicator.SizeLarge)
	}
	switch cfg.Indicator.Spacing {
	case "narrow":
		ind.SetSpacing(indicator.SpacingNarrow)
	case "wide":
		ind.SetSpacing(indicator.SpacingWide)
	case "custom":
		ind.SetCustomGap(cfg.Indicator.CustomGap)
	}
}

func (a app) Init() tea.Cmd {
	return a.pager.Init()
}

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			a.quitting = true
			return a, tea.Quit
		}

	case configReloadedMsg:
		a.pager = buildPager(msg.cfg)
		a.status = "config reloaded"
		return a, a.pager.Init()

	case pager.PageChangedMsg:
		a.status = fmt.Sprintf("page %d/%d (%s)", msg.New+1, a.pager.Count(), msg.Direction)
	}

	var cmd tea.Cmd
	a.pager, cmd = a.pager.Update(msg)
	return a, cmd
}

func (a app) View() string {
	if a.quitting {
		return ""
	}
	footer := lipgloss.NewStyle().
		Foreground(styles.TextMuted).
		Render(strings.Join([]string{"q: quit", "left/right: navigate"}, "  |  "))
	if a.status != "" {
		footer += lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render("  |  " + a.status)
	}
	return a.pager.View() + "\n" + footer
}

// =============================================================================
// ENTRY POINT
// =============================================================================

func main() {
	path, err := config.Path()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating config: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		app{pager: buildPager(cfg)},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // indicator gestures need mouse events
	)

	stop, err := config.Watch(path, func() {
		reloaded, err := config.Load(path)
		if err != nil {
			return // keep running on the previous config
		}
		p.Send(configReloadedMsg{cfg: reloaded})
	})
	if err == nil {
		defer stop()
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running pagerdemo: %v\n", err)
		os.Exit(1)
	}
}
