// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides display-width string helpers for pagekit.
//
// UNICODE: all helpers are width-aware via go-runewidth, so double-width
// characters (CJK) occupy two columns and multi-byte sequences are never
// split mid-character.
package util

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// StringWidth returns the display width of a string in terminal columns.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TruncateWidth truncates a string to a maximum display width without
// appending an ellipsis.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// CropLeftWidth removes the first crop columns from a string. A double-width
// rune straddling the crop boundary is replaced by a space so columns stay
// aligned.
func CropLeftWidth(s string, crop int) string {
	if crop <= 0 {
		return s
	}
	width := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if width >= crop {
			return s[i:]
		}
		if width+rw > crop {
			return " " + s[i+len(string(r)):]
		}
		width += rw
	}
	return ""
}

// PadRightWidth pads a string with spaces to exactly width columns,
// truncating if it is already wider.
func PadRightWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := runewidth.StringWidth(s)
	if w > width {
		return TruncateWidth(s, width)
	}
	return s + strings.Repeat(" ", width-w)
}

// RuneLen returns the number of runes in a string. Safer than len() for
// UTF-8 strings.
func RuneLen(s string) int {
	return len([]rune(s))
}
