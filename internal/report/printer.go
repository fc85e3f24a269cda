// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// DefaultWidth is the display width source snippets are truncated to.
const DefaultWidth = 120

// Printer writes diagnostics in a compiler-like format followed by the source line and a
// caret marking the reported range.
type Printer struct {
	w        io.Writer
	width    int
	position *color.Color
	message  *color.Color
	category *color.Color
	caret    *color.Color
}

// NewPrinter creates a [Printer] writing to w, with colors when colored is true.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w:        w,
		width:    DefaultWidth,
		position: color.New(color.Bold),
		message:  color.New(color.FgRed),
		category: color.New(color.Faint),
		caret:    color.New(color.FgGreen, color.Bold),
	}

	for _, c := range [...]*color.Color{p.position, p.message, p.category, p.caret} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// SetWidth sets the display width source snippets are truncated to. Zero disables snippets.
func (p *Printer) SetWidth(width int) { p.width = width }

// Print writes a single diagnostic.
func (p *Printer) Print(d Diagnostic) error {
	pos := d.Position
	if _, err := p.position.Fprintf(p.w, "%s:%d:%d:", pos.Filename, pos.Line, d.Column); err != nil {
		return err
	}

	if _, err := p.message.Fprintf(p.w, " %s", d.Message); err != nil {
		return err
	}

	if d.Category != "" {
		if _, err := p.category.Fprintf(p.w, " (%s)", d.Category); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(p.w); err != nil {
		return err
	}

	if p.width <= 0 || d.Line == "" {
		return nil
	}

	line, indent, marker := snippet(d, p.width)

	if _, err := fmt.Fprintf(p.w, "  %s\n  %s", line, indent); err != nil {
		return err
	}

	_, err := p.caret.Fprintln(p.w, marker)

	return err
}

// PrintAll writes all diagnostics, stopping at the first error.
func (p *Printer) PrintAll(ds []Diagnostic) error {
	for _, d := range ds {
		if err := p.Print(d); err != nil {
			return err
		}
	}

	return nil
}

// snippet returns the source line truncated to width, the indentation aligning the marker
// with the reported column, and the marker itself.
func snippet(d Diagnostic, width int) (line, indent, marker string) {
	prefix := d.Line[:d.Position.Column-1]
	span := d.Line[len(prefix) : len(prefix)+d.Span]

	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')

			continue
		}

		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	indent = b.String()

	n := max(runewidth.StringWidth(span), 1)
	if room := width - runewidth.StringWidth(prefix); n > room {
		n = max(room, 1)
	}

	marker = "^" + strings.Repeat("~", n-1)
	line = runewidth.Truncate(d.Line, width, "…")

	return line, indent, marker
}
