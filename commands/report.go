// Copyright 2025 Naren Yellavula
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

package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cybrota/arbor/species"
)

// Styles decorates report headers. The zero value renders plain text.
type Styles struct {
	Header  lipgloss.Style
	Section lipgloss.Style
	styled  bool
}

// Palette picks the colors of the styled parts of a report.
type Palette struct {
	Header  lipgloss.Color
	Section lipgloss.Color
}

// DefaultPalette suits dark terminal backgrounds.
var DefaultPalette = Palette{Header: lipgloss.Color("10"), Section: lipgloss.Color("14")}

// NewStyles binds styles to w, so output that is not a terminal stays plain.
func NewStyles(w io.Writer, p Palette) Styles {
	if p.Header == "" {
		p.Header = DefaultPalette.Header
	}
	if p.Section == "" {
		p.Section = DefaultPalette.Section
	}
	r := lipgloss.NewRenderer(w)
	return Styles{
		Header:  r.NewStyle().Bold(true).Foreground(p.Header),
		Section: r.NewStyle().Foreground(p.Section),
		styled:  true,
	}
}

func (s Styles) header(text string) string {
	if !s.styled {
		return text
	}
	return s.Header.Render(text)
}

func (s Styles) section(text string) string {
	if !s.styled {
		return text
	}
	return s.Section.Render(text)
}

// Report writes command output. Counts are grouped with thousands
// separators the way the census reports print them.
type Report struct {
	w      io.Writer
	counts *message.Printer
	styles Styles
}

func NewReport(w io.Writer, styles Styles) *Report {
	return &Report{
		w:      w,
		counts: message.NewPrinter(language.English),
		styles: styles,
	}
}

// Header writes the "Command: ..." line opening every report.
func (r *Report) Header(echo string) {
	fmt.Fprintln(r.w, r.styles.header("Command: "+echo))
}

// Section writes a caption line.
func (r *Report) Section(text string) {
	fmt.Fprintln(r.w, r.styles.section(text))
}

// Printf writes without digit grouping.
func (r *Report) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

// Countf writes with digit grouping.
func (r *Report) Countf(format string, args ...any) {
	r.counts.Fprintf(r.w, format, args...)
}

// Writer exposes the underlying writer for bulk dumps.
func (r *Report) Writer() io.Writer {
	return r.w
}

// Frequencies prints one row per run of adjacent names of the same
// species with the length of the run. A run is labelled with its first
// spelling. Empty names (stumps) form a run like any other.
func (r *Report) Frequencies(names []string) {
	var label, key string
	freq := 0
	for _, name := range names {
		k := species.Normalize(name)
		if freq > 0 && k == key {
			freq++
			continue
		}
		if freq > 0 {
			r.Countf("\t%-22s%8d\n", label, freq)
		}
		label, key, freq = name, k, 1
	}
	if freq > 0 {
		r.Countf("\t%-22s%8d\n", label, freq)
	}
}
