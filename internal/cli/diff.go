// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// diffStyles colours unified diff output. Colour is only used when the
// output is a terminal that supports it.
type diffStyles struct {
	header, hunk, added, removed lipgloss.Style
}

func newDiffStyles(w io.Writer) diffStyles {
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return diffStyles{
		header:  style.Bold(true),
		hunk:    style.Foreground(lipgloss.Color("6")),
		added:   style.Foreground(lipgloss.Color("2")),
		removed: style.Foreground(lipgloss.Color("1")),
	}
}

func (s diffStyles) render(diff string) string {
	var sb strings.Builder
	for line := range strings.Lines(diff) {
		body, newline := strings.CutSuffix(line, "\n")
		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"):
			body = s.header.Render(body)
		case strings.HasPrefix(body, "@@"):
			body = s.hunk.Render(body)
		case strings.HasPrefix(body, "+"):
			body = s.added.Render(body)
		case strings.HasPrefix(body, "-"):
			body = s.removed.Render(body)
		}
		sb.WriteString(body)
		if newline {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
