// Copyright (c) 2026 Keymaster Team
// Keyreport - authorized_keys inventory report
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/keyreport/internal/i18n"
	"github.com/toeirei/keyreport/internal/model"
)

const (
	colorHighlight = lipgloss.Color("81") // teal
	colorSubtle    = lipgloss.Color("240")
)

// renderSummary formats the host/user/key counts for w. Styling degrades to
// plain text when w is not a colour terminal.
func renderSummary(w io.Writer, s model.Stats) string {
	r := lipgloss.NewRenderer(w)
	bullet := r.NewStyle().Foreground(colorSubtle).Render("›")
	counts := r.NewStyle().Foreground(colorHighlight).Bold(true).
		Render(i18n.T("run.summary", s.Hosts, s.Users, s.Keys))
	return bullet + " " + counts
}
