/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/bleradar/pkg/models"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	rowStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	statusStyles = map[models.Status]lipgloss.Style{
		models.StatusScanning:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		models.StatusConnecting: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		models.StatusConnected:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		models.StatusUploading:  lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		models.StatusError:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}

	frameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1)
)

// Terminal renders the paged device view. It only writes on an explicit
// Render call; nothing refreshes in the background.
type Terminal struct {
	out io.Writer
}

// NewTerminal returns a renderer writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Render draws one frame: a status line, the page rows, and the cycle
// counters.
func (t *Terminal) Render(page []Entry, status models.Status, stats models.CycleStats) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("BLE Radar"))
	b.WriteString("  ")
	b.WriteString(styleFor(status).Render(string(status)))
	b.WriteString("\n")

	if len(page) == 0 {
		b.WriteString(dimStyle.Render("no devices"))
		b.WriteString("\n")
	}

	for _, e := range page {
		flag := "P"
		if e.Random {
			flag = "R"
		}

		row := fmt.Sprintf("%-10s %s %4d %s %s x%02d",
			e.Name, e.Addr, e.RSSI, flag, e.TypeCode, e.SeenCount)
		b.WriteString(rowStyle.Render(row))
		b.WriteString("\n")
	}

	footer := fmt.Sprintf("cycles %d  ok %d  fail %d  batch %d  dropped %d",
		stats.Cycles, stats.UploadOK, stats.UploadFail, stats.LastBatch, stats.Dropped)
	b.WriteString(dimStyle.Render(footer))

	fmt.Fprintln(t.out, frameStyle.Render(b.String()))
}

func styleFor(status models.Status) lipgloss.Style {
	if s, ok := statusStyles[status]; ok {
		return s
	}

	return dimStyle
}
