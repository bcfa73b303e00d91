// ============================================================================
// meinDENKWERK (mDW) - Numerik
// ============================================================================
//
// Package:     report
// Description: Text, table, YAML and JSON renderings of a study result
// Author:      Mike Stoffels
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/msto63/mdw-simpson/internal/study"
	mdwerrors "github.com/msto63/mdw-simpson/pkg/core/errors"
)

// Format selects a rendering
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

// Formats lists the supported renderings
var Formats = []Format{FormatText, FormatTable, FormatYAML, FormatJSON}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", mdwerrors.InvalidArgument("unknown output format %q", s).
		WithOperation("report.ParseFormat")
}

// Write renders res in the given format
func Write(w io.Writer, format Format, res *study.Result) error {
	switch format {
	case FormatText:
		return WriteText(w, res)
	case FormatTable:
		return WriteTable(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	case FormatJSON:
		return WriteJSON(w, res)
	default:
		return mdwerrors.InvalidArgument("unknown output format %q", format).
			WithOperation("report.Write")
	}
}

// WriteText prints one line per record followed by the analytical value:
//
//	n = 6: Carga = 0.00005159 C, Error = 0.00000160 C
//	...
//
//	Solución analítica: 0.00005000 C
func WriteText(w io.Writer, res *study.Result) error {
	var b strings.Builder
	for _, r := range res.Records {
		fmt.Fprintf(&b, "n = %d: Carga = %.8f C, Error = %.8f C\n", r.N, r.Charge, r.Error)
	}
	fmt.Fprintf(&b, "\nSolución analítica: %.8f C\n", res.Analytical)

	_, err := io.WriteString(w, b.String())
	return wrapIO(err)
}

// WriteTable prints a bordered table with the observed convergence order
func WriteTable(w io.Writer, res *study.Result) error {
	records := res.ByN()
	orders := res.Orders()

	header := []string{"n", "Carga (C)", "Error (C)", "Orden"}
	rows := make([][]string, len(records))
	for i, r := range records {
		order := "-"
		if !math.IsNaN(orders[i]) {
			order = fmt.Sprintf("%.2f", orders[i])
		}
		rows[i] = []string{
			fmt.Sprintf("%d", r.N),
			fmt.Sprintf("%.8e", r.Charge),
			fmt.Sprintf("%.8e", r.Error),
			order,
		}
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	renderRow := func(cells []string, style lipgloss.Style) string {
		out := make([]string, len(cells))
		for i, c := range cells {
			out[i] = style.Width(widths[i]).Render(c)
		}
		return strings.Join(out, CellSeparator)
	}

	lines := []string{renderRow(header, HeaderStyle)}
	for _, row := range rows {
		lines = append(lines, renderRow(row, CellStyle))
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Carga en el capacitor (Regla de Simpson)"))
	b.WriteString("\n")
	b.WriteString(BoxStyle.Render(strings.Join(lines, "\n")))
	b.WriteString("\n")
	b.WriteString(SummaryStyle.Render(fmt.Sprintf("Solución analítica: %.8e C", res.Analytical)))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return wrapIO(err)
}

// summary is the machine-readable form of a result
type summary struct {
	RunID      string         `json:"run_id" yaml:"run_id"`
	Problem    problemSummary `json:"problem" yaml:"problem"`
	Analytical float64        `json:"analytical" yaml:"analytical"`
	Converging bool           `json:"converging" yaml:"converging"`
	Records    []recordEntry  `json:"records" yaml:"records"`
}

type problemSummary struct {
	Capacitance float64 `json:"capacitance" yaml:"capacitance"`
	Amplitude   float64 `json:"amplitude" yaml:"amplitude"`
	Rate        float64 `json:"rate" yaml:"rate"`
	Duration    float64 `json:"duration" yaml:"duration"`
}

type recordEntry struct {
	N      int      `json:"n" yaml:"n"`
	Charge float64  `json:"charge" yaml:"charge"`
	Error  float64  `json:"error" yaml:"error"`
	Order  *float64 `json:"order,omitempty" yaml:"order,omitempty"`
}

func newSummary(res *study.Result) summary {
	s := summary{
		RunID: res.RunID,
		Problem: problemSummary{
			Capacitance: res.Problem.Capacitance,
			Amplitude:   res.Problem.Amplitude,
			Rate:        res.Problem.Rate,
			Duration:    res.Problem.Duration,
		},
		Analytical: res.Analytical,
		Converging: res.Converging(),
	}

	records := res.ByN()
	orders := res.Orders()
	s.Records = make([]recordEntry, len(records))
	for i, r := range records {
		e := recordEntry{N: r.N, Charge: r.Charge, Error: r.Error}
		if !math.IsNaN(orders[i]) && !math.IsInf(orders[i], 0) {
			o := orders[i]
			e.Order = &o
		}
		s.Records[i] = e
	}
	return s
}

// WriteYAML prints the result as a YAML document
func WriteYAML(w io.Writer, res *study.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(newSummary(res)); err != nil {
		return wrapIO(err)
	}
	return wrapIO(enc.Close())
}

// WriteJSON prints the result as indented JSON
func WriteJSON(w io.Writer, res *study.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return wrapIO(enc.Encode(newSummary(res)))
}

func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return mdwerrors.Wrap(err, mdwerrors.CodeIO, "write report")
}
