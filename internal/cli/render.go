package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"linsys"
	"linsys/debug"
)

// systemJSON 方程组及得到它所用的行变换
type systemJSON struct {
	Equations []string      `json:"equations"`
	Pivots    []int         `json:"pivots"`
	Steps     []debug.Entry `json:"steps,omitempty"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderSystem 按输出格式打印方程组，rec 只在 json 格式下输出
func renderSystem(w io.Writer, format string, s *linsys.System, rec *debug.Record) error {
	switch format {
	case "json":
		out := systemJSON{Pivots: s.IndicesOfFirstNonzeroTerms()}
		for _, p := range s.Planes() {
			out.Equations = append(out.Equations, p.String())
		}
		if rec != nil {
			out.Steps = rec.Entries
		}
		return writeJSON(w, out)
	case "table":
		return systemTable(w, s)
	}
	_, err := fmt.Fprintln(w, s)
	return err
}

// systemTable 以增广矩阵形式打印，系数保持十进制精确值
func systemTable(w io.Writer, s *linsys.System) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	header := table.Row{"#"}
	configs := []table.ColumnConfig{{Number: 1, Align: text.AlignRight}}
	for j := 0; j < s.Dimension(); j++ {
		header = append(header, fmt.Sprintf("x_%d", j+1))
		configs = append(configs, table.ColumnConfig{Number: j + 2, Align: text.AlignRight})
	}
	header = append(header, "=")
	configs = append(configs, table.ColumnConfig{Number: s.Dimension() + 2, Align: text.AlignRight})
	t.AppendHeader(header)
	t.SetColumnConfigs(configs)

	for i, p := range s.Planes() {
		row := table.Row{i + 1}
		for _, c := range p.Normal().Coordinates() {
			row = append(row, c.String())
		}
		row = append(row, p.Constant().String())
		t.AppendRow(row)
	}
	t.Render()
	return nil
}
