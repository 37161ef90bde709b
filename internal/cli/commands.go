package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"linsys"
	"linsys/debug"
	"linsys/maths"
)

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display linsys version information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "linsys v%s\n", version)
		},
	}
}

// recorderFor json 输出时记录行变换
func recorderFor(cmd *cobra.Command) *debug.Record {
	if s := getSession(cmd.Context()); s != nil && s.cfg.Output == "json" {
		return debug.NewRecord()
	}
	return nil
}

// transformCommand triangular 与 rref 共用的流程
func transformCommand(use, short, long string, transform func(*linsys.System) *linsys.System) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [file]",
		Short: short,
		Long:  long,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := recorderFor(cmd)
			var recorder debug.Recorder
			if rec != nil {
				recorder = rec
			}
			s, err := loadSystem(cmd, args, recorder)
			if err != nil {
				return err
			}
			return renderSystem(cmd.OutOrStdout(), getSession(cmd.Context()).cfg.Output, transform(s), rec)
		},
	}
}

func newTriangularCommand() *cobra.Command {
	cmd := transformCommand("triangular", "Compute the triangular form",
		`Forward elimination using only row swaps and adding multiples of one row
to rows below it. Rows are never scaled and no back-substitution is done.`,
		(*linsys.System).ComputeTriangularForm)
	cmd.Example = `  linsys triangular system.txt
  echo "1 1 1 = 1" | linsys triangular - -o table`
	return cmd
}

func newRREFCommand() *cobra.Command {
	return transformCommand("rref", "Compute the reduced row echelon form",
		`Gaussian elimination followed by scaling every pivot to 1 and clearing
the coefficients above it.`,
		(*linsys.System).ComputeRREF)
}

// solutionJSON solve 的 json 输出
type solutionJSON struct {
	Kind     string   `json:"kind"`
	Solution []string `json:"solution,omitempty"`
}

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Classify the system and print its unique solution",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSystem(cmd, args, nil)
			if err != nil {
				return err
			}
			solution, err := s.Solve()
			kind := linsys.UniqueSolution
			switch {
			case errors.Is(err, linsys.ErrNoSolution):
				kind = linsys.NoSolution
			case errors.Is(err, linsys.ErrInfiniteSolutions):
				kind = linsys.InfiniteSolutions
			case err != nil:
				return err
			}
			return renderSolution(cmd, kind, solution)
		},
	}
}

func renderSolution(cmd *cobra.Command, kind linsys.SolutionKind, solution maths.Vector) error {
	w := cmd.OutOrStdout()
	switch getSession(cmd.Context()).cfg.Output {
	case "json":
		out := solutionJSON{Kind: kind.String()}
		if kind == linsys.UniqueSolution {
			for _, c := range solution.Coordinates() {
				out.Solution = append(out.Solution, c.String())
			}
		}
		return writeJSON(w, out)
	case "table":
		if kind != linsys.UniqueSolution {
			break
		}
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.Style().Format.Header = text.FormatDefault
		t.AppendHeader(table.Row{"Variable", "Value"})
		for i, c := range solution.Coordinates() {
			t.AppendRow(table.Row{fmt.Sprintf("x_%d", i+1), c.String()})
		}
		t.Render()
		return nil
	}
	if kind != linsys.UniqueSolution {
		_, err := fmt.Fprintln(w, kind)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", kind, solution)
	return err
}

func newPivotsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pivots [file]",
		Short: "Print the index of the first nonzero term of each equation",
		Long:  `Indices are 0-based; -1 marks an equation whose coefficients are all near zero.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSystem(cmd, args, nil)
			if err != nil {
				return err
			}
			indices := s.IndicesOfFirstNonzeroTerms()
			w := cmd.OutOrStdout()
			switch getSession(cmd.Context()).cfg.Output {
			case "json":
				return writeJSON(w, indices)
			case "table":
				t := table.NewWriter()
				t.SetOutputMirror(w)
				t.SetStyle(table.StyleLight)
				t.Style().Format.Header = text.FormatDefault
				t.AppendHeader(table.Row{"#", "Equation", "Pivot"})
				for i, idx := range indices {
					t.AppendRow(table.Row{i + 1, s.Plane(i).String(), idx})
				}
				t.Render()
				return nil
			}
			for i, idx := range indices {
				if _, err := fmt.Fprintf(w, "Equation %d: %d\n", i+1, idx); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newPlotCommand() *cobra.Command {
	var (
		out        string
		triangular bool
	)
	charts := debug.DefaultCharts()

	cmd := &cobra.Command{
		Use:   "plot [file]",
		Short: "Plot a 2-dimensional system as lines",
		Long: `Draw every equation a*x + b*y = c of a planar system as a line.
The image format follows the extension of --out (png, svg, pdf, ...).`,
		Example: `  linsys plot system.txt --out system.svg
  linsys plot system.txt --triangular --out eliminated.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSystem(cmd, args, nil)
			if err != nil {
				return err
			}
			if triangular {
				s = s.ComputeTriangularForm()
			}
			if ext := strings.TrimPrefix(filepath.Ext(out), "."); ext != "" {
				charts.Format = ext
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := charts.Render(s.Augmented(), f); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return err
		},
	}

	cmd.Flags().StringVar(&out, "out", "system.png", "output image file")
	cmd.Flags().BoolVar(&triangular, "triangular", false, "plot the triangular form instead of the input")
	cmd.Flags().Float64Var(&charts.XMin, "x-min", charts.XMin, "left bound of the x axis")
	cmd.Flags().Float64Var(&charts.XMax, "x-max", charts.XMax, "right bound of the x axis")
	cmd.Flags().Float64Var(&charts.YMin, "y-min", charts.YMin, "lower bound of the y axis")
	cmd.Flags().Float64Var(&charts.YMax, "y-max", charts.YMax, "upper bound of the y axis")
	return cmd
}
