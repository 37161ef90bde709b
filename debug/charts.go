package debug

import (
	"errors"
	"fmt"
	"io"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// ErrNotPlanar 只能绘制二维方程组
var ErrNotPlanar = errors.New("debug: only 2-dimensional systems can be plotted")

// Charts 二维方程组的直线绘制参数
type Charts struct {
	XMin, XMax float64   // 横轴范围
	YMin, YMax float64   // 纵轴范围
	Width      vg.Length // 图片宽度
	Height     vg.Length // 图片高度
	Format     string    // png、svg、pdf 等
}

// DefaultCharts 默认绘制参数
func DefaultCharts() Charts {
	return Charts{
		XMin: -10, XMax: 10,
		YMin: -10, YMax: 10,
		Width: 6 * vg.Inch, Height: 6 * vg.Inch,
		Format: "png",
	}
}

// Render 将增广矩阵 [a b | c] 的每一行画成直线 a*x + b*y = c
// 系数全为零的行没有对应的直线，直接跳过
func (c Charts) Render(augmented mat.Matrix, w io.Writer) error {
	rows, cols := augmented.Dims()
	if cols != 3 {
		return fmt.Errorf("%w: got %d columns", ErrNotPlanar, cols-1)
	}
	p := plot.New()
	p.Title.Text = "Linear System"
	p.X.Label.Text = "x_1"
	p.Y.Label.Text = "x_2"
	p.X.Min, p.X.Max = c.XMin, c.XMax
	p.Y.Min, p.Y.Max = c.YMin, c.YMax
	p.Add(plotter.NewGrid())

	for i := 0; i < rows; i++ {
		a, b, k := augmented.At(i, 0), augmented.At(i, 1), augmented.At(i, 2)
		name := fmt.Sprintf("Equation %d", i+1)
		switch {
		case b != 0:
			fn := plotter.NewFunction(func(x float64) float64 { return (k - a*x) / b })
			fn.XMin, fn.XMax = c.XMin, c.XMax
			fn.Color = plotutil.Color(i)
			fn.Width = vg.Points(1.5)
			p.Add(fn)
			p.Legend.Add(name, fn)
		case a != 0:
			// 竖直线 x = k/a
			x := k / a
			line, err := plotter.NewLine(plotter.XYs{{X: x, Y: c.YMin}, {X: x, Y: c.YMax}})
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(i)
			line.Width = vg.Points(1.5)
			p.Add(line)
			p.Legend.Add(name, line)
		}
	}

	wt, err := p.WriterTo(c.Width, c.Height, c.Format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
