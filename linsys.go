package linsys

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"

	"linsys/debug"
	"linsys/hyperplane"
	"linsys/maths"
)

// System 线性方程组：同一维度下的有序超平面序列
// 行顺序会被初等行变换原地修改，超平面本身不可变，替换时总是写入新值
type System struct {
	planes    []hyperplane.Plane
	dimension int
	tolerance maths.Scalar
	logger    *zap.Logger
	Debug     debug.Recorder // 调试
}

// Option 方程组配置
type Option func(s *System)

// WithTolerance 设置近零判定阈值，默认 maths.DefaultTolerance
// 非正数在 New 中返回 ErrInvalidTolerance
func WithTolerance(tol maths.Scalar) Option {
	return func(s *System) { s.tolerance = tol }
}

// WithLogger 设置行变换日志，默认不输出
func WithLogger(logger *zap.Logger) Option {
	return func(s *System) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDebug 记录每一次行变换
func WithDebug(rec debug.Recorder) Option {
	return func(s *System) {
		if rec != nil {
			s.Debug = rec
		}
	}
}

// New 创建方程组，所有超平面的维度必须一致
func New(planes []hyperplane.Plane, opts ...Option) (*System, error) {
	if len(planes) == 0 {
		return nil, ErrEmptySystem
	}
	d := planes[0].Dimension()
	if d == 0 {
		return nil, fmt.Errorf("plane 0: %w", maths.ErrEmptyVector)
	}
	for i, p := range planes {
		if p.Dimension() != d {
			return nil, fmt.Errorf("%w: plane %d has dimension %d, want %d", ErrDimensionMismatch, i, p.Dimension(), d)
		}
	}
	s := &System{
		planes:    append([]hyperplane.Plane(nil), planes...),
		dimension: d,
		tolerance: maths.DefaultTolerance,
		logger:    zap.NewNop(),
		Debug:     nopDebug{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tolerance.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTolerance, s.tolerance)
	}
	return s, nil
}

// MustNew 同 New，失败时 panic
func MustNew(planes []hyperplane.Plane, opts ...Option) *System {
	s, err := New(planes, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Len 方程数量
func (s *System) Len() int { return len(s.planes) }

// Dimension 变量数量
func (s *System) Dimension() int { return s.dimension }

// Tolerance 近零判定阈值
func (s *System) Tolerance() maths.Scalar { return s.tolerance }

// Plane 获取第 i 行
func (s *System) Plane(i int) hyperplane.Plane { return s.planes[i] }

// Planes 返回所有行的副本
func (s *System) Planes() []hyperplane.Plane {
	return append([]hyperplane.Plane(nil), s.planes...)
}

// Set 替换第 i 行，维度不一致时拒绝修改
func (s *System) Set(i int, p hyperplane.Plane) error {
	if i < 0 || i >= len(s.planes) {
		return fmt.Errorf("%w: %d", ErrRowOutOfRange, i)
	}
	if p.Dimension() != s.dimension {
		return fmt.Errorf("%w: plane has dimension %d, want %d", ErrDimensionMismatch, p.Dimension(), s.dimension)
	}
	s.planes[i] = p
	return nil
}

// Clone 独立副本，共享日志与调试器
func (s *System) Clone() *System {
	c := *s
	c.planes = append([]hyperplane.Plane(nil), s.planes...)
	return &c
}

// Equal 行数相同且逐行精确相等
func (s *System) Equal(o *System) bool {
	if s.Len() != o.Len() {
		return false
	}
	for i, p := range s.planes {
		if !p.Equal(o.planes[i]) {
			return false
		}
	}
	return true
}

// IndicesOfFirstNonzeroTerms 每一行主元所在列，零行为 maths.NoNonzero
func (s *System) IndicesOfFirstNonzeroTerms() []int {
	indices := make([]int, len(s.planes))
	for i, p := range s.planes {
		indices[i] = p.FirstNonzeroIndex(s.tolerance)
	}
	return indices
}

// Augmented 增广矩阵 [A | b] 的 float64 副本，用于导出和绘图
func (s *System) Augmented() *mat.Dense {
	m := mat.NewDense(len(s.planes), s.dimension+1, nil)
	for i, p := range s.planes {
		for j, v := range p.Normal().Floats() {
			m.Set(i, j, v)
		}
		m.Set(i, s.dimension, p.Constant().InexactFloat64())
	}
	return m
}

// String 格式化字符串输出
func (s *System) String() string {
	var b strings.Builder
	b.WriteString("Linear System:")
	for i, p := range s.planes {
		fmt.Fprintf(&b, "\nEquation %d: %s", i+1, p)
	}
	return b.String()
}
