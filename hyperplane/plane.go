package hyperplane

import (
	"errors"
	"fmt"
	"strings"

	"linsys/maths"
)

// ErrInvalidEquation 无法解析的方程文本
var ErrInvalidEquation = errors.New("hyperplane: invalid equation")

// Plane 超平面 {x : normal · x = constant}
// 与 maths.Vector 一样不可变，行变换总是构造新的 Plane
type Plane struct {
	normal   maths.Vector
	constant maths.Scalar
}

// New 由法向量和常数项创建超平面
func New(normal maths.Vector, constant maths.Scalar) (Plane, error) {
	if normal.Dimension() == 0 {
		return Plane{}, maths.ErrEmptyVector
	}
	return Plane{normal: normal, constant: constant}, nil
}

// MustNew 同 New，失败时 panic
func MustNew(normal maths.Vector, constant maths.Scalar) Plane {
	p, err := New(normal, constant)
	if err != nil {
		panic(err)
	}
	return p
}

// Zero 零法向量的超平面：constant 为零表示全空间 (0 = 0)，否则为空集 (0 = c)
func Zero(dimension int, constant maths.Scalar) (Plane, error) {
	normal, err := maths.ZeroVector(dimension)
	if err != nil {
		return Plane{}, err
	}
	return Plane{normal: normal, constant: constant}, nil
}

// Parse 解析 "a1 a2 ... an = c" 形式的方程
func Parse(s string) (Plane, error) {
	lhs, rhs, ok := strings.Cut(s, "=")
	if !ok {
		return Plane{}, fmt.Errorf("%w: missing '=' in %q", ErrInvalidEquation, s)
	}
	fields := strings.Fields(lhs)
	if len(fields) == 0 {
		return Plane{}, fmt.Errorf("%w: no coefficients in %q", ErrInvalidEquation, s)
	}
	normal, err := maths.ParseVector(fields...)
	if err != nil {
		return Plane{}, fmt.Errorf("%w: %w", ErrInvalidEquation, err)
	}
	constant, err := maths.ParseScalar(strings.TrimSpace(rhs))
	if err != nil {
		return Plane{}, fmt.Errorf("%w: %w", ErrInvalidEquation, err)
	}
	return Plane{normal: normal, constant: constant}, nil
}

// MustParse 同 Parse，失败时 panic
func MustParse(s string) Plane {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Normal 法向量
func (p Plane) Normal() maths.Vector { return p.normal }

// Constant 常数项
func (p Plane) Constant() maths.Scalar { return p.constant }

// Dimension 维度，等于法向量维度
func (p Plane) Dimension() int { return p.normal.Dimension() }

// Equal 法向量和常数项都精确相等
func (p Plane) Equal(q Plane) bool {
	return p.normal.Equal(q.normal) && p.constant.Equal(q.constant)
}

// Scaled 返回 c·normal · x = c·constant
func (p Plane) Scaled(c maths.Scalar) Plane {
	return Plane{normal: p.normal.TimesScalar(c), constant: p.constant.Mul(c)}
}

// PlusMultiple 返回 p + c·q
func (p Plane) PlusMultiple(c maths.Scalar, q Plane) (Plane, error) {
	normal, err := p.normal.Plus(q.normal.TimesScalar(c))
	if err != nil {
		return Plane{}, err
	}
	return Plane{normal: normal, constant: p.constant.Add(q.constant.Mul(c))}, nil
}

// FirstNonzeroIndex 法向量首个非近零系数的下标，没有则为 maths.NoNonzero
func (p Plane) FirstNonzeroIndex(tol maths.Scalar) int {
	return p.normal.FirstNonzeroIndex(tol)
}

// IsDegenerate 法向量在容差内为零
func (p Plane) IsDegenerate(tol maths.Scalar) bool {
	return p.FirstNonzeroIndex(tol) == maths.NoNonzero
}

// IsRedundant 0 = 0，恒成立
func (p Plane) IsRedundant(tol maths.Scalar) bool {
	return p.IsDegenerate(tol) && maths.IsNearZero(p.constant, tol)
}

// IsContradiction 0 = c (c ≠ 0)，无解
func (p Plane) IsContradiction(tol maths.Scalar) bool {
	return p.IsDegenerate(tol) && !maths.IsNearZero(p.constant, tol)
}

// BasePoint 超平面上的一点：首个非零变量取 c/n_k，其余为零
func (p Plane) BasePoint(tol maths.Scalar) (maths.Vector, bool) {
	k := p.FirstNonzeroIndex(tol)
	if k == maths.NoNonzero {
		return maths.Vector{}, false
	}
	coords := make([]maths.Scalar, p.Dimension())
	for i := range coords {
		coords[i] = maths.NewScalar(0)
	}
	coords[k] = maths.Div(p.constant, p.normal.At(k))
	v, _ := maths.NewVector(coords...)
	return v, true
}

// IsParallelTo 法向量平行即超平面平行
func (p Plane) IsParallelTo(q Plane, tol maths.Scalar) (bool, error) {
	return p.normal.IsParallelTo(q.normal, tol)
}

// Contains 判断 |normal · point - constant| < tol
func (p Plane) Contains(point maths.Vector, tol maths.Scalar) (bool, error) {
	dot, err := p.normal.Dot(point)
	if err != nil {
		return false, err
	}
	return maths.IsNearZero(dot.Sub(p.constant), tol), nil
}

// String 例如 "x_1 + x_2 - 2x_3 = 3"
func (p Plane) String() string {
	var b strings.Builder
	first := true
	for i := 0; i < p.Dimension(); i++ {
		c := p.normal.At(i)
		if c.IsZero() {
			continue
		}
		switch {
		case first && c.IsNegative():
			b.WriteString("-")
		case !first && c.IsNegative():
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		if abs := c.Abs(); !abs.Equal(maths.NewScalar(1)) {
			b.WriteString(abs.String())
		}
		fmt.Fprintf(&b, "x_%d", i+1)
		first = false
	}
	if first {
		b.WriteString("0")
	}
	b.WriteString(" = ")
	b.WriteString(p.constant.String())
	return b.String()
}
