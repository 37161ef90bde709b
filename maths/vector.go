package maths

import (
	"fmt"
	"math"
	"strings"
)

// Vector 不可变的定长十进制向量
// 所有运算都返回新的向量，构造后维度不再改变
type Vector struct {
	coordinates []Scalar
}

// NewVector 由坐标创建向量，坐标为空时返回 ErrEmptyVector
func NewVector(coordinates ...Scalar) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, ErrEmptyVector
	}
	return Vector{coordinates: append([]Scalar(nil), coordinates...)}, nil
}

// ParseVector 由十进制字符串创建向量
func ParseVector(coordinates ...string) (Vector, error) {
	if len(coordinates) == 0 {
		return Vector{}, ErrEmptyVector
	}
	data := make([]Scalar, len(coordinates))
	for i, s := range coordinates {
		d, err := ParseScalar(s)
		if err != nil {
			return Vector{}, fmt.Errorf("coordinate %d: %w", i, err)
		}
		data[i] = d
	}
	return Vector{coordinates: data}, nil
}

// MustVector 同 ParseVector，失败时 panic
func MustVector(coordinates ...string) Vector {
	v, err := ParseVector(coordinates...)
	if err != nil {
		panic(err)
	}
	return v
}

// ZeroVector 创建指定维度的零向量
func ZeroVector(dimension int) (Vector, error) {
	if dimension < 1 {
		return Vector{}, ErrEmptyVector
	}
	data := make([]Scalar, dimension)
	for i := range data {
		data[i] = zero
	}
	return Vector{coordinates: data}, nil
}

// Dimension 返回向量维度
func (v Vector) Dimension() int { return len(v.coordinates) }

// At 获取指定位置的坐标
func (v Vector) At(index int) Scalar { return v.coordinates[index] }

// Coordinates 返回坐标副本
func (v Vector) Coordinates() []Scalar {
	return append([]Scalar(nil), v.coordinates...)
}

// Floats 转换为 float64 切片（有精度损失，仅用于导出和绘图）
func (v Vector) Floats() []float64 {
	out := make([]float64, len(v.coordinates))
	for i, x := range v.coordinates {
		out[i] = x.InexactFloat64()
	}
	return out
}

// Equal 逐坐标精确比较
func (v Vector) Equal(w Vector) bool {
	if v.Dimension() != w.Dimension() {
		return false
	}
	for i, x := range v.coordinates {
		if !x.Equal(w.coordinates[i]) {
			return false
		}
	}
	return true
}

// String 返回向量的字符串表示
func (v Vector) String() string {
	parts := make([]string, len(v.coordinates))
	for i, x := range v.coordinates {
		parts[i] = x.String()
	}
	return "Vector: (" + strings.Join(parts, ", ") + ")"
}

func (v Vector) zip(w Vector, f func(a, b Scalar) Scalar) (Vector, error) {
	if v.Dimension() != w.Dimension() {
		return Vector{}, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, v.Dimension(), w.Dimension())
	}
	data := make([]Scalar, len(v.coordinates))
	for i := range data {
		data[i] = f(v.coordinates[i], w.coordinates[i])
	}
	return Vector{coordinates: data}, nil
}

// Plus 向量加法
func (v Vector) Plus(w Vector) (Vector, error) {
	return v.zip(w, func(a, b Scalar) Scalar { return a.Add(b) })
}

// Minus 向量减法
func (v Vector) Minus(w Vector) (Vector, error) {
	return v.zip(w, func(a, b Scalar) Scalar { return a.Sub(b) })
}

// TimesScalar 向量缩放
func (v Vector) TimesScalar(c Scalar) Vector {
	data := make([]Scalar, len(v.coordinates))
	for i, x := range v.coordinates {
		data[i] = c.Mul(x)
	}
	return Vector{coordinates: data}
}

// Dot 点积
func (v Vector) Dot(w Vector) (Scalar, error) {
	if v.Dimension() != w.Dimension() {
		return zero, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, v.Dimension(), w.Dimension())
	}
	sum := zero
	for i, x := range v.coordinates {
		sum = sum.Add(x.Mul(w.coordinates[i]))
	}
	return sum, nil
}

// Magnitude 向量长度 sqrt(x1^2 + ... + xn^2)
func (v Vector) Magnitude() Scalar {
	sum := zero
	for _, x := range v.coordinates {
		sum = sum.Add(x.Mul(x))
	}
	return sqrt(sum)
}

// Normalized 与原向量同方向的单位向量
func (v Vector) Normalized() (Vector, error) {
	mag := v.Magnitude()
	if mag.IsZero() {
		return Vector{}, ErrZeroVectorNormalization
	}
	return v.TimesScalar(Div(one, mag)), nil
}

// IsZero 长度小于 tol 时视为零向量
func (v Vector) IsZero(tol Scalar) bool {
	return v.Magnitude().LessThan(tol)
}

// AngleWith 两向量夹角，inDegrees 为 true 时返回角度否则返回弧度
func (v Vector) AngleWith(w Vector, inDegrees bool) (float64, error) {
	u1, err := v.Normalized()
	if err != nil {
		return 0, fmt.Errorf("cannot compute an angle with the zero vector: %w", err)
	}
	u2, err := w.Normalized()
	if err != nil {
		return 0, fmt.Errorf("cannot compute an angle with the zero vector: %w", err)
	}
	dot, err := u1.Dot(u2)
	if err != nil {
		return 0, err
	}
	// 舍入误差可能让余弦略微超出 [-1, 1]
	cos := math.Max(-1, math.Min(1, dot.InexactFloat64()))
	angle := math.Acos(cos)
	if inDegrees {
		return angle * 180 / math.Pi, nil
	}
	return angle, nil
}

// IsOrthogonalTo 点积近零即正交
func (v Vector) IsOrthogonalTo(w Vector, tol Scalar) (bool, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	return IsNearZero(dot, tol), nil
}

// IsParallelTo 零向量与任意向量平行；否则按 Cauchy-Schwarz 判定
// (v·v)(w·w) - (v·w)^2 相对 (v·v)(w·w) 近零即平行
func (v Vector) IsParallelTo(w Vector, tol Scalar) (bool, error) {
	vw, err := v.Dot(w)
	if err != nil {
		return false, err
	}
	if v.IsZero(tol) || w.IsZero(tol) {
		return true, nil
	}
	vv, _ := v.Dot(v)
	ww, _ := w.Dot(w)
	norm := vv.Mul(ww)
	gap := norm.Sub(vw.Mul(vw))
	return gap.Abs().LessThan(tol.Mul(norm)), nil
}

// ParallelComponent v 在 basis 方向上的投影
func (v Vector) ParallelComponent(basis Vector) (Vector, error) {
	u, err := basis.Normalized()
	if err != nil {
		return Vector{}, err
	}
	weight, err := v.Dot(u)
	if err != nil {
		return Vector{}, err
	}
	return u.TimesScalar(weight), nil
}

// OrthogonalComponent v 减去平行分量
func (v Vector) OrthogonalComponent(basis Vector) (Vector, error) {
	p, err := v.ParallelComponent(basis)
	if err != nil {
		return Vector{}, err
	}
	return v.Minus(p)
}

// Cross 三维向量叉积
func (v Vector) Cross(w Vector) (Vector, error) {
	if v.Dimension() != 3 || w.Dimension() != 3 {
		return Vector{}, fmt.Errorf("%w: cross product needs 3-dimensional vectors", ErrDimensionMismatch)
	}
	x1, y1, z1 := v.coordinates[0], v.coordinates[1], v.coordinates[2]
	x2, y2, z2 := w.coordinates[0], w.coordinates[1], w.coordinates[2]
	return Vector{coordinates: []Scalar{
		y1.Mul(z2).Sub(y2.Mul(z1)),
		x2.Mul(z1).Sub(x1.Mul(z2)),
		x1.Mul(y2).Sub(x2.Mul(y1)),
	}}, nil
}

// FirstNonzeroIndex 按下标递增扫描，返回第一个不近零坐标的下标
// 全部近零时返回 NoNonzero
func (v Vector) FirstNonzeroIndex(tol Scalar) int {
	for i, x := range v.coordinates {
		if !IsNearZero(x, tol) {
			return i
		}
	}
	return NoNonzero
}
