package maths

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestVectorOperations 测试向量加减、缩放和点积
func TestVectorOperations(t *testing.T) {
	v := MustVector("8.218", "-9.341")
	w := MustVector("-1.129", "2.111")

	sum, err := v.Plus(w)
	require.NoError(t, err)
	assert.True(t, sum.Equal(MustVector("7.089", "-7.23")), "got %s", sum)

	diff, err := MustVector("7.119", "8.215").Minus(MustVector("-8.223", "0.878"))
	require.NoError(t, err)
	assert.True(t, diff.Equal(MustVector("15.342", "7.337")), "got %s", diff)

	scaled := MustVector("1.671", "-1.012", "-0.318").TimesScalar(MustScalar("7.41"))
	assert.True(t, scaled.Equal(MustVector("12.38211", "-7.49892", "-2.35638")), "got %s", scaled)

	dot, err := MustVector("7.887", "4.138").Dot(MustVector("-8.802", "6.776"))
	require.NoError(t, err)
	assert.True(t, dot.Equal(MustScalar("-41.382286")), "got %s", dot)
}

// TestVectorConstruction 空坐标必须失败
func TestVectorConstruction(t *testing.T) {
	_, err := NewVector()
	assert.ErrorIs(t, err, ErrEmptyVector)

	_, err = ParseVector()
	assert.ErrorIs(t, err, ErrEmptyVector)

	_, err = ParseVector("1", "abc")
	assert.ErrorIs(t, err, ErrInvalidScalar)

	_, err = ZeroVector(0)
	assert.ErrorIs(t, err, ErrEmptyVector)

	z, err := ZeroVector(3)
	require.NoError(t, err)
	assert.Equal(t, 3, z.Dimension())
	assert.Equal(t, NoNonzero, z.FirstNonzeroIndex(DefaultTolerance))
}

// TestVectorImmutable 运算不修改原向量，Coordinates 返回副本
func TestVectorImmutable(t *testing.T) {
	v := MustVector("1", "2", "3")
	coords := v.Coordinates()
	coords[0] = MustScalar("100")
	assert.True(t, v.At(0).Equal(MustScalar("1")))

	_ = v.TimesScalar(MustScalar("5"))
	assert.True(t, v.Equal(MustVector("1", "2", "3")))
}

// TestVectorDimensionMismatch 维度不一致返回错误
func TestVectorDimensionMismatch(t *testing.T) {
	v := MustVector("1", "2")
	w := MustVector("1", "2", "3")

	_, err := v.Plus(w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = v.Minus(w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = v.Dot(w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	_, err = v.Cross(w)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
	assert.False(t, v.Equal(w))
}

// TestVectorMagnitude 长度与单位向量
func TestVectorMagnitude(t *testing.T) {
	mag := MustVector("3", "4").Magnitude()
	assert.True(t, mag.Equal(MustScalar("5")), "got %s", mag)

	mag = MustVector("-0.221", "7.437").Magnitude()
	assert.InDelta(t, 7.440282924728065, mag.InexactFloat64(), 1e-12)

	unit, err := MustVector("5.581", "-2.136").Normalized()
	require.NoError(t, err)
	assert.InDelta(t, 0.9339352140866403, unit.At(0).InexactFloat64(), 1e-12)
	assert.InDelta(t, -0.35744232526233, unit.At(1).InexactFloat64(), 1e-12)
	assert.InDelta(t, 1.0, unit.Magnitude().InexactFloat64(), 1e-15)

	_, err = MustVector("0", "0").Normalized()
	assert.ErrorIs(t, err, ErrZeroVectorNormalization)
}

// TestVectorAngle 夹角（弧度与角度）
func TestVectorAngle(t *testing.T) {
	angle, err := MustVector("3.183", "-7.627").AngleWith(MustVector("-2.668", "5.319"), false)
	require.NoError(t, err)
	assert.InDelta(t, 3.0720263, angle, 1e-6)

	angle, err = MustVector("7.35", "0.221", "5.188").AngleWith(MustVector("2.751", "8.259", "3.985"), true)
	require.NoError(t, err)
	assert.InDelta(t, 60.27581, angle, 1e-5)

	angle, err = MustVector("1", "0").AngleWith(MustVector("-1", "0"), false)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, angle, 1e-12)

	_, err = MustVector("1", "0").AngleWith(MustVector("0", "0"), false)
	assert.ErrorIs(t, err, ErrZeroVectorNormalization)
}

// TestVectorParallelOrthogonal 平行与正交判定
func TestVectorParallelOrthogonal(t *testing.T) {
	tests := []struct {
		name       string
		v, w       Vector
		parallel   bool
		orthogonal bool
	}{
		{"parallel opposite", MustVector("-7.579", "-7.88"), MustVector("22.737", "23.64"), true, false},
		{"neither", MustVector("-2.029", "9.97", "4.172"), MustVector("-9.231", "-6.639", "-7.245"), false, false},
		{"orthogonal", MustVector("-2.328", "-7.284", "-1.214"), MustVector("-1.821", "1.072", "-2.94"), false, true},
		{"zero vector", MustVector("2.118", "4.827"), MustVector("0", "0"), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parallel, err := tt.v.IsParallelTo(tt.w, MustScalar("0.001"))
			require.NoError(t, err)
			assert.Equal(t, tt.parallel, parallel)

			orthogonal, err := tt.v.IsOrthogonalTo(tt.w, DefaultTolerance)
			require.NoError(t, err)
			assert.Equal(t, tt.orthogonal, orthogonal)
		})
	}
}

// TestVectorProjection 投影分量之和等于原向量
func TestVectorProjection(t *testing.T) {
	v := MustVector("3.039", "1.879")
	b := MustVector("0.825", "2.036")

	par, err := v.ParallelComponent(b)
	require.NoError(t, err)
	assert.InDelta(t, 1.08260696, par.At(0).InexactFloat64(), 1e-8)
	assert.InDelta(t, 2.67174275, par.At(1).InexactFloat64(), 1e-8)

	orth, err := v.OrthogonalComponent(b)
	require.NoError(t, err)
	back, err := par.Plus(orth)
	require.NoError(t, err)
	assert.True(t, back.Equal(v), "got %s", back)

	ok, err := orth.IsOrthogonalTo(b, MustScalar("1e-20"))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = v.ParallelComponent(MustVector("0", "0"))
	assert.ErrorIs(t, err, ErrZeroVectorNormalization)
}

// TestVectorCross 叉积与两个因子都正交
func TestVectorCross(t *testing.T) {
	v := MustVector("8.462", "7.893", "-8.187")
	w := MustVector("6.984", "-5.975", "4.778")

	c, err := v.Cross(w)
	require.NoError(t, err)
	assert.True(t, c.Equal(MustVector("-11.204571", "-97.609444", "-105.685162")), "got %s", c)

	for _, f := range []Vector{v, w} {
		dot, err := c.Dot(f)
		require.NoError(t, err)
		assert.True(t, dot.IsZero(), "dot = %s", dot)
	}
}

// TestFirstNonzeroIndex 近零坐标被跳过
func TestFirstNonzeroIndex(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		want int
	}{
		{"first", MustVector("1", "0", "0"), 0},
		{"middle", MustVector("0", "-2", "1"), 1},
		{"below tolerance", MustVector("1e-11", "0", "3"), 2},
		{"above tolerance", MustVector("1e-9", "0", "3"), 0},
		{"all zero", MustVector("0", "0", "0"), NoNonzero},
		{"all near zero", MustVector("1e-12", "-1e-11"), NoNonzero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.FirstNonzeroIndex(DefaultTolerance))
		})
	}
}

// TestIsNearZero 阈值 1e-10 两侧
func TestIsNearZero(t *testing.T) {
	assert.True(t, IsNearZero(MustScalar("1e-11"), DefaultTolerance))
	assert.True(t, IsNearZero(MustScalar("-1e-11"), DefaultTolerance))
	assert.False(t, IsNearZero(MustScalar("1e-9"), DefaultTolerance))
	assert.False(t, IsNearZero(MustScalar("1e-10"), DefaultTolerance))
	assert.True(t, IsNearZero(MustScalar("1e-9"), MustScalar("1e-8")))
}

// TestDivPrecision 除法保留足够的有效数字
func TestDivPrecision(t *testing.T) {
	third := Div(NewScalar(1), NewScalar(3))
	back := third.Mul(NewScalar(3))
	assert.True(t, IsNearZero(back.Sub(NewScalar(1)), MustScalar("1e-25")))
	assert.Equal(t, "-1.5", Div(NewScalar(-3), NewScalar(2)).String())
}
