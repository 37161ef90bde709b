package maths

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Scalar 任意精度十进制数，所有坐标运算都基于它，避免二进制浮点漂移
type Scalar = decimal.Decimal

// NoNonzero 向量在容差范围内全为零时首个非零下标的哨兵值
const NoNonzero = -1

// DivisionPrecision 除法保留的小数位数
var DivisionPrecision int32 = 30

// DefaultTolerance 近零判定的默认阈值（1e-10）
var DefaultTolerance = decimal.New(1, -10)

var (
	zero = decimal.Zero
	one  = decimal.NewFromInt(1)
	two  = decimal.NewFromInt(2)
)

// IsNearZero 判断 |x| < tol
func IsNearZero(x, tol Scalar) bool {
	return x.Abs().LessThan(tol)
}

// Div 按 DivisionPrecision 做除法，b 为零时 panic
func Div(a, b Scalar) Scalar {
	return a.DivRound(b, DivisionPrecision)
}

// ParseScalar 解析十进制字符串
func ParseScalar(s string) (Scalar, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return zero, fmt.Errorf("%w: %q", ErrInvalidScalar, s)
	}
	return d, nil
}

// MustScalar 解析十进制字符串，失败时 panic
func MustScalar(s string) Scalar {
	d, err := ParseScalar(s)
	if err != nil {
		panic(err)
	}
	return d
}

// NewScalar 由整数构造
func NewScalar(v int64) Scalar { return decimal.NewFromInt(v) }

// sqrt 牛顿迭代求平方根，结果保留 DivisionPrecision 位小数
func sqrt(x Scalar) Scalar {
	if x.Sign() <= 0 {
		return zero
	}
	z := decimal.NewFromFloat(math.Sqrt(x.InexactFloat64()))
	if z.Sign() <= 0 {
		z = one
	}
	eps := decimal.New(1, -DivisionPrecision)
	for i := 0; i < 200; i++ {
		next := z.Add(Div(x, z)).DivRound(two, DivisionPrecision)
		if next.Sub(z).Abs().LessThan(eps) {
			return next
		}
		z = next
	}
	return z
}
