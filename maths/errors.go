package maths

import "errors"

var (
	// ErrEmptyVector 坐标序列为空
	ErrEmptyVector = errors.New("maths: the coordinates must be nonempty")
	// ErrDimensionMismatch 两个向量维度不一致
	ErrDimensionMismatch = errors.New("maths: vector dimensions do not match")
	// ErrZeroVectorNormalization 零向量没有方向
	ErrZeroVectorNormalization = errors.New("maths: cannot normalize the zero vector")
	// ErrInvalidScalar 无法解析的数值
	ErrInvalidScalar = errors.New("maths: invalid scalar")
)
