package linsys

import "errors"

var (
	// ErrDimensionMismatch 方程组中的超平面必须属于同一维度
	ErrDimensionMismatch = errors.New("all planes in the system should live in the same dimension")
	// ErrEmptySystem 方程组至少需要一个方程
	ErrEmptySystem = errors.New("linear system must contain at least one plane")
	// ErrInvalidTolerance 近零阈值必须为正数
	ErrInvalidTolerance = errors.New("tolerance must be positive")
	// ErrRowOutOfRange 行下标越界
	ErrRowOutOfRange = errors.New("row index out of range")
	// ErrNoSolution 方程组无解
	ErrNoSolution = errors.New("no solutions")
	// ErrInfiniteSolutions 方程组有无穷多解
	ErrInfiniteSolutions = errors.New("infinitely many solutions")
)
