package linsys

import (
	"linsys/maths"
)

// SolutionKind 解的个数
type SolutionKind uint8

const (
	NoSolution        SolutionKind = iota // 无解
	UniqueSolution                        // 唯一解
	InfiniteSolutions                     // 无穷多解
)

func (k SolutionKind) String() string {
	switch k {
	case NoSolution:
		return "No solutions"
	case UniqueSolution:
		return "Unique solution"
	case InfiniteSolutions:
		return "Infinitely many solutions"
	}
	return "Unknown"
}

// echelonForm 标准高斯消元：主元列与主元行分别推进
// 与 ComputeTriangularForm 不同，某一列没有主元时行指针不前进，结果总是阶梯形
func (s *System) echelonForm() *System {
	system := s.Clone()
	last := system.Len() - 1
	row := 0
	for col := 0; col < system.dimension && row <= last; col++ {
		if system.eliminateBelow(row, col, last) {
			row++
		}
	}
	return system
}

// ComputeRREF 简化行阶梯形：主元化为 1，并消去主元上方的系数
// 只使用三种初等行变换，原方程组不变
func (s *System) ComputeRREF() *System {
	system := s.echelonForm()
	for row := system.Len() - 1; row >= 0; row-- {
		col := system.planes[row].FirstNonzeroIndex(system.tolerance)
		if col == maths.NoNonzero {
			continue
		}
		system.MultiplyCoefficientAndRow(maths.Div(maths.NewScalar(1), system.planes[row].Normal().At(col)), row)
		for above := row - 1; above >= 0; above-- {
			coefficient := system.planes[above].Normal().At(col).Neg()
			if maths.IsNearZero(coefficient, system.tolerance) {
				continue
			}
			system.AddMultipleTimesRowToRow(coefficient, row, above)
		}
	}
	return system
}

// Classify 根据简化行阶梯形判断解的个数
func (s *System) Classify() SolutionKind {
	kind, _ := s.ComputeRREF().classify()
	return kind
}

func (s *System) classify() (SolutionKind, []int) {
	pivots := s.IndicesOfFirstNonzeroTerms()
	count := 0
	for i, col := range pivots {
		if col != maths.NoNonzero {
			count++
			continue
		}
		if s.planes[i].IsContradiction(s.tolerance) {
			return NoSolution, pivots
		}
	}
	if count < s.dimension {
		return InfiniteSolutions, pivots
	}
	return UniqueSolution, pivots
}

// Solve 求唯一解
// 无解返回 ErrNoSolution，无穷多解返回 ErrInfiniteSolutions
func (s *System) Solve() (maths.Vector, error) {
	rref := s.ComputeRREF()
	kind, pivots := rref.classify()
	switch kind {
	case NoSolution:
		return maths.Vector{}, ErrNoSolution
	case InfiniteSolutions:
		return maths.Vector{}, ErrInfiniteSolutions
	}
	coords := make([]maths.Scalar, rref.dimension)
	for row, col := range pivots {
		if col == maths.NoNonzero {
			continue
		}
		p := rref.planes[row]
		coords[col] = maths.Div(p.Constant(), p.Normal().At(col))
	}
	return maths.NewVector(coords...)
}
