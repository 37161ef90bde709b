package linsys

import (
	"go.uber.org/zap"

	"linsys/maths"
)

// ComputeTriangularForm 前向消元得到三角形式，返回新的方程组，原方程组不变
//
// 按列处理：第 col 列使用第 col 行作为当前行
//  1. 当前行主元不在 col 列时，向下寻找主元在 col 列的行并交换上来；
//     找不到则跳过该列
//  2. 用当前行消去下方各行在 col 列的系数，系数近零时跳过
//
// 只与下方的行交换，不缩放行，只把当前行的倍数加到下方的行；
// 不做回代。全零行（0 = 0 或 0 = c）原样保留，由调用方解释
func (s *System) ComputeTriangularForm() *System {
	system := s.Clone()
	last := system.Len() - 1
	for col := 0; col <= last; col++ {
		system.eliminateBelow(col, col, last)
	}
	return system
}

// eliminateBelow 以 row 行为主元行消去 col 列，返回是否找到主元
func (s *System) eliminateBelow(row, col, last int) bool {
	if !s.acquirePivot(row, col, last) {
		s.logger.Debug("no pivot available", zap.Int("row", row), zap.Int("col", col))
		return false
	}
	pivot := s.planes[row].Normal().At(col)
	for below := row + 1; below <= last; below++ {
		coefficient := maths.Div(s.planes[below].Normal().At(col), pivot).Neg()
		if maths.IsNearZero(coefficient, s.tolerance) {
			continue
		}
		s.AddMultipleTimesRowToRow(coefficient, row, below)
	}
	return true
}

// acquirePivot 保证 row 行的首个非零项位于 col 列
// 主元总是在当前状态上重新计算，不做缓存
func (s *System) acquirePivot(row, col, last int) bool {
	if s.planes[row].FirstNonzeroIndex(s.tolerance) == col {
		return true
	}
	for ahead := row + 1; ahead <= last; ahead++ {
		if s.planes[ahead].FirstNonzeroIndex(s.tolerance) == col {
			s.SwapRows(row, ahead)
			return true
		}
	}
	return false
}
