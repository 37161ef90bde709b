package linsys

import (
	"strconv"

	"go.uber.org/zap"

	"linsys/debug"
	"linsys/maths"
)

// 初等行变换：方程组的行状态只能通过这三个操作修改，解集保持不变
// 行下标必须有效，越界时与切片访问一样 panic

// SwapRows 交换两行，row1 == row2 时不做任何修改
func (s *System) SwapRows(row1, row2 int) {
	s.logger.Debug("swap rows", zap.Int("row1", row1), zap.Int("row2", row2))
	s.planes[row1], s.planes[row2] = s.planes[row2], s.planes[row1]
	s.record("swap_rows", strconv.Itoa(row1), strconv.Itoa(row2))
}

// MultiplyCoefficientAndRow 第 row 行乘以 coefficient
// 乘以零会抹掉该行信息，由调用方负责
func (s *System) MultiplyCoefficientAndRow(coefficient maths.Scalar, row int) {
	s.logger.Debug("multiply coefficient and row",
		zap.Stringer("coefficient", coefficient), zap.Int("row", row))
	s.planes[row] = s.planes[row].Scaled(coefficient)
	s.record("multiply_coefficient_and_row", coefficient.String(), strconv.Itoa(row))
}

// AddMultipleTimesRowToRow 第 rowToBeAddedTo 行加上 coefficient 倍的第 rowToAdd 行
// 两者相同时效果为 (1+coefficient) 倍
func (s *System) AddMultipleTimesRowToRow(coefficient maths.Scalar, rowToAdd, rowToBeAddedTo int) {
	s.logger.Debug("add multiple times row to row",
		zap.Stringer("coefficient", coefficient),
		zap.Int("row_to_add", rowToAdd),
		zap.Int("row_to_be_added_to", rowToBeAddedTo))
	// 同一系统内维度一致，不会出错
	p, _ := s.planes[rowToBeAddedTo].PlusMultiple(coefficient, s.planes[rowToAdd])
	s.planes[rowToBeAddedTo] = p
	s.record("add_multiple_times_row_to_row", coefficient.String(), strconv.Itoa(rowToAdd), strconv.Itoa(rowToBeAddedTo))
}

func (s *System) record(op string, args ...string) {
	if s.Debug != nil && s.Debug.IsDebug() {
		s.Debug.Update(debug.Step{Op: op, Args: args}, s.planes)
	}
}
