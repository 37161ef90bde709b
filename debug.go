package linsys

import (
	"io"

	"linsys/debug"
	"linsys/hyperplane"
)

// nopDebug 默认的关闭状态调试器
type nopDebug struct{}

func (nopDebug) IsDebug() bool                         { return false }
func (nopDebug) SetDebug(bool)                         {}
func (nopDebug) Update(debug.Step, []hyperplane.Plane) {}
func (nopDebug) Render(io.Writer) error                { return nil }
