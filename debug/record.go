package debug

import (
	"encoding/json"
	"io"

	"linsys/hyperplane"
)

// Recorder 行变换调试接口
type Recorder interface {
	IsDebug() bool
	SetDebug(is bool)
	Update(step Step, planes []hyperplane.Plane)
	Render(w io.Writer) error
}

// Step 一次初等行变换
type Step struct {
	Op   string   `json:"op"`   // 变换名称
	Args []string `json:"args"` // 变换参数
}

// Entry 变换及变换后的方程组
type Entry struct {
	Step
	Rows []string `json:"rows"`
}

// Record 记录历史状态
type Record struct {
	Entries []Entry `json:"entries"`
	off     bool
}

// NewRecord 创建已开启的记录器
func NewRecord() *Record { return &Record{} }

func (list *Record) IsDebug() bool    { return !list.off }
func (list *Record) SetDebug(is bool) { list.off = !is }

// Update 记录数据
func (list *Record) Update(step Step, planes []hyperplane.Plane) {
	if list.off {
		return
	}
	rows := make([]string, len(planes))
	for i, p := range planes {
		rows[i] = p.String()
	}
	list.Entries = append(list.Entries, Entry{Step: step, Rows: rows})
}

// Ops 按顺序返回已记录的变换名称
func (list *Record) Ops() []string {
	ops := make([]string, len(list.Entries))
	for i, e := range list.Entries {
		ops[i] = e.Op
	}
	return ops
}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
