package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"linsys"
	"linsys/hyperplane"
)

// LoadString 加载方程组文本
func LoadString(s string, opts ...linsys.Option) (*linsys.System, error) {
	return LoadReader(strings.NewReader(s), opts...)
}

// LoadFile 从文件加载方程组
func LoadFile(filename string, opts ...linsys.Option) (*linsys.System, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadReader(file, opts...)
}

// LoadReader 每行一个方程 "a1 a2 ... an = c"，忽略空行和 # 注释
func LoadReader(r io.Reader, opts ...linsys.Option) (*linsys.System, error) {
	planes, err := ParsePlanes(r)
	if err != nil {
		return nil, err
	}
	return linsys.New(planes, opts...)
}

// MaxLineSize 单行方程的最大字节数
var MaxLineSize = 1 << 20

// ParsePlanes 解析方程列表，错误信息带行号
func ParsePlanes(r io.Reader) ([]hyperplane.Plane, error) {
	var planes []hyperplane.Plane
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		p, err := hyperplane.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		planes = append(planes, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}
	return planes, nil
}

// Export 导出为 LoadReader 可读取的文本
func Export(w io.Writer, s *linsys.System) error {
	bw := bufio.NewWriter(w)
	for _, p := range s.Planes() {
		for _, c := range p.Normal().Coordinates() {
			bw.WriteString(c.String())
			bw.WriteRune(' ')
		}
		bw.WriteString("= ")
		bw.WriteString(p.Constant().String())
		bw.WriteRune('\n')
	}
	return bw.Flush()
}
