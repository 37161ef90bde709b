// Package config 命令行配置：默认值 < 配置文件 < LINSYS_ 环境变量 < 命令行参数
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"linsys"
	"linsys/hyperplane"
	"linsys/maths"
)

const (
	DefaultTolerance = "1e-10"
	DefaultPrecision = 30
	DefaultOutput    = "text"
	envPrefix        = "LINSYS_"
)

// ErrInvalidConfig 配置项非法
var ErrInvalidConfig = errors.New("config: invalid value")

// Equation 配置文件中的一个方程
type Equation struct {
	Normal   []string `koanf:"normal"`
	Constant string   `koanf:"constant"`
}

// Config 命令行配置
type Config struct {
	Tolerance string     `koanf:"tolerance"`
	Precision int32      `koanf:"precision"`
	Verbose   bool       `koanf:"verbose"`
	Output    string     `koanf:"output"` // text、table、json
	Input     string     `koanf:"input"`  // 文本格式的方程文件
	Equations []Equation `koanf:"equations"`
}

// Load 按优先级合并配置，cfgFile 为空时不读取配置文件
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"tolerance": DefaultTolerance,
		"precision": DefaultPrecision,
		"verbose":   false,
		"output":    DefaultOutput,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// LINSYS_TOLERANCE -> tolerance
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate 检查数值配置
func (c *Config) Validate() error {
	tol, err := maths.ParseScalar(c.Tolerance)
	if err != nil || tol.Sign() <= 0 {
		return fmt.Errorf("%w: tolerance %q must be a positive number", ErrInvalidConfig, c.Tolerance)
	}
	if c.Precision <= 0 {
		return fmt.Errorf("%w: precision %d must be positive", ErrInvalidConfig, c.Precision)
	}
	switch c.Output {
	case "text", "table", "json":
	default:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// ToleranceScalar 已校验的阈值
func (c *Config) ToleranceScalar() maths.Scalar {
	return maths.MustScalar(c.Tolerance)
}

// Planes 将配置文件中的方程转换为超平面
func (c *Config) Planes() ([]hyperplane.Plane, error) {
	planes := make([]hyperplane.Plane, 0, len(c.Equations))
	for i, eq := range c.Equations {
		normal, err := maths.ParseVector(eq.Normal...)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i+1, err)
		}
		constant := maths.NewScalar(0)
		if eq.Constant != "" {
			if constant, err = maths.ParseScalar(eq.Constant); err != nil {
				return nil, fmt.Errorf("equation %d: %w", i+1, err)
			}
		}
		p, err := hyperplane.New(normal, constant)
		if err != nil {
			return nil, fmt.Errorf("equation %d: %w", i+1, err)
		}
		planes = append(planes, p)
	}
	return planes, nil
}

// Options 方程组选项
func (c *Config) Options() []linsys.Option {
	return []linsys.Option{linsys.WithTolerance(c.ToleranceScalar())}
}
