// Package cli 线性方程组命令行
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"linsys"
	"linsys/debug"
	"linsys/internal/config"
	"linsys/load"
	"linsys/maths"
)

// Version 构建时注入
var Version = "0.1.0"

// ErrNoInput 没有可用的方程来源
var ErrNoInput = errors.New("no equations given: pass a file, --input or equations in the config file")

type sessionKey struct{}

// session 一次命令执行的上下文
// maths.DivisionPrecision 是进程级设置，命令结束时恢复为执行前的值
type session struct {
	cfg       *config.Config
	logger    *zap.Logger
	precision int32
}

func (s *session) close() {
	maths.DivisionPrecision = s.precision
	_ = s.logger.Sync()
}

// NewRootCmd 创建根命令
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "linsys",
		Short: "Gaussian elimination on systems of linear equations",
		Long: `linsys reads a system of linear equations in exact decimal arithmetic
and applies elementary row operations to it: triangular form, reduced row
echelon form, solution classification and plotting of planar systems.

Equations are written one per line as "a1 a2 ... an = c".`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			s := &session{
				cfg:       cfg,
				logger:    newLogger(cmd.ErrOrStderr(), cfg.Verbose),
				precision: maths.DivisionPrecision,
			}
			maths.DivisionPrecision = cfg.Precision
			cmd.SetContext(context.WithValue(cmd.Context(), sessionKey{}, s))
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (yaml)")
	flags.String("tolerance", "", "near-zero tolerance (default "+config.DefaultTolerance+")")
	flags.Int32("precision", 0, fmt.Sprintf("decimal places kept by division (default %d)", config.DefaultPrecision))
	flags.BoolP("verbose", "v", false, "log every row operation to stderr")
	flags.StringP("output", "o", "", "output format (text|table|json)")
	flags.StringP("input", "i", "", "equations file")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "table", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newVersionCommand(Version))
	rootCmd.AddCommand(newTriangularCommand())
	rootCmd.AddCommand(newRREFCommand())
	rootCmd.AddCommand(newSolveCommand())
	rootCmd.AddCommand(newPivotsCommand())
	rootCmd.AddCommand(newPlotCommand())

	// RunE 返回时恢复进程级设置，包括出错的情况
	for _, sub := range rootCmd.Commands() {
		if sub.RunE == nil {
			continue
		}
		run := sub.RunE
		sub.RunE = func(cmd *cobra.Command, args []string) error {
			defer func() {
				if s := getSession(cmd.Context()); s != nil {
					s.close()
				}
			}()
			return run(cmd, args)
		}
	}

	return rootCmd
}

// Execute 运行根命令
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func getSession(ctx context.Context) *session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(sessionKey{}).(*session)
	return s
}

// newLogger verbose 时输出 Debug 级别的控制台日志，否则不输出
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

// loadSystem 按优先级读取方程组：参数文件（"-" 为标准输入）、--input、配置文件中的 equations
func loadSystem(cmd *cobra.Command, args []string, rec debug.Recorder) (*linsys.System, error) {
	s := getSession(cmd.Context())
	if s == nil {
		return nil, errors.New("configuration not loaded")
	}
	opts := append(s.cfg.Options(), linsys.WithLogger(s.logger))
	if rec != nil {
		opts = append(opts, linsys.WithDebug(rec))
	}

	path := s.cfg.Input
	if len(args) > 0 {
		path = args[0]
	}
	switch {
	case path == "-":
		return load.LoadReader(cmd.InOrStdin(), opts...)
	case path != "":
		return load.LoadFile(path, opts...)
	case len(s.cfg.Equations) > 0:
		planes, err := s.cfg.Planes()
		if err != nil {
			return nil, err
		}
		return linsys.New(planes, opts...)
	}
	return nil, ErrNoInput
}
