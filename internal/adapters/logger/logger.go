package logger

import (
	"fmt"

	"go.uber.org/zap"
)

type config struct {
	outputPath string
}

type option func(*config)

// OutputPath adds a log file next to stderr output. Empty path is ignored.
func OutputPath(path string) option {
	return func(c *config) {
		c.outputPath = path
	}
}

func New(level string, options ...option) (*zap.Logger, error) {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("failed parse log level `%s`: %w", level, err)
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = lvl
	zapCfg.OutputPaths = []string{"stderr"}
	if cfg.outputPath != "" {
		zapCfg.OutputPaths = append(zapCfg.OutputPaths, cfg.outputPath)
	}

	log, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed build logger: %w", err)
	}

	return log, nil
}
