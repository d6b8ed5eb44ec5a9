package logging

import (
	"go.uber.org/zap"
)

// New builds the console logger used by the CLI. Debug enables the development
// config; otherwise only warnings and above are emitted.
func New(debug bool) (*zap.SugaredLogger, error) {
	var cfg zap.Config
	if debug {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}
	cfg.Encoding = "console"
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

// Nop is the logger used when none is injected.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
