// Package cli holds the start-up shared by the command binaries.
package cli

import (
	"go.uber.org/zap"

	"github.com/huynhanx03/go-snippets/pkg/logger"
	"github.com/huynhanx03/go-snippets/pkg/settings"
)

// Bootstrap loads the configuration from settings.DefaultPaths and builds
// the logger it describes. A config file that cannot be loaded or fails
// validation is ignored with a warning: configuration only tunes logging and
// the allocator backend, never the program output.
func Bootstrap() (*settings.Config, *zap.Logger, error) {
	cfg, loadErr := settings.Load()
	if loadErr != nil {
		cfg = settings.Default()
	}

	log, err := logger.New(cfg.Logger, nil)
	if err != nil {
		return nil, nil, err
	}
	if loadErr != nil {
		log.Warn("config ignored, using defaults", zap.Error(loadErr))
	}
	return cfg, log, nil
}
