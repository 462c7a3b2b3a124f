package repositories

import (
	"prompthub/config"
	"prompthub/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type dbOpener func(cfg *config.Config) (*gorm.DB, error)

// SelectPromptRepository picks the backend once for the whole process: the
// persistent store when both credentials are configured, memory otherwise.
// A configured store that cannot be opened is an error, never a silent
// fallback.
func SelectPromptRepository(cfg *config.Config) (PromptRepository, error) {
	return selectPromptRepository(cfg, config.InitDB)
}

func selectPromptRepository(cfg *config.Config, open dbOpener) (PromptRepository, error) {
	if !cfg.UsePersistentStore() {
		logger.Log.Info("store credentials missing, using in-memory prompt storage")
		return NewMemoryPromptRepository(), nil
	}

	db, err := open(cfg)
	if err != nil {
		return nil, err
	}

	logger.Log.Info("using persistent prompt storage", zap.String("backend", BackendPersistent))
	return NewGormPromptRepository(db), nil
}
