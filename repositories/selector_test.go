package repositories

import (
	"errors"
	"testing"

	"prompthub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSelectPromptRepositoryFallsBackToMemory(t *testing.T) {
	called := false
	open := func(*config.Config) (*gorm.DB, error) {
		called = true
		return nil, errors.New("should not open")
	}

	for _, cfg := range []*config.Config{
		{},
		{StoreURL: "postgres://h/db"},
		{StoreKey: "key"},
	} {
		repo, err := selectPromptRepository(cfg, open)
		require.NoError(t, err)
		assert.Equal(t, BackendMemory, repo.Backend())
	}
	assert.False(t, called)
}

func TestSelectPromptRepositoryUsesPersistentStore(t *testing.T) {
	db := openTestDB(t)
	cfg := &config.Config{StoreURL: "postgres://h/db", StoreKey: "key"}

	repo, err := selectPromptRepository(cfg, func(got *config.Config) (*gorm.DB, error) {
		assert.Same(t, cfg, got)
		return db, nil
	})
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, BackendPersistent, repo.Backend())
}

func TestSelectPromptRepositoryDoesNotHideStoreErrors(t *testing.T) {
	cfg := &config.Config{StoreURL: "postgres://h/db", StoreKey: "key"}
	boom := errors.New("connect store: refused")

	repo, err := selectPromptRepository(cfg, func(*config.Config) (*gorm.DB, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, repo)
}
