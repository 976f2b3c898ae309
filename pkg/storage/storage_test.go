package storage_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/dskvich/prompt-workspace-bot/pkg/database"
	"github.com/dskvich/prompt-workspace-bot/pkg/storage"
)

type StoreSuite struct {
	suite.Suite
	newStore func(t *testing.T) storage.Store
	store    storage.Store
}

func (s *StoreSuite) SetupTest() {
	s.store = s.newStore(s.T())
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(*testing.T) storage.Store {
		return storage.NewMemoryStore()
	}})
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, &StoreSuite{newStore: func(t *testing.T) storage.Store {
		db, err := database.NewSQLite("file::memory:")
		require.NoError(t, err)
		t.Cleanup(func() { db.Close() })
		return storage.NewSQLStore(db)
	}})
}

func (s *StoreSuite) TestGetMissing() {
	value, ok, err := s.store.Get(context.Background(), "nope")
	s.Require().NoError(err)
	s.False(ok)
	s.Empty(value)
}

func (s *StoreSuite) TestSetOverwrites() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "theme", "dark"))
	s.Require().NoError(s.store.Set(ctx, "theme", "light"))

	value, ok, err := s.store.Get(ctx, "theme")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("light", value)
}

func (s *StoreSuite) TestRemove() {
	ctx := context.Background()

	s.Require().NoError(s.store.Set(ctx, "key", "secret"))
	s.Require().NoError(s.store.Remove(ctx, "key"))
	s.Require().NoError(s.store.Remove(ctx, "never-set"))

	_, ok, err := s.store.Get(ctx, "key")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *StoreSuite) TestPrefixIsolation() {
	ctx := context.Background()
	first := storage.WithPrefix(s.store, "chat:1:")
	second := storage.WithPrefix(s.store, "chat:2:")

	s.Require().NoError(first.Set(ctx, "gptcw-theme", "light"))

	_, ok, err := second.Get(ctx, "gptcw-theme")
	s.Require().NoError(err)
	s.False(ok)

	value, ok, err := s.store.Get(ctx, "chat:1:gptcw-theme")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("light", value)
}
