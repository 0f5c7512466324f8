package packs_test

import (
	"context"
	"path/filepath"
	"testing"

	apperr "github.com/KirkDiggler/cp2020-sheet/internal/errors"
	"github.com/KirkDiggler/cp2020-sheet/internal/repositories/packs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestSQLite(t *testing.T, path string) *packs.SQLiteRepository {
	t.Helper()
	repo, err := packs.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, repo.Close())
	})
	return repo
}

func TestSQLiteRepository(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) packs.Repository {
		return openTestSQLite(t, filepath.Join(t.TempDir(), "packs.db"))
	})
}

func TestSQLiteRepository_InMemory(t *testing.T) {
	runRepositoryContract(t, func(t *testing.T) packs.Repository {
		return openTestSQLite(t, ":memory:")
	})
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := packs.OpenSQLite("  ")
	assert.True(t, apperr.IsInvalidArgument(err))
}

func TestSQLiteRepository_PersistsAcrossOpen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "packs.db")

	first, err := packs.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.SaveDocuments(ctx, packs.DefaultSkillsPack, []*packs.Document{
		testSkill("a", "Athletics", "ref"),
	}))
	require.NoError(t, first.Close())

	second := openTestSQLite(t, path)
	got, err := second.GetDocuments(ctx, packs.DefaultSkillsPack)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Athletics", got[0].Name)
}
