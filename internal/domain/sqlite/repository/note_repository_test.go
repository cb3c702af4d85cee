package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Andriyshkoy/BurNote/internal/domain/entity"
	"github.com/Andriyshkoy/BurNote/internal/domain/sqlite"
	"github.com/Andriyshkoy/BurNote/internal/utils/uid"
)

func newTestRepo(t *testing.T) *DefaultNoteRepository {
	t.Helper()
	uid.Init(1)

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return NewNoteRepository(db)
}

func testNote(hash string) *entity.Note {
	return &entity.Note{
		Hash:      hash,
		Title:     []byte("title-ct"),
		Text:      []byte("text-ct"),
		Timestamp: time.Now().UTC().Truncate(time.Second),
	}
}

func TestNoteRepository_SaveAndFind(t *testing.T) {
	repo := newTestRepo(t)

	note := testNote("aaaa")
	require.NoError(t, repo.Save(note))
	assert.NotZero(t, note.ID, "repository must assign the storage ID")

	found, err := repo.FindByHash("aaaa")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, note.ID, found.ID)
	assert.Equal(t, []byte("text-ct"), found.Text)
	assert.False(t, found.IsExpired)
}

func TestNoteRepository_FindByHash_Missing(t *testing.T) {
	repo := newTestRepo(t)

	found, err := repo.FindByHash("missing")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestNoteRepository_ExistsByHash(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(testNote("bbbb")))

	exists, err := repo.ExistsByHash("bbbb")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByHash("cccc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestNoteRepository_ExpireByHash(t *testing.T) {
	repo := newTestRepo(t)
	require.NoError(t, repo.Save(testNote("dddd")))

	now := time.Now().UTC().Truncate(time.Second)
	burned, err := repo.ExpireByHash("dddd", now)
	require.NoError(t, err)
	assert.True(t, burned)

	found, err := repo.FindByHash("dddd")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.IsExpired)
	assert.Empty(t, found.Title)
	assert.Empty(t, found.Text)
	require.NotNil(t, found.ExpirationDate)

	// Second transition loses the compare-and-set.
	burned, err = repo.ExpireByHash("dddd", now.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, burned)
}

func TestNoteRepository_ExpireByHash_Missing(t *testing.T) {
	repo := newTestRepo(t)

	burned, err := repo.ExpireByHash("nothing", time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, burned)
}
