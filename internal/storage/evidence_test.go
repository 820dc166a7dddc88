package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

func TestSaveAndLoad(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	claimID := uuid.New()
	path, err := store.Save(claimID, "Roof-Damage.JPG", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(path), claimID.String())
	assert.Equal(t, ".jpg", filepath.Ext(path))

	got := store.Load([]entity.ClaimEvidence{{
		FileName: "Roof-Damage.JPG",
		FileType: "image/jpeg",
		FilePath: path,
	}})
	require.Len(t, got, 1)
	assert.Equal(t, "Roof-Damage.JPG", got[0].FileName)
	assert.Equal(t, "image/jpeg", got[0].MimeType)
	assert.Equal(t, []byte("jpeg-bytes"), got[0].Bytes)
}

func TestSaveUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	claimID := uuid.New()
	first, err := store.Save(claimID, "photo.png", []byte("a"))
	require.NoError(t, err)
	second, err := store.Save(claimID, "photo.png", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLoadSkipsMissingFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	claimID := uuid.New()
	kept, err := store.Save(claimID, "kept.jpg", []byte("data"))
	require.NoError(t, err)

	got := store.Load([]entity.ClaimEvidence{
		{FileName: "gone.jpg", FilePath: filepath.Join(dir, "does-not-exist.jpg")},
		{FileName: "kept.jpg", FileType: "image/jpeg", FilePath: kept},
	})
	require.Len(t, got, 1)
	assert.Equal(t, "kept.jpg", got[0].FileName)
}

func TestRemove(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	path, err := store.Save(uuid.New(), "photo.jpg", []byte("data"))
	require.NoError(t, err)
	require.NoError(t, store.Remove(path))

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// removing twice is fine
	assert.NoError(t, store.Remove(path))
}
