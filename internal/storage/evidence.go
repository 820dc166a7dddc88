// Package storage keeps uploaded evidence files on local disk.
package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/insurtech-labs/claims-adjudicator/constants"
	"github.com/insurtech-labs/claims-adjudicator/internal/entity"
)

// Store writes and reads evidence files under a single base directory.
// Stored names are prefixed with the claim id so files for one claim can be
// located without a database round trip.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "./uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Save persists one evidence file and returns the path it was stored at.
// The stored name embeds a fresh uuid so repeated uploads of the same file
// never collide.
func (s *Store) Save(claimID uuid.UUID, fileName string, data []byte) (string, error) {
	name := fmt.Sprintf("%s_%s", claimID, uuid.New())
	if ext := constants.NormalizeExt(filepath.Ext(fileName)); ext != "" {
		name += "." + ext
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write evidence file: %w", err)
	}
	return path, nil
}

// LoadedFile is one evidence file read back from disk.
type LoadedFile struct {
	FileName string
	MimeType string
	Bytes    []byte
}

// Load reads stored evidence back for analysis. Files that have gone
// missing on disk or that exceed the per-image size cap are skipped rather
// than failing the whole batch.
func (s *Store) Load(items []entity.ClaimEvidence) []LoadedFile {
	var out []LoadedFile
	for _, it := range items {
		info, err := os.Stat(it.FilePath)
		if err != nil || info.Size() > constants.MaxEvidenceImageBytes {
			continue
		}
		b, err := os.ReadFile(it.FilePath)
		if err != nil {
			continue
		}
		out = append(out, LoadedFile{
			FileName: it.FileName,
			MimeType: it.FileType,
			Bytes:    b,
		})
	}
	return out
}

// Remove deletes a stored file. Missing files are not an error.
func (s *Store) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove evidence file: %w", err)
	}
	return nil
}
