// Package pipeline orchestrates the fetch and analysis stages and owns the
// persisted JSON documents that connect them.
package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/auspexlabs/auspex/internal/models"
)

// jsonIndent is the indent unit for the persisted documents. Four spaces,
// so the files stay diffable and readable in review.
const jsonIndent = "    "

// Store reads and writes the two persisted article documents: the cleaned
// batch produced by the fetch stage and the analyzed batch produced by the
// analysis stage.
type Store struct {
	dataDir      string
	cleanedFile  string
	analyzedFile string
}

// NewStore creates a document store rooted at dataDir.
func NewStore(dataDir, cleanedFile, analyzedFile string) *Store {
	return &Store{
		dataDir:      dataDir,
		cleanedFile:  cleanedFile,
		analyzedFile: analyzedFile,
	}
}

// CleanedPath returns the path of the cleaned-articles document.
func (s *Store) CleanedPath() string {
	return filepath.Join(s.dataDir, s.cleanedFile)
}

// AnalyzedPath returns the path of the analyzed-articles document.
func (s *Store) AnalyzedPath() string {
	return filepath.Join(s.dataDir, s.analyzedFile)
}

// SaveCleaned writes the cleaned article batch, replacing any previous one.
func (s *Store) SaveCleaned(articles []models.Article) error {
	return s.write(s.CleanedPath(), articles)
}

// LoadCleaned reads the cleaned article batch. Returns an error when the
// document does not exist; the analysis stage cannot run without it.
func (s *Store) LoadCleaned() ([]models.Article, error) {
	return s.read(s.CleanedPath())
}

// SaveAnalyzed writes the analyzed article batch, replacing any previous one.
func (s *Store) SaveAnalyzed(articles []models.Article) error {
	return s.write(s.AnalyzedPath(), articles)
}

// LoadAnalyzed reads the analyzed article batch.
func (s *Store) LoadAnalyzed() ([]models.Article, error) {
	return s.read(s.AnalyzedPath())
}

// ModTime returns the document's last-modified time, or the zero time when
// the document has never been written.
func ModTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}

// write marshals the batch and replaces the document atomically: the data
// lands in a temp file first so readers never observe a half-written batch.
func (s *Store) write(path string, articles []models.Article) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	data, err := json.MarshalIndent(articles, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("failed to marshal articles: %w", err)
	}

	tmp, err := os.CreateTemp(s.dataDir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write articles: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}

func (s *Store) read(path string) ([]models.Article, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("document %s does not exist, run fetch first", filepath.Base(path))
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var articles []models.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return articles, nil
}
