package store

// Repository implementation (JSON file)

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/entity"

	"github.com/google/uuid"
)

// BookJSON keeps the whole collection in a single JSON file. Every
// operation reads the full file, applies the change in memory and writes
// the file back. Writes go to a temp file in the same directory and are
// renamed over the original, so a reader never observes a half-written
// file and a crash mid-write leaves the previous state intact.
type BookJSON struct {
	path string
	mu   sync.RWMutex
}

// NewBookJSON opens the store at path, creating an empty collection file
// if none exists.
func NewBookJSON(path string) (*BookJSON, error) {
	s := &BookJSON{path: path}

	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if err := s.persist([]entity.Book{}); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *BookJSON) load() ([]entity.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	var books []entity.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return books, nil
}

func (s *BookJSON) persist(books []entity.Book) error {
	data, err := json.MarshalIndent(books, "", "  ")
	if err != nil {
		return fmt.Errorf("encode books: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".books-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}
	return nil
}

func (s *BookJSON) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return entity.Book{}, err
	}

	b.ID = uuid.New().String()
	books = append(books, b)

	if err := s.persist(books); err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

func (s *BookJSON) List(ctx context.Context, p catalog.ListParams) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.load()
	if err != nil {
		return nil, err
	}
	return pageBooks(books, p), nil
}

func (s *BookJSON) Get(ctx context.Context, id string) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	books, err := s.load()
	if err != nil {
		return entity.Book{}, err
	}
	for _, b := range books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, catalog.ErrNotFound
}

func (s *BookJSON) UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return entity.Book{}, err
	}
	for i := range books {
		if books[i].ID == id {
			books[i].Author = author
			if err := s.persist(books); err != nil {
				return entity.Book{}, err
			}
			return books[i], nil
		}
	}
	return entity.Book{}, catalog.ErrNotFound
}

func (s *BookJSON) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	books, err := s.load()
	if err != nil {
		return err
	}
	for i := range books {
		if books[i].ID == id {
			books = append(books[:i], books[i+1:]...)
			return s.persist(books)
		}
	}
	// absent id: idempotent success, nothing to write
	return nil
}

// pageBooks filters by the search term and then slices out one page,
// preserving insertion order. Filtering precedes pagination. A negative
// skip is treated as 0 and a non-positive limit yields an empty page.
func pageBooks(books []entity.Book, p catalog.ListParams) []entity.Book {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		return []entity.Book{}
	}
	if p.Search != "" {
		term := strings.ToLower(p.Search)
		filtered := make([]entity.Book, 0, len(books))
		for _, b := range books {
			if strings.Contains(strings.ToLower(b.Title), term) ||
				strings.Contains(strings.ToLower(b.Author), term) ||
				strings.Contains(strings.ToLower(b.Description), term) {
				filtered = append(filtered, b)
			}
		}
		books = filtered
	}

	if p.Skip >= len(books) {
		return []entity.Book{}
	}
	books = books[p.Skip:]
	if p.Limit < len(books) {
		books = books[:p.Limit]
	}

	out := make([]entity.Book, len(books))
	copy(out, books)
	return out
}
