package store

// Repository implementation (in-memory)

import (
	"context"
	"sync"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/entity"

	"github.com/google/uuid"
)

// BookMemory is an in-memory Repository with the same contract as the
// file-backed store. Useful for tests and ephemeral deployments.
type BookMemory struct {
	mu    sync.RWMutex
	books []entity.Book
}

// NewBookMemory creates an empty in-memory store.
func NewBookMemory() *BookMemory {
	return &BookMemory{}
}

func (s *BookMemory) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = uuid.New().String()
	s.books = append(s.books, b)
	return b, nil
}

func (s *BookMemory) List(ctx context.Context, p catalog.ListParams) ([]entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return pageBooks(s.books, p), nil
}

func (s *BookMemory) Get(ctx context.Context, id string) (entity.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.books {
		if b.ID == id {
			return b, nil
		}
	}
	return entity.Book{}, catalog.ErrNotFound
}

func (s *BookMemory) UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books[i].Author = author
			return s.books[i], nil
		}
	}
	return entity.Book{}, catalog.ErrNotFound
}

func (s *BookMemory) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.books {
		if s.books[i].ID == id {
			s.books = append(s.books[:i], s.books[i+1:]...)
			return nil
		}
	}
	return nil
}
