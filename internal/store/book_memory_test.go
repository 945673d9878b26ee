package store

import (
	"context"
	"sync"
	"testing"

	"bookcatalog/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookMemory_RoundTrip(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	created, err := s.Create(ctx, sampleBook())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestBookMemory_NotFound(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = s.UpdateAuthor(ctx, "missing", "Someone")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	assert.NoError(t, s.Delete(ctx, "missing"))
}

func TestBookMemory_UpdateAuthorOnly(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	created, err := s.Create(ctx, sampleBook())
	require.NoError(t, err)

	updated, err := s.UpdateAuthor(ctx, created.ID, "New Author")
	require.NoError(t, err)
	assert.Equal(t, "New Author", updated.Author)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Price, updated.Price)
}

func TestBookMemory_ConcurrentCreates(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b, err := s.Create(ctx, sampleBook())
			assert.NoError(t, err)
			ids <- b.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		seen[id] = true
	}
	assert.Len(t, seen, n)

	page, err := s.List(ctx, catalog.ListParams{Skip: 0, Limit: n * 2})
	require.NoError(t, err)
	assert.Len(t, page, n)
}

func TestBookMemory_ListSearch(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	b := sampleBook()
	b.Author = "Orwell"
	_, err := s.Create(ctx, b)
	require.NoError(t, err)

	page, err := s.List(ctx, catalog.ListParams{Skip: 0, Limit: 10, Search: "orwell"})
	require.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestBookMemory_ListSearchTermIsLiteral(t *testing.T) {
	s := NewBookMemory()
	ctx := context.Background()

	b := sampleBook()
	b.Title = "file_name conventions"
	_, err := s.Create(ctx, b)
	require.NoError(t, err)

	other := sampleBook()
	other.Title = "fileXname conventions"
	_, err = s.Create(ctx, other)
	require.NoError(t, err)

	// "_" matches only itself, never an arbitrary character
	page, err := s.List(ctx, catalog.ListParams{Skip: 0, Limit: 10, Search: "file_name"})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "file_name conventions", page[0].Title)
}
