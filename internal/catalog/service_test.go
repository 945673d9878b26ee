package catalog

import (
	"context"
	"testing"

	"bookcatalog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRepo records the last call so tests can inspect what the service
// passed through.
type stubRepo struct {
	created    *entity.Book
	listParams *ListParams
}

func (r *stubRepo) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	b.ID = "generated-id"
	r.created = &b
	return b, nil
}

func (r *stubRepo) List(ctx context.Context, p ListParams) ([]entity.Book, error) {
	r.listParams = &p
	return []entity.Book{}, nil
}

func (r *stubRepo) Get(ctx context.Context, id string) (entity.Book, error) {
	return entity.Book{}, ErrNotFound
}

func (r *stubRepo) UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error) {
	return entity.Book{}, ErrNotFound
}

func (r *stubRepo) Delete(ctx context.Context, id string) error {
	return nil
}

func validInput() CreateInput {
	price := 20.0
	return CreateInput{
		Title:       "Dune",
		Author:      "Herbert",
		Price:       &price,
		Cover:       "c.jpg",
		Tags:        []string{"science"},
		Description: "desert planet",
	}
}

func TestService_CreateValid(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	book, err := svc.Create(context.Background(), validInput())
	require.NoError(t, err)
	assert.Equal(t, "generated-id", book.ID)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, 20.0, book.Price)
}

func TestService_CreateDefaultPrice(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	in := validInput()
	in.Price = nil

	book, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultPrice), book.Price)
}

func TestService_CreateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateInput)
		field  string
	}{
		{
			name:   "title too short",
			mutate: func(in *CreateInput) { in.Title = "ab" },
			field:  "title",
		},
		{
			name:   "title missing",
			mutate: func(in *CreateInput) { in.Title = "" },
			field:  "title",
		},
		{
			name:   "author missing",
			mutate: func(in *CreateInput) { in.Author = "" },
			field:  "author",
		},
		{
			name: "price zero",
			mutate: func(in *CreateInput) {
				zero := 0.0
				in.Price = &zero
			},
			field: "price",
		},
		{
			name: "price negative",
			mutate: func(in *CreateInput) {
				neg := -5.0
				in.Price = &neg
			},
			field: "price",
		},
		{
			name:   "unknown tag",
			mutate: func(in *CreateInput) { in.Tags = []string{"cooking"} },
			field:  "tags",
		},
		{
			name:   "too many tags",
			mutate: func(in *CreateInput) { in.Tags = []string{"science", "history", "biology"} },
			field:  "tags",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			svc := NewService(repo)

			in := validInput()
			tt.mutate(&in)

			_, err := svc.Create(context.Background(), in)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Fields)
			assert.Contains(t, vErr.Fields[0].Field, tt.field)

			// a rejected create never reaches the repository
			assert.Nil(t, repo.created)
		})
	}
}

func TestService_CreateAllowsTwoValidTags(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	in := validInput()
	in.Tags = []string{"science", "history"}

	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
}

func TestService_ListNormalizesBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	_, err := svc.List(context.Background(), ListParams{Skip: -3, Limit: 0})
	require.NoError(t, err)
	require.NotNil(t, repo.listParams)
	assert.Equal(t, 0, repo.listParams.Skip)
	assert.Equal(t, 10, repo.listParams.Limit)
}
