package catalog

import (
	"context"

	"bookcatalog/internal/entity"
)

// Service provides the catalog business logic in front of a Repository.
// Validation happens here, before the repository is touched, so a rejected
// create never reaches persisted state.
type Service struct {
	repo Repository
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input and persists a new record.
func (s *Service) Create(ctx context.Context, in CreateInput) (entity.Book, error) {
	if err := validateInput(in); err != nil {
		return entity.Book{}, err
	}

	price := float64(DefaultPrice)
	if in.Price != nil {
		price = *in.Price
	}

	b := entity.Book{
		Title:       in.Title,
		Author:      in.Author,
		Price:       price,
		Cover:       in.Cover,
		Tags:        in.Tags,
		Description: in.Description,
	}
	return s.repo.Create(ctx, b)
}

// List returns a page of records. Negative skip is treated as 0 and a
// non-positive limit falls back to 10.
func (s *Service) List(ctx context.Context, p ListParams) ([]entity.Book, error) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	return s.repo.List(ctx, p)
}

// Get returns a single record by id.
func (s *Service) Get(ctx context.Context, id string) (entity.Book, error) {
	return s.repo.Get(ctx, id)
}

// UpdateAuthor replaces the author of the matching record. The narrow
// field scope is deliberate; other fields are immutable after create.
func (s *Service) UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error) {
	return s.repo.UpdateAuthor(ctx, id, author)
}

// Delete removes a record. Deleting an absent id succeeds.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
