package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("book not found")

// DefaultPrice is applied when a create input omits the price.
const DefaultPrice = 100

// MaxTags is the most tags a single record may carry.
const MaxTags = 2

// ValidTags is the fixed tag enumeration.
var ValidTags = map[string]bool{
	"science": true,
	"history": true,
	"biology": true,
}

// CreateInput carries all book fields except the id, which the store
// assigns. A nil Price means "use DefaultPrice".
type CreateInput struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Author      string   `json:"author" validate:"required"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	Cover       string   `json:"cover"`
	Tags        []string `json:"tags" validate:"max=2,dive,booktag"`
	Description string   `json:"description"`
}

// ListParams defines pagination and search for listing books. Filtering by
// Search happens before pagination is applied.
type ListParams struct {
	Skip   int
	Limit  int
	Search string
}

// FieldError describes a single invalid field of a create input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError rejects a create input. It is never retried; the record
// store is untouched when it is returned.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "invalid book: " + strings.Join(msgs, "; ")
}
