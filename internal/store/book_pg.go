package store

// Repository implementation (Postgres)

import (
	"context"
	"errors"
	"strings"

	"bookcatalog/internal/catalog"
	"bookcatalog/internal/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BookPG stores the collection in Postgres. The seq column preserves
// insertion order for listing.
type BookPG struct {
	db *pgxpool.Pool
}

func NewBookPG(db *pgxpool.Pool) *BookPG {
	return &BookPG{db: db}
}

// EnsureSchema creates the books table if it does not exist. Ids are
// generated by the application, not the database, so the uniqueness
// contract is the same across backends.
func (r *BookPG) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
	CREATE TABLE IF NOT EXISTS books (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		author      TEXT NOT NULL,
		price       DOUBLE PRECISION NOT NULL,
		cover       TEXT NOT NULL DEFAULT '',
		tags        TEXT[] NOT NULL DEFAULT '{}',
		description TEXT NOT NULL DEFAULT '',
		seq         BIGSERIAL
	)
	`)
	return err
}

func (r *BookPG) Create(ctx context.Context, b entity.Book) (entity.Book, error) {
	b.ID = uuid.New().String()
	query := `
	INSERT INTO books (id, title, author, price, cover, tags, description)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, b.ID, b.Title, b.Author, b.Price, b.Cover, b.Tags, b.Description)
	if err != nil {
		return entity.Book{}, err
	}
	return b, nil
}

// escapeLike neutralizes ILIKE pattern metacharacters so the search term
// matches as a literal substring, same as the json and memory backends.
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, `%`, `\%`)
	term = strings.ReplaceAll(term, `_`, `\_`)
	return term
}

func (r *BookPG) List(ctx context.Context, p catalog.ListParams) ([]entity.Book, error) {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		return []entity.Book{}, nil
	}
	query := `
	SELECT id, title, author, price, cover, tags, description
	FROM books
	WHERE ($1 = '' OR title ILIKE '%' || $1 || '%'
		OR author ILIKE '%' || $1 || '%'
		OR description ILIKE '%' || $1 || '%')
	ORDER BY seq
	LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, escapeLike(p.Search), p.Limit, p.Skip)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []entity.Book{}
	for rows.Next() {
		var b entity.Book
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Cover, &b.Tags, &b.Description); err != nil {
			return nil, err
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookPG) Get(ctx context.Context, id string) (entity.Book, error) {
	query := `
	SELECT id, title, author, price, cover, tags, description
	FROM books
	WHERE id = $1
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id).
		Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Cover, &b.Tags, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, catalog.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) UpdateAuthor(ctx context.Context, id, author string) (entity.Book, error) {
	query := `
	UPDATE books SET author = $2
	WHERE id = $1
	RETURNING id, title, author, price, cover, tags, description
	`
	var b entity.Book
	err := r.db.QueryRow(ctx, query, id, author).
		Scan(&b.ID, &b.Title, &b.Author, &b.Price, &b.Cover, &b.Tags, &b.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, catalog.ErrNotFound
		}
		return entity.Book{}, err
	}
	return b, nil
}

func (r *BookPG) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	return err
}
