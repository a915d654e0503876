package service

import (
	"fmt"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
)

type CatalogStore interface {
	GetAllBooks() []models.Book
	GetBook(isbn string) (models.Book, bool)
}

// Query answers read-only lookups over the catalog. Matching is exact and
// case-sensitive; every lookup is a linear scan.
type Query struct {
	store CatalogStore
}

func NewQuery(store CatalogStore) *Query {
	return &Query{store: store}
}

func (q *Query) ListAll() []models.Book {
	return q.store.GetAllBooks()
}

func (q *Query) GetByISBN(isbn string) (models.Book, error) {
	book, ok := q.store.GetBook(isbn)
	if !ok {
		return models.Book{}, fmt.Errorf("book %q: %w", isbn, ErrNotFound)
	}
	return book, nil
}

func (q *Query) GetByAuthor(author string) ([]models.AuthorMatch, error) {
	matches := []models.AuthorMatch{}
	for _, book := range q.store.GetAllBooks() {
		if book.Author == author {
			matches = append(matches, models.AuthorMatch{
				ISBN:    book.ISBN,
				Title:   book.Title,
				Reviews: book.Reviews,
			})
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("author %q: %w", author, ErrNotFound)
	}
	return matches, nil
}

func (q *Query) GetByTitle(title string) ([]models.TitleMatch, error) {
	matches := []models.TitleMatch{}
	for _, book := range q.store.GetAllBooks() {
		if book.Title == title {
			matches = append(matches, models.TitleMatch{
				ISBN:    book.ISBN,
				Author:  book.Author,
				Reviews: book.Reviews,
			})
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("title %q: %w", title, ErrNotFound)
	}
	return matches, nil
}

// GetReviews returns the reviews of a book. An empty map is a valid result.
func (q *Query) GetReviews(isbn string) (map[string]string, error) {
	book, ok := q.store.GetBook(isbn)
	if !ok {
		return nil, fmt.Errorf("reviews of %q: %w", isbn, ErrNotFound)
	}
	if book.Reviews == nil {
		return map[string]string{}, nil
	}
	return book.Reviews, nil
}
