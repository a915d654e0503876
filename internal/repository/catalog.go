package repository

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
)

//go:embed books.json
var seedBooks []byte

var (
	ErrEmptyISBN     = errors.New("book has empty isbn")
	ErrDuplicateISBN = errors.New("duplicate isbn")
)

// Catalog holds the books keyed by ISBN. It is built once and never mutated,
// so concurrent readers need no locking.
type Catalog struct {
	books []models.Book
	index map[string]int
}

// NewCatalog builds a catalog that keeps the order of books.
func NewCatalog(books []models.Book) (*Catalog, error) {
	c := &Catalog{
		books: make([]models.Book, 0, len(books)),
		index: make(map[string]int, len(books)),
	}
	for _, book := range books {
		if book.ISBN == "" {
			return nil, fmt.Errorf("%w (title %q)", ErrEmptyISBN, book.Title)
		}
		if _, ok := c.index[book.ISBN]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateISBN, book.ISBN)
		}
		if book.Reviews == nil {
			book.Reviews = map[string]string{}
		}
		c.index[book.ISBN] = len(c.books)
		c.books = append(c.books, book)
	}
	return c, nil
}

// LoadCatalog reads a JSON array of books from path, or the embedded seed when path is empty.
func LoadCatalog(path string) (*Catalog, error) {
	data := seedBooks
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
	}
	var books []models.Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return NewCatalog(books)
}

func (c *Catalog) GetAllBooks() []models.Book {
	books := make([]models.Book, len(c.books))
	copy(books, c.books)
	return books
}

func (c *Catalog) GetBook(isbn string) (models.Book, bool) {
	i, ok := c.index[isbn]
	if !ok {
		return models.Book{}, false
	}
	return c.books[i], true
}

func (c *Catalog) Len() int { return len(c.books) }
