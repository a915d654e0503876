package service

import (
	"testing"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
	"github.com/Dorrrke/g1-bookstore/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQuery(t *testing.T) *Query {
	t.Helper()
	catalog, err := repository.NewCatalog([]models.Book{
		{ISBN: "123", Title: "Alpha", Author: "A1", Reviews: map[string]string{}},
		{ISBN: "456", Title: "Beta", Author: "A1", Reviews: map[string]string{"u1": "good"}},
		{ISBN: "789", Title: "Alpha", Author: "A2"},
	})
	require.NoError(t, err)
	return NewQuery(catalog)
}

func TestListAll(t *testing.T) {
	q := newTestQuery(t)
	books := q.ListAll()
	require.Len(t, books, 3)
	assert.Equal(t, []string{"123", "456", "789"}, []string{books[0].ISBN, books[1].ISBN, books[2].ISBN})
}

func TestGetByISBN(t *testing.T) {
	q := newTestQuery(t)

	book, err := q.GetByISBN("456")
	require.NoError(t, err)
	assert.Equal(t, models.Book{ISBN: "456", Title: "Beta", Author: "A1", Reviews: map[string]string{"u1": "good"}}, book)

	_, err = q.GetByISBN("000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByAuthor(t *testing.T) {
	q := newTestQuery(t)
	tests := []struct {
		name   string
		author string
		want   []models.AuthorMatch
		err    error
	}{
		{
			name:   "two books",
			author: "A1",
			want: []models.AuthorMatch{
				{ISBN: "123", Title: "Alpha", Reviews: map[string]string{}},
				{ISBN: "456", Title: "Beta", Reviews: map[string]string{"u1": "good"}},
			},
		},
		{name: "case sensitive", author: "a1", err: ErrNotFound},
		{name: "no partial match", author: "A", err: ErrNotFound},
		{name: "empty", author: "", err: ErrNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := q.GetByAuthor(tc.author)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetByTitle(t *testing.T) {
	q := newTestQuery(t)

	got, err := q.GetByTitle("Alpha")
	require.NoError(t, err)
	assert.Equal(t, []models.TitleMatch{
		{ISBN: "123", Author: "A1", Reviews: map[string]string{}},
		{ISBN: "789", Author: "A2", Reviews: map[string]string{}},
	}, got)

	_, err = q.GetByTitle("alpha")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetReviews(t *testing.T) {
	q := newTestQuery(t)

	reviews, err := q.GetReviews("456")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"u1": "good"}, reviews)

	reviews, err = q.GetReviews("123")
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)

	_, err = q.GetReviews("000")
	assert.ErrorIs(t, err, ErrNotFound)
}
