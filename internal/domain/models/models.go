package models

type Book struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

// AuthorMatch is a book projected for lookups by author.
type AuthorMatch struct {
	ISBN    string            `json:"isbn"`
	Title   string            `json:"title"`
	Reviews map[string]string `json:"reviews"`
}

// TitleMatch is a book projected for lookups by title.
type TitleMatch struct {
	ISBN    string            `json:"isbn"`
	Author  string            `json:"author"`
	Reviews map[string]string `json:"reviews"`
}

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Message struct {
	Message string `json:"message"`
}
