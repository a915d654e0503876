package server

import (
	"errors"
	"net/http"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"
	"github.com/Dorrrke/g1-bookstore/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=server.go -destination=../../moks/mock_server.go

const (
	msgBookNotFound     = "Book not found"
	msgAuthorNotFound   = "No books found by this author"
	msgTitleNotFound    = "No books found with this title"
	msgMissingFields    = "Username and password are required"
	msgUserExists       = "User already exists"
	msgInvalidLogin     = "Invalid Login. Check username and password"
	msgRegistered       = "User successfully registered. Now you can login"
	msgLoggedIn         = "User successfully logged in"
	msgInternal         = "Internal server error"
	msgRemoteFailed     = "Error fetching books"
	msgRouteNotFound    = "Not found"
	msgMalformedRequest = "Invalid request body"
)

type Catalog interface {
	ListAll() []models.Book
	GetByISBN(isbn string) (models.Book, error)
	GetByAuthor(author string) ([]models.AuthorMatch, error)
	GetByTitle(title string) ([]models.TitleMatch, error)
	GetReviews(isbn string) (map[string]string, error)
}

type Registrar interface {
	Register(username, password string) error
	Login(username, password string) error
}

type Server struct {
	Catalog Catalog
	Users   Registrar
	remote  *resty.Client
	log     *zerolog.Logger
}

// New builds the HTTP facade. remote may be nil, in which case the
// /async and /async-await routes are not registered.
func New(catalog Catalog, users Registrar, remote *resty.Client, zlog *zerolog.Logger) *Server {
	if zlog == nil {
		nop := zerolog.Nop()
		zlog = &nop
	}
	return &Server{
		Catalog: catalog,
		Users:   users,
		remote:  remote,
		log:     zlog,
	}
}

func (s *Server) GetAllBooks(ginCtx *gin.Context) {
	ginCtx.JSON(http.StatusOK, s.Catalog.ListAll())
}

func (s *Server) GetBookByISBN(ginCtx *gin.Context) {
	book, err := s.Catalog.GetByISBN(ginCtx.Param("isbn"))
	if err != nil {
		s.writeError(ginCtx, err, msgBookNotFound)
		return
	}
	ginCtx.JSON(http.StatusOK, book)
}

func (s *Server) GetBooksByAuthor(ginCtx *gin.Context) {
	books, err := s.Catalog.GetByAuthor(ginCtx.Param("author"))
	if err != nil {
		s.writeError(ginCtx, err, msgAuthorNotFound)
		return
	}
	ginCtx.JSON(http.StatusOK, books)
}

func (s *Server) GetBooksByTitle(ginCtx *gin.Context) {
	books, err := s.Catalog.GetByTitle(ginCtx.Param("title"))
	if err != nil {
		s.writeError(ginCtx, err, msgTitleNotFound)
		return
	}
	ginCtx.JSON(http.StatusOK, books)
}

func (s *Server) GetReviews(ginCtx *gin.Context) {
	reviews, err := s.Catalog.GetReviews(ginCtx.Param("isbn"))
	if err != nil {
		s.writeError(ginCtx, err, msgBookNotFound)
		return
	}
	ginCtx.JSON(http.StatusOK, reviews)
}

func (s *Server) RegisterHandler(ginCtx *gin.Context) {
	var user models.User
	if err := ginCtx.ShouldBindBodyWithJSON(&user); err != nil {
		s.log.Warn().Err(err).Msg("failed parse register data from body")
		ginCtx.JSON(http.StatusBadRequest, models.Message{Message: msgMalformedRequest})
		return
	}
	if err := s.Users.Register(user.Username, user.Password); err != nil {
		s.writeError(ginCtx, err, "")
		return
	}
	s.log.Info().Str("username", user.Username).Msg("user registered")
	ginCtx.JSON(http.StatusCreated, models.Message{Message: msgRegistered})
}

func (s *Server) LoginHandler(ginCtx *gin.Context) {
	var user models.User
	if err := ginCtx.ShouldBindBodyWithJSON(&user); err != nil {
		s.log.Warn().Err(err).Msg("failed parse login data from body")
		ginCtx.JSON(http.StatusBadRequest, models.Message{Message: msgMalformedRequest})
		return
	}
	if err := s.Users.Login(user.Username, user.Password); err != nil {
		s.writeError(ginCtx, err, "")
		return
	}
	ginCtx.JSON(http.StatusOK, models.Message{Message: msgLoggedIn})
}

// writeError maps an error kind onto its HTTP status and message.
// notFound is the message used for lookup misses on this route; routes that
// cannot miss pass "" and a miss is treated as unexpected.
func (s *Server) writeError(ginCtx *gin.Context, err error, notFound string) {
	var (
		code int
		msg  string
	)
	switch {
	case errors.Is(err, service.ErrNotFound) && notFound != "":
		code, msg = http.StatusNotFound, notFound
	case errors.Is(err, service.ErrInvalidInput):
		code, msg = http.StatusBadRequest, msgMissingFields
	case errors.Is(err, service.ErrConflict):
		code, msg = http.StatusConflict, msgUserExists
	case errors.Is(err, service.ErrInvalidCredentials):
		code, msg = http.StatusUnauthorized, msgInvalidLogin
	default:
		s.log.Error().Err(err).Str("path", ginCtx.FullPath()).Msg("request failed")
		ginCtx.JSON(http.StatusInternalServerError, models.Message{Message: msgInternal})
		return
	}
	s.log.Warn().Err(err).Int("status", code).Str("path", ginCtx.FullPath()).Msg("request rejected")
	ginCtx.JSON(code, models.Message{Message: msg})
}
