package server

import (
	"net/http"
	"time"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

// NewRemoteClient returns the client used by the remote routes to call back
// into a running bookstore at baseURL.
func NewRemoteClient(baseURL string, timeout time.Duration) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
}

func (s *Server) RemoteGetAllBooks(ginCtx *gin.Context) {
	s.relay(ginCtx, "/", nil)
}

func (s *Server) RemoteGetBookByISBN(ginCtx *gin.Context) {
	s.relay(ginCtx, "/isbn/{isbn}", map[string]string{"isbn": ginCtx.Param("isbn")})
}

func (s *Server) RemoteGetBooksByAuthor(ginCtx *gin.Context) {
	s.relay(ginCtx, "/author/{author}", map[string]string{"author": ginCtx.Param("author")})
}

func (s *Server) RemoteGetBooksByTitle(ginCtx *gin.Context) {
	s.relay(ginCtx, "/title/{title}", map[string]string{"title": ginCtx.Param("title")})
}

// relay forwards a GET to the remote bookstore and copies its status and body back.
func (s *Server) relay(ginCtx *gin.Context, path string, params map[string]string) {
	resp, err := s.remote.R().
		SetContext(ginCtx.Request.Context()).
		SetPathParams(params).
		Get(path)
	if err != nil {
		s.log.Error().Err(err).Str("path", path).Msg("remote call failed")
		ginCtx.JSON(http.StatusInternalServerError, models.Message{Message: msgRemoteFailed})
		return
	}
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = gin.MIMEJSON
	}
	s.log.Debug().Str("path", path).Int("status", resp.StatusCode()).Msg("remote call done")
	ginCtx.Data(resp.StatusCode(), contentType, resp.Body())
}
