package server

import (
	"net/http"
	"time"

	"github.com/Dorrrke/g1-bookstore/internal/domain/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// NewRouter wires the facade into a gin engine with zerolog request logging.
func NewRouter(srv *Server, zlog *zerolog.Logger, debug bool) *gin.Engine {
	if !debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	// match on the escaped path so %2F stays inside a single parameter
	router.UseRawPath = true
	router.UnescapePathValues = true
	router.Use(requestLogger(zlog), gin.CustomRecovery(func(ginCtx *gin.Context, rec any) {
		zlog.Error().Interface("panic", rec).Str("path", ginCtx.Request.URL.Path).Msg("handler panicked")
		ginCtx.AbortWithStatusJSON(http.StatusInternalServerError, models.Message{Message: msgInternal})
	}))
	router.NoRoute(func(ginCtx *gin.Context) {
		ginCtx.JSON(http.StatusNotFound, models.Message{Message: msgRouteNotFound})
	})
	srv.Routes(router)
	return router
}

func (s *Server) Routes(router gin.IRouter) {
	router.GET("/", s.GetAllBooks)
	router.GET("/isbn/:isbn", s.GetBookByISBN)
	router.GET("/author/:author", s.GetBooksByAuthor)
	router.GET("/title/:title", s.GetBooksByTitle)
	router.GET("/review/:isbn", s.GetReviews)
	router.POST("/register", s.RegisterHandler)
	router.POST("/login", s.LoginHandler)

	if s.remote == nil {
		return
	}
	asyncAwait := router.Group("/async-await")
	asyncAwait.GET("/", s.RemoteGetAllBooks)
	asyncAwait.GET("/isbn/:isbn", s.RemoteGetBookByISBN)
	asyncAwait.GET("/author/:author", s.RemoteGetBooksByAuthor)
	asyncAwait.GET("/title/:title", s.RemoteGetBooksByTitle)

	async := router.Group("/async")
	async.GET("/isbn/:isbn", s.RemoteGetBookByISBN)
	async.GET("/author/:author", s.RemoteGetBooksByAuthor)
	async.GET("/title/:title", s.RemoteGetBooksByTitle)
}

func requestLogger(zlog *zerolog.Logger) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		start := time.Now()
		ginCtx.Next()
		zlog.Info().
			Str("method", ginCtx.Request.Method).
			Str("path", ginCtx.Request.URL.Path).
			Int("status", ginCtx.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
