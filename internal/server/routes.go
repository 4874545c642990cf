package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) RegisterRoutes() http.Handler {
	e := echo.New()
	e.Use(NewEchoLogger(s.logger))
	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"https://*", "http://*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	e.GET("/health", s.healthHandler)

	var artworkGroup = e.Group("/artworks", s.AuthMiddleware)
	artworkGroup.GET("", s.ListArtworks)
	artworkGroup.POST("", s.CreateArtwork)
	artworkGroup.GET("/:id", s.GetArtwork)
	artworkGroup.PATCH("/:id", s.UpdateArtwork)
	artworkGroup.DELETE("/:id", s.DeleteArtwork)

	var userGroup = e.Group("/users")
	userGroup.POST("/register", s.RegisterUser)
	userGroup.GET("/me", s.GetMe, s.AuthMiddleware)

	return e
}

func (s *Server) healthHandler(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.server.Health())
}
