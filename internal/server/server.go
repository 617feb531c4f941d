package server

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"datagen/internal/config"
	"datagen/internal/handler"
	"datagen/internal/repository"
)

// Handlers はルーティングに必要なハンドラ一式。
type Handlers struct {
	Auth         *handler.AuthHandler
	Dataset      *handler.DatasetHandler
	Job          *handler.JobHandler
	Notification *handler.NotificationHandler
	Events       *handler.EventsHandler
}

func New(cfg config.Config, h Handlers, users repository.AppUserRepository) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	registerRoutes(e, cfg, h, users)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}
