package server

import (
	"github.com/labstack/echo/v4"

	"datagen/internal/config"
	"datagen/internal/middleware"
	"datagen/internal/repository"
)

func registerRoutes(e *echo.Echo, cfg config.Config, h Handlers, users repository.AppUserRepository) {
	// 認証前でも叩けるルート
	h.Auth.RegisterRoutes(e)

	// bearer必須。tvはDBと突き合わせる。
	api := e.Group("",
		middleware.AuthJWT(cfg),
		middleware.TokenVersionGuard(users),
	)

	h.Dataset.RegisterRoutes(api)
	h.Job.RegisterRoutes(api)
	h.Notification.RegisterRoutes(api)
	h.Events.RegisterRoutes(api)
}
