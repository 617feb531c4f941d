package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"datagen/internal/hub"
)

// ジョブ状況のlive push。negotiateで接続先を教え、/api/eventsでSSE配信する。
type EventsHandler struct {
	events *hub.Hub
}

func NewEventsHandler(events *hub.Hub) *EventsHandler {
	return &EventsHandler{events: events}
}

func (h *EventsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/api/negotiate", h.negotiate)
	g.GET("/api/events", h.stream)
}

// クライアントは受け取ったaccessTokenでそのまま/api/eventsへ繋ぐ。
// クエリのuserIdは互換のため受けるが、認証はbearer側で決まる。
func (h *EventsHandler) negotiate(c echo.Context) error {
	if _, ok := userIDFrom(c); !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	authz := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authz, " ", 2)
	token := ""
	if len(parts) == 2 {
		token = strings.TrimSpace(parts[1])
	}

	return c.JSON(http.StatusOK, map[string]any{
		"url":         "/api/events",
		"accessToken": token,
	})
}

func (h *EventsHandler) stream(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	ch, cancel := h.events.Subscribe(userID)
	defer cancel()

	// プロキシに切られないようkeepaliveコメントを打つ
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	ctx := c.Request().Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-ch:
			payload, err := json.Marshal(ev)
			if err != nil {
				continue
			}
			fmt.Fprintf(res, "data: %s\n\n", payload)
			res.Flush()
		case <-ticker.C:
			fmt.Fprint(res, ": ping\n\n")
			res.Flush()
		}
	}
}
