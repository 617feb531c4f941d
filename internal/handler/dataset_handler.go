package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"datagen/internal/repository"
	"datagen/internal/usecase"
)

// 同期生成（/write_to_db）とテーブル閲覧（/get_<table>）。
type DatasetHandler struct {
	uc *usecase.DatasetUsecase
}

func NewDatasetHandler(uc *usecase.DatasetUsecase) *DatasetHandler {
	return &DatasetHandler{uc: uc}
}

// echoはセグメント途中のパラメータを取れないので
// /get_user のような固定パスをテーブルごとに登録する。
func (h *DatasetHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/write_to_db", h.writeToDB)
	for _, table := range repository.DatasetTables {
		g.GET("/get_"+table, h.getTable(table))
	}
}

func (h *DatasetHandler) writeToDB(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.WriteToDBRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.WriteToDB(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *DatasetHandler) getTable(table string) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := h.uc.GetTable(c.Request().Context(), table)
		if err != nil {
			return writeError(c, err)
		}

		return c.JSON(http.StatusOK, out)
	}
}
