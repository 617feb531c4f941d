package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"datagen/internal/usecase"
)

// 非同期生成ジョブとrawデータ閲覧・クリーニング。
type JobHandler struct {
	uc *usecase.JobUsecase
}

func NewJobHandler(uc *usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

func (h *JobHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/generate_raw", h.generateRaw)
	g.GET("/get_raw_data/:parentJobId/:table", h.getRawData)
	g.GET("/list_parent_jobs", h.listParentJobs)
	g.DELETE("/delete_folder/:parentJobId", h.deleteFolder)
	g.POST("/clean_data", h.cleanData)
}

func (h *JobHandler) generateRaw(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.GenerateRawRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.GenerateRaw(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	//受付のみ。処理はワーカー側。
	return c.JSON(http.StatusAccepted, out)
}

func (h *JobHandler) getRawData(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.GetRawData(c.Request().Context(), userID, c.Param("parentJobId"), c.Param("table"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *JobHandler) listParentJobs(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.ListParentJobs(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *JobHandler) deleteFolder(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.DeleteFolder(c.Request().Context(), userID, c.Param("parentJobId"))
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, out)
}

func (h *JobHandler) cleanData(c echo.Context) error {
	userID, ok := userIDFrom(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req usecase.CleanDataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	out, err := h.uc.CleanData(c.Request().Context(), userID, req)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusAccepted, out)
}
