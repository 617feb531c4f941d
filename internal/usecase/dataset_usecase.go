package usecase

import (
	"context"
	"net/http"
	"time"

	"github.com/samber/lo"

	"datagen/internal/generator"
	"datagen/internal/repository"
)

// 1リクエストで生成できる件数の範囲。範囲外はエラーにせず丸める。
const (
	minDataCount = 1
	maxDataCount = 999999
)

type WriteToDBRequest struct {
	DataCount int `json:"dataCount"`
}

type WriteToDBResponse struct {
	Success        bool     `json:"success"`
	Message        string   `json:"message"`
	UserID         string   `json:"user_id"`
	AllMessages    []string `json:"all_messages"`
	AllUserIDs     []string `json:"all_user_ids"`
	GenerationTime float64  `json:"generation_time"`
	CommitTime     float64  `json:"commit_time"`
}

type DatasetUsecase struct {
	datasets repository.DatasetRepository
	users    repository.AppUserRepository
	// テストで固定シードを差し込めるようにfactoryを注入
	newGen func() *generator.Generator
}

func NewDatasetUsecase(
	datasets repository.DatasetRepository,
	users repository.AppUserRepository,
	newGen func() *generator.Generator,
) *DatasetUsecase {
	return &DatasetUsecase{
		datasets: datasets,
		users:    users,
		newGen:   newGen,
	}
}

func ClampDataCount(n int) int {
	if n < minDataCount {
		return minDataCount
	}
	if n > maxDataCount {
		return maxDataCount
	}
	return n
}

// 同期パス。N件のバンドルを生成して11テーブルへ1トランザクションで書く。
func (u *DatasetUsecase) WriteToDB(ctx context.Context, userID string, req WriteToDBRequest) (*WriteToDBResponse, error) {
	appUser, err := u.users.FindByUserID(ctx, userID)
	if err != nil || appUser == nil {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	count := ClampDataCount(req.DataCount)
	g := u.newGen()

	genStart := time.Now()
	bundles := make([]*generator.Bundle, 0, count)
	for i := 0; i < count; i++ {
		b, err := g.Bundle()
		if err != nil {
			return nil, NewHTTPError(http.StatusInternalServerError, "data generation failed")
		}
		bundles = append(bundles, b)
	}
	generationTime := time.Since(genStart).Seconds()

	commitStart := time.Now()
	if err := u.datasets.SaveBundles(ctx, bundles); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	commitTime := time.Since(commitStart).Seconds()

	return &WriteToDBResponse{
		Success: true,
		Message: "your user name is : " + appUser.Username,
		UserID:  appUser.UserID,
		AllMessages: lo.Map(bundles, func(b *generator.Bundle, _ int) string {
			return "your user name is : " + b.User.Username
		}),
		AllUserIDs: lo.Map(bundles, func(b *generator.Bundle, _ int) string {
			return b.User.ID
		}),
		GenerationTime: generationTime,
		CommitTime:     commitTime,
	}, nil
}

// get_<table> 用。論理名を検証して新しい20件を返す。
func (u *DatasetUsecase) GetTable(ctx context.Context, table string) (map[string]any, error) {
	if !lo.Contains(repository.DatasetTables, table) {
		return nil, NewHTTPError(http.StatusNotFound, "unknown table: "+table)
	}

	rows, err := u.datasets.ListRecent(ctx, table, 20)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return map[string]any{
		"success": true,
		table:     rows,
	}, nil
}
