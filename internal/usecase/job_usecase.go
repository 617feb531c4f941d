package usecase

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"datagen/internal/repository"
)

// 非同期ジョブ1件（1チャンク分）。ワーカーがKindで処理を分ける。
type JobKind string

const (
	JobKindGenerate JobKind = "generate"
	JobKindClean    JobKind = "clean"
)

// チャンクの行数
const chunkSize = 1000

// 小規模ルートの上限。これ以下は即時処理向けキュー扱い。
const smallRouteLimit = 10000

type Job struct {
	Kind        JobKind
	UserID      string
	ParentJobID string
	JobID       string
	Count       int
	TotalChunks int
	Route       string
}

// ワーカープールへの入口。全件積めないときは1件も積まずにエラー。
type JobQueue interface {
	Enqueue(jobs ...Job) error
}

type GenerateRawRequest struct {
	DataCount int `json:"dataCount"`
}

type GenerateRawResponse struct {
	ParentJobID string   `json:"parentJobId"`
	JobIDs      []string `json:"jobIds"`
	Status      string   `json:"status"`
	TotalCount  int      `json:"total_count"`
	BatchSize   int      `json:"batch_size"`
	TotalChunks int      `json:"total_chunks"`
}

type CleanDataRequest struct {
	DataCount   int    `json:"dataCount"`
	ParentJobID string `json:"parentJobId"`
}

type CleanDataResponse struct {
	Success     bool   `json:"success"`
	ParentJobID string `json:"parentJobId"`
	JobID       string `json:"jobId"`
	Route       string `json:"route"`
	Status      string `json:"status"`
	TotalCount  int    `json:"total_count"`
}

type ListParentJobsResponse struct {
	Success      bool     `json:"success"`
	ParentJobIDs []string `json:"parentJobIds"`
}

type JobUsecase struct {
	store repository.RawStore
	queue JobQueue
}

func NewJobUsecase(store repository.RawStore, queue JobQueue) *JobUsecase {
	return &JobUsecase{
		store: store,
		queue: queue,
	}
}

// 非同期生成。1000行ごとにチャンク化してキューに積み、202相当の受付情報を返す。
func (u *JobUsecase) GenerateRaw(ctx context.Context, userID string, req GenerateRawRequest) (*GenerateRawResponse, error) {
	count := ClampDataCount(req.DataCount)

	parentJobID := uuid.NewString()
	totalChunks := (count + chunkSize - 1) / chunkSize

	jobIDs := make([]string, 0, totalChunks)
	jobs := make([]Job, 0, totalChunks)
	remaining := count
	for i := 0; i < totalChunks; i++ {
		n := chunkSize
		if remaining < chunkSize {
			n = remaining
		}
		remaining -= n

		jobID := uuid.NewString()
		jobIDs = append(jobIDs, jobID)

		jobs = append(jobs, Job{
			Kind:        JobKindGenerate,
			UserID:      userID,
			ParentJobID: parentJobID,
			JobID:       jobID,
			Count:       n,
			TotalChunks: totalChunks,
		})
	}

	// 途中まで積んで503を返すと、失敗と伝えたのに一部のチャンクが走ってしまう。
	// 全チャンクまとめて積む。
	if err := u.queue.Enqueue(jobs...); err != nil {
		return nil, NewHTTPError(http.StatusServiceUnavailable, "job queue is full")
	}

	return &GenerateRawResponse{
		ParentJobID: parentJobID,
		JobIDs:      jobIDs,
		Status:      "queued",
		TotalCount:  count,
		BatchSize:   chunkSize,
		TotalChunks: totalChunks,
	}, nil
}

// フォルダ内1テーブルの中身を最大100件返す。生成完了前は404。
func (u *JobUsecase) GetRawData(ctx context.Context, userID, parentJobID, table string) (map[string]any, error) {
	if !lo.Contains(repository.DatasetTables, table) {
		return nil, NewHTTPError(http.StatusNotFound, "unknown table: "+table)
	}

	ok, err := u.store.HasFolder(ctx, userID, parentJobID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "data not ready")
	}

	rows, err := u.store.ListRows(ctx, repository.LayerRaw, userID, parentJobID, table, 100)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}

	return map[string]any{
		"success":     true,
		"parentJobId": parentJobID,
		"table":       table,
		"count":       len(rows),
		"data":        rows,
	}, nil
}

func (u *JobUsecase) ListParentJobs(ctx context.Context, userID string) (*ListParentJobsResponse, error) {
	ids, err := u.store.ListParentJobs(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}
	if ids == nil {
		ids = []string{}
	}

	return &ListParentJobsResponse{
		Success:      true,
		ParentJobIDs: ids,
	}, nil
}

func (u *JobUsecase) DeleteFolder(ctx context.Context, userID, parentJobID string) (map[string]any, error) {
	ok, err := u.store.HasFolder(ctx, userID, parentJobID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "folder not found")
	}

	if err := u.store.DeleteFolder(ctx, userID, parentJobID); err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}

	return map[string]any{
		"success":     true,
		"parentJobId": parentJobID,
		"message":     "folder deleted",
	}, nil
}

// クリーニングのルーティング。件数で小規模/大規模を振り分けてキューへ。
func (u *JobUsecase) CleanData(ctx context.Context, userID string, req CleanDataRequest) (*CleanDataResponse, error) {
	if req.ParentJobID == "" {
		return nil, NewHTTPError(http.StatusBadRequest, "parentJobId is required")
	}

	ok, err := u.store.HasFolder(ctx, userID, req.ParentJobID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "raw store error")
	}
	if !ok {
		return nil, NewHTTPError(http.StatusNotFound, "folder not found")
	}

	count := ClampDataCount(req.DataCount)
	route := "small"
	if count > smallRouteLimit {
		route = "large"
	}

	jobID := uuid.NewString()
	err = u.queue.Enqueue(Job{
		Kind:        JobKindClean,
		UserID:      userID,
		ParentJobID: req.ParentJobID,
		JobID:       jobID,
		Count:       count,
		TotalChunks: 1,
		Route:       route,
	})
	if err != nil {
		return nil, NewHTTPError(http.StatusServiceUnavailable, "job queue is full")
	}

	return &CleanDataResponse{
		Success:     true,
		ParentJobID: req.ParentJobID,
		JobID:       jobID,
		Route:       route,
		Status:      "queued",
		TotalCount:  count,
	}, nil
}
