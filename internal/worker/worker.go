package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"datagen/internal/domain/model"
	"datagen/internal/generator"
	"datagen/internal/hub"
	"datagen/internal/repository"
	"datagen/internal/usecase"
)

// Poolはキューのジョブ（生成チャンク・クリーニング）を処理するワーカー群。
// チャンク同士は独立なので並列でよい。1チャンク内の生成順はGeneratorが保証する。
type Pool struct {
	jobs          <-chan usecase.Job
	store         repository.RawStore
	tracker       repository.JobTracker
	notifications repository.NotificationRepository
	events        *hub.Hub
	// ワーカーごとに専用のGeneratorを作る（共有不可）
	newGen  func() *generator.Generator
	workers int

	wg sync.WaitGroup
}

func NewPool(
	jobs <-chan usecase.Job,
	store repository.RawStore,
	tracker repository.JobTracker,
	notifications repository.NotificationRepository,
	events *hub.Hub,
	newGen func() *generator.Generator,
	workers int,
) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		jobs:          jobs,
		store:         store,
		tracker:       tracker,
		notifications: notifications,
		events:        events,
		newGen:        newGen,
		workers:       workers,
	}
}

func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx)
	}
}

// Waitはキューが閉じられ全ワーカーが抜けるまでブロックする。
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) run(ctx context.Context) {
	defer p.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.handle(ctx, job)
		}
	}
}

func (p *Pool) handle(ctx context.Context, job usecase.Job) {
	var err error
	switch job.Kind {
	case usecase.JobKindGenerate:
		err = p.handleGenerate(ctx, job)
	case usecase.JobKindClean:
		err = p.handleClean(ctx, job)
	default:
		err = fmt.Errorf("unknown job kind: %s", job.Kind)
	}

	if err == nil {
		err = p.finishChunk(ctx, job)
	}
	if err != nil {
		// リトライしない。失敗通知だけ残す。
		p.notify(ctx, job, model.NotificationStatusFailed,
			fmt.Sprintf("Data %s failed for job %s", verb(job.Kind), job.ParentJobID))
	}
}

// 1チャンク分のバンドルを生成してテーブルごとにrawレイヤーへ保存する。
func (p *Pool) handleGenerate(ctx context.Context, job usecase.Job) error {
	g := p.newGen()

	tables := make(map[string][]json.RawMessage, len(repository.DatasetTables))
	for i := 0; i < job.Count; i++ {
		b, err := g.Bundle()
		if err != nil {
			return err
		}
		for table, record := range recordsByTable(b) {
			payload, err := json.Marshal(record)
			if err != nil {
				return err
			}
			tables[table] = append(tables[table], payload)
		}
	}

	for _, table := range repository.DatasetTables {
		rows := tables[table]
		if len(rows) == 0 {
			continue
		}
		err := p.store.SaveRows(ctx, repository.LayerRaw, job.UserID, job.ParentJobID, job.JobID, table, rows)
		if err != nil {
			return err
		}
	}

	return nil
}

// チャンク完了を記録し、親ジョブの全チャンクが揃ったら通知とpushを出す。
// 進捗を記録できなかったら完了判定が成立しないので、呼び出し側で失敗扱いにする。
func (p *Pool) finishChunk(ctx context.Context, job usecase.Job) error {
	if err := p.tracker.MarkCompleted(ctx, job.ParentJobID, job.JobID); err != nil {
		return err
	}

	done, err := p.tracker.CompletedCount(ctx, job.ParentJobID)
	if err != nil {
		return err
	}
	if done < job.TotalChunks {
		return nil
	}

	p.notify(ctx, job, model.NotificationStatusCompleted,
		fmt.Sprintf("Data %s completed for job %s", verb(job.Kind), job.ParentJobID))
	return nil
}

// 通知は同一内容なら1回だけ保存。pushは保存できた時だけ。
func (p *Pool) notify(ctx context.Context, job usecase.Job, status model.NotificationStatus, message string) {
	n := &model.Notification{
		ID:          fmt.Sprintf("%s_%d", job.UserID, time.Now().UnixMilli()),
		UserID:      job.UserID,
		Message:     message,
		Status:      status,
		ParentJobID: job.ParentJobID,
		CreatedAt:   time.Now(),
	}

	created, err := p.notifications.CreateIfAbsent(ctx, n)
	if err != nil || !created {
		return
	}

	p.events.Publish(job.UserID, hub.Event{
		Type:        "jobStatus",
		ParentJobID: job.ParentJobID,
		Status:      string(status),
		Message:     message,
	})
}

func verb(kind usecase.JobKind) string {
	if kind == usecase.JobKindClean {
		return "cleaning"
	}
	return "generation"
}

func recordsByTable(b *generator.Bundle) map[string]any {
	return map[string]any{
		"user":         b.User,
		"address":      b.Address,
		"category":     b.Category,
		"subcategory":  b.Subcategory,
		"product":      b.Product,
		"products_sku": b.Sku,
		"wishlist":     b.Wishlist,
		"payment":      b.Payment,
		"order":        b.Order,
		"order_item":   b.OrderItem,
		"cart":         b.Cart,
	}
}
