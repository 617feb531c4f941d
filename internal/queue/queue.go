package queue

import (
	"errors"
	"sync"

	"datagen/internal/usecase"
)

var ErrFull = errors.New("queue is full")

// プロセス内のジョブキュー。容量固定、満杯なら積まずにエラー。
type Queue struct {
	mu   sync.Mutex
	jobs chan usecase.Job
}

func New(size int) *Queue {
	return &Queue{jobs: make(chan usecase.Job, size)}
}

// Enqueueは全件積めるときだけ積む。一部だけ受け付けて失敗を返すことはない。
// 消費側は取り出すだけなので、ロック中に空きが減ることはない。
func (q *Queue) Enqueue(jobs ...usecase.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(jobs) > cap(q.jobs)-len(q.jobs) {
		return ErrFull
	}
	for _, job := range jobs {
		q.jobs <- job
	}
	return nil
}

// ワーカーが消費する側
func (q *Queue) Jobs() <-chan usecase.Job {
	return q.jobs
}

func (q *Queue) Close() {
	close(q.jobs)
}
