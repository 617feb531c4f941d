package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"datagen/internal/domain/model"
	"datagen/internal/generator"
	"datagen/internal/hub"
	"datagen/internal/infra/rawstore"
	"datagen/internal/repository"
	"datagen/internal/usecase"
)

type WKNotificationRepoMock struct{ mock.Mock }

func (m *WKNotificationRepoMock) CreateIfAbsent(ctx context.Context, n *model.Notification) (bool, error) {
	args := m.Called(ctx, n)
	return args.Bool(0), args.Error(1)
}

func (m *WKNotificationRepoMock) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	panic("not used in worker tests")
}

func (m *WKNotificationRepoMock) Delete(ctx context.Context, userID string, notificationID string) error {
	panic("not used in worker tests")
}

// 進捗の記録に必ず失敗するtracker
type failingTracker struct{}

func (failingTracker) MarkCompleted(ctx context.Context, parentJobID, jobID string) error {
	return assert.AnError
}

func (failingTracker) CompletedCount(ctx context.Context, parentJobID string) (int, error) {
	return 0, assert.AnError
}

func newWorkerFixture(t *testing.T, notifications repository.NotificationRepository) (*Pool, *rawstore.Store, *hub.Hub) {
	t.Helper()

	store, err := rawstore.Open("memory://")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	events := hub.New()
	newGen := func() *generator.Generator { return generator.New(1, 0) }

	pool := NewPool(nil, store, store, notifications, events, newGen, 1)
	return pool, store, events
}

func TestHandleGenerate_WritesEveryTable(t *testing.T) {
	pool, store, _ := newWorkerFixture(t, new(WKNotificationRepoMock))
	ctx := context.Background()

	job := usecase.Job{
		Kind:        usecase.JobKindGenerate,
		UserID:      "u1",
		ParentJobID: "parent-1",
		JobID:       "job-1",
		Count:       2,
		TotalChunks: 1,
	}

	assert.NoError(t, pool.handleGenerate(ctx, job))

	for _, table := range repository.DatasetTables {
		rows, err := store.ListRows(ctx, repository.LayerRaw, "u1", "parent-1", table, 100)
		assert.NoError(t, err)
		assert.Len(t, rows, 2, "table %s", table)
	}
}

func TestHandle_CompletionNotifiesAndPublishes(t *testing.T) {
	notifications := new(WKNotificationRepoMock)
	notifications.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(true, nil)

	pool, store, events := newWorkerFixture(t, notifications)
	ctx := context.Background()

	ch, cancel := events.Subscribe("u1")
	defer cancel()

	job := usecase.Job{
		Kind:        usecase.JobKindGenerate,
		UserID:      "u1",
		ParentJobID: "parent-1",
		JobID:       "job-1",
		Count:       1,
		TotalChunks: 1,
	}
	pool.handle(ctx, job)

	// チャンク完了が記録される
	n, err := store.CompletedCount(ctx, "parent-1")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)

	// 完了通知が保存される
	notifications.AssertCalled(t, "CreateIfAbsent", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == "u1" &&
			n.ParentJobID == "parent-1" &&
			n.Status == model.NotificationStatusCompleted
	}))

	// pushイベントも飛ぶ
	select {
	case ev := <-ch:
		assert.Equal(t, "jobStatus", ev.Type)
		assert.Equal(t, "parent-1", ev.ParentJobID)
		assert.Equal(t, string(model.NotificationStatusCompleted), ev.Status)
	case <-time.After(time.Second):
		t.Fatal("expected a job status event")
	}
}

func TestHandle_TrackerFailureNotifiesAsFailed(t *testing.T) {
	notifications := new(WKNotificationRepoMock)
	notifications.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(true, nil)

	store, err := rawstore.Open("memory://")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	newGen := func() *generator.Generator { return generator.New(1, 0) }
	pool := NewPool(nil, store, failingTracker{}, notifications, hub.New(), newGen, 1)

	job := usecase.Job{
		Kind:        usecase.JobKindGenerate,
		UserID:      "u1",
		ParentJobID: "parent-1",
		JobID:       "job-1",
		Count:       1,
		TotalChunks: 1,
	}
	pool.handle(context.Background(), job)

	// 進捗を記録できない場合、黙って完了扱いにせず失敗通知を残す
	notifications.AssertCalled(t, "CreateIfAbsent", mock.Anything, mock.MatchedBy(func(n *model.Notification) bool {
		return n.UserID == "u1" &&
			n.ParentJobID == "parent-1" &&
			n.Status == model.NotificationStatusFailed
	}))
}

func TestHandle_NoNotificationUntilAllChunksDone(t *testing.T) {
	notifications := new(WKNotificationRepoMock)
	pool, store, _ := newWorkerFixture(t, notifications)
	ctx := context.Background()

	job := usecase.Job{
		Kind:        usecase.JobKindGenerate,
		UserID:      "u1",
		ParentJobID: "parent-1",
		JobID:       "job-1",
		Count:       1,
		TotalChunks: 3,
	}
	pool.handle(ctx, job)

	n, _ := store.CompletedCount(ctx, "parent-1")
	assert.Equal(t, 1, n)
	notifications.AssertNotCalled(t, "CreateIfAbsent", mock.Anything, mock.Anything)
}

func TestHandle_DuplicateNotificationIsNotPublished(t *testing.T) {
	notifications := new(WKNotificationRepoMock)
	notifications.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(false, nil)

	pool, _, events := newWorkerFixture(t, notifications)
	ctx := context.Background()

	ch, cancel := events.Subscribe("u1")
	defer cancel()

	job := usecase.Job{
		Kind:        usecase.JobKindGenerate,
		UserID:      "u1",
		ParentJobID: "parent-1",
		JobID:       "job-1",
		Count:       1,
		TotalChunks: 1,
	}
	pool.handle(ctx, job)

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event: %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPool_ProcessesJobsFromQueue(t *testing.T) {
	notifications := new(WKNotificationRepoMock)
	notifications.On("CreateIfAbsent", mock.Anything, mock.Anything).Return(true, nil)

	store, err := rawstore.Open("memory://")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	jobs := make(chan usecase.Job, 4)
	newGen := func() *generator.Generator { return generator.New(1, 0) }
	pool := NewPool(jobs, store, store, notifications, hub.New(), newGen, 2)

	ctx := context.Background()
	pool.Start(ctx)

	jobs <- usecase.Job{Kind: usecase.JobKindGenerate, UserID: "u1", ParentJobID: "p1", JobID: "j1", Count: 1, TotalChunks: 2}
	jobs <- usecase.Job{Kind: usecase.JobKindGenerate, UserID: "u1", ParentJobID: "p1", JobID: "j2", Count: 1, TotalChunks: 2}
	close(jobs)
	pool.Wait()

	n, err := store.CompletedCount(ctx, "p1")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	rows, err := store.ListRows(ctx, repository.LayerRaw, "u1", "p1", "user", 100)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
}
