package rawstore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"datagen/internal/repository"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("memory://")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func rows(payloads ...string) []json.RawMessage {
	out := make([]json.RawMessage, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, json.RawMessage(p))
	}
	return out
}

func TestStore_SaveAndListRows(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-1", "job-1", "user",
		rows(`{"id":"user_id-1"}`, `{"id":"user_id-2"}`))
	assert.NoError(t, err)

	got, err := s.ListRows(ctx, repository.LayerRaw, "u1", "parent-1", "user", 100)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	// 投入順で返る
	assert.JSONEq(t, `{"id":"user_id-1"}`, string(got[0]))
	assert.JSONEq(t, `{"id":"user_id-2"}`, string(got[1]))
}

func TestStore_ListRows_RespectsLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-1", "job-1", "user",
		rows(`{"n":1}`, `{"n":2}`, `{"n":3}`))
	assert.NoError(t, err)

	got, err := s.ListRows(ctx, repository.LayerRaw, "u1", "parent-1", "user", 2)
	assert.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestStore_LayersAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-1", "job-1", "user", rows(`{"n":1}`))
	_ = s.SaveRows(ctx, repository.LayerCleaned, "u1", "parent-1", "job-1", "user", rows(`{"n":2}`))

	raw, err := s.ListRows(ctx, repository.LayerRaw, "u1", "parent-1", "user", 100)
	assert.NoError(t, err)
	assert.Len(t, raw, 1)

	cleaned, err := s.ListRows(ctx, repository.LayerCleaned, "u1", "parent-1", "user", 100)
	assert.NoError(t, err)
	assert.Len(t, cleaned, 1)
	assert.JSONEq(t, `{"n":2}`, string(cleaned[0]))
}

func TestStore_HasFolder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ok, err := s.HasFolder(ctx, "u1", "parent-1")
	assert.NoError(t, err)
	assert.False(t, ok)

	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-1", "job-1", "user", rows(`{}`))

	ok, err = s.HasFolder(ctx, "u1", "parent-1")
	assert.NoError(t, err)
	assert.True(t, ok)

	// 他ユーザーのフォルダは見えない
	ok, err = s.HasFolder(ctx, "u2", "parent-1")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_ListParentJobs_SortedAndDeduped(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-b", "job-1", "user", rows(`{}`))
	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-a", "job-1", "user", rows(`{}`))
	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-a", "job-2", "cart", rows(`{}`))
	_ = s.SaveRows(ctx, repository.LayerRaw, "u2", "parent-z", "job-1", "user", rows(`{}`))

	got, err := s.ListParentJobs(ctx, "u1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"parent-a", "parent-b"}, got)
}

func TestStore_DeleteFolder_RemovesAllLayers(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-1", "job-1", "user", rows(`{}`))
	_ = s.SaveRows(ctx, repository.LayerCleaned, "u1", "parent-1", "job-1", "user", rows(`{}`))
	_ = s.SaveRows(ctx, repository.LayerRaw, "u1", "parent-2", "job-1", "user", rows(`{}`))

	err := s.DeleteFolder(ctx, "u1", "parent-1")
	assert.NoError(t, err)

	ok, _ := s.HasFolder(ctx, "u1", "parent-1")
	assert.False(t, ok)

	cleaned, err := s.ListRows(ctx, repository.LayerCleaned, "u1", "parent-1", "user", 100)
	assert.NoError(t, err)
	assert.Empty(t, cleaned)

	// 別フォルダには触れない
	ok, _ = s.HasFolder(ctx, "u1", "parent-2")
	assert.True(t, ok)
}

func TestStore_JobTracker_CountsDistinctChunks(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.CompletedCount(ctx, "parent-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	assert.NoError(t, s.MarkCompleted(ctx, "parent-1", "job-1"))
	assert.NoError(t, s.MarkCompleted(ctx, "parent-1", "job-2"))
	// 二重登録は数えない
	assert.NoError(t, s.MarkCompleted(ctx, "parent-1", "job-1"))

	n, err = s.CompletedCount(ctx, "parent-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = s.CompletedCount(ctx, "parent-2")
	assert.NoError(t, err)
	assert.Equal(t, 0, n)
}
