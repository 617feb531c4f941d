package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/tidwall/gjson"

	"datagen/internal/domain/model"
	"datagen/internal/generator"
	"datagen/internal/middleware"
	"datagen/internal/usecase"
)

type HDDatasetRepoMock struct{ mock.Mock }

func (m *HDDatasetRepoMock) SaveBundles(ctx context.Context, bundles []*generator.Bundle) error {
	args := m.Called(ctx, bundles)
	return args.Error(0)
}

func (m *HDDatasetRepoMock) ListRecent(ctx context.Context, table string, limit int) (any, error) {
	args := m.Called(ctx, table, limit)
	return args.Get(0), args.Error(1)
}

func newDatasetHandlerFixture(datasets *HDDatasetRepoMock, users *HDUserRepoMock) *DatasetHandler {
	newGen := func() *generator.Generator { return generator.New(1, 0) }
	return NewDatasetHandler(usecase.NewDatasetUsecase(datasets, users, newGen))
}

func authedJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxUserIDKey, "uuid_alice")
	c.Set(middleware.CtxTokenVersionKey, 0)
	return c, rec
}

func TestDatasetHandler_WriteToDB(t *testing.T) {
	datasets := new(HDDatasetRepoMock)
	users := new(HDUserRepoMock)

	users.On("FindByUserID", mock.Anything, "uuid_alice").
		Return(&model.AppUser{UserID: "uuid_alice", Username: "alice"}, nil)
	datasets.On("SaveBundles", mock.Anything, mock.Anything).Return(nil)

	h := newDatasetHandlerFixture(datasets, users)

	c, rec := authedJSONContext(http.MethodPost, "/write_to_db", `{"dataCount":2}`)
	assert.NoError(t, h.writeToDB(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "your user name is : alice", gjson.Get(body, "message").Str)
	assert.Equal(t, int64(2), gjson.Get(body, "all_user_ids.#").Int())
	assert.Equal(t, int64(2), gjson.Get(body, "all_messages.#").Int())
	assert.True(t, gjson.Get(body, "generation_time").Exists())
	assert.True(t, gjson.Get(body, "commit_time").Exists())
}

func TestDatasetHandler_WriteToDB_NoUserInContext(t *testing.T) {
	h := newDatasetHandlerFixture(new(HDDatasetRepoMock), new(HDUserRepoMock))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/write_to_db", strings.NewReader(`{"dataCount":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.writeToDB(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDatasetHandler_GetTable_RowsUnderTableKey(t *testing.T) {
	datasets := new(HDDatasetRepoMock)
	rows := []generator.Category{{ID: "category_id-x", Name: "Books"}}
	datasets.On("ListRecent", mock.Anything, "category", 20).Return(rows, nil)

	h := newDatasetHandlerFixture(datasets, new(HDUserRepoMock))

	c, rec := authedJSONContext(http.MethodGet, "/get_category", "")
	assert.NoError(t, h.getTable("category")(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, gjson.Get(body, "success").Bool())
	assert.Equal(t, "Books", gjson.Get(body, "category.0.name").Str)
}

func TestDatasetHandler_GetTable_StorageFailure(t *testing.T) {
	datasets := new(HDDatasetRepoMock)
	datasets.On("ListRecent", mock.Anything, "category", 20).Return(nil, assert.AnError)

	h := newDatasetHandlerFixture(datasets, new(HDUserRepoMock))

	c, rec := authedJSONContext(http.MethodGet, "/get_category", "")
	assert.NoError(t, h.getTable("category")(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "db error", gjson.Get(rec.Body.String(), "error").Str)
}
