package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classumlab/classroom-backend/internal/model"
	"github.com/classumlab/classroom-backend/internal/repository"
)

type stubClassService struct {
	record  *model.ClassRecord
	records []model.ClassRecord
	err     error
	calls   int
}

func (s *stubClassService) List(context.Context) ([]model.ClassRecord, error) {
	s.calls++
	return s.records, s.err
}

func (s *stubClassService) GetByID(context.Context, int) (*model.ClassRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubClassService) Create(context.Context, model.ClassInput) (*model.ClassRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubClassService) Update(context.Context, int, model.ClassInput) (*model.ClassRecord, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubClassService) Delete(context.Context, int) error {
	s.calls++
	return s.err
}

func classTestRouter(svc ClassService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewClassHandler(svc)
	r := gin.New()
	r.GET("/api/classes", h.ListClasses)
	r.GET("/api/classes/:id", h.GetClass)
	r.POST("/api/classes", h.CreateClass)
	r.PUT("/api/classes/:id", h.UpdateClass)
	r.DELETE("/api/classes/:id", h.DeleteClass)
	return r
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func perform(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestGetClassReturnsRecord(t *testing.T) {
	svc := &stubClassService{record: &model.ClassRecord{ID: 5, Name: "디자인 기초반"}}
	w, env := perform(t, classTestRouter(svc), http.MethodGet, "/api/classes/5", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)

	var rec model.ClassRecord
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, "디자인 기초반", rec.Name)
}

func TestGetClassRejectsNonNumericID(t *testing.T) {
	svc := &stubClassService{}
	w, env := perform(t, classTestRouter(svc), http.MethodGet, "/api/classes/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "invalid class id", env.Message)
	assert.Zero(t, svc.calls)
}

func TestGetClassNotFound(t *testing.T) {
	svc := &stubClassService{err: repository.ErrNotFound}
	w, env := perform(t, classTestRouter(svc), http.MethodGet, "/api/classes/404", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "class not found", env.Message)
}

func TestCreateClassRequiresName(t *testing.T) {
	svc := &stubClassService{}
	w, env := perform(t, classTestRouter(svc), http.MethodPost, "/api/classes", `{"code":"X-1"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "name is required", env.Message)
	assert.Zero(t, svc.calls, "validation failures must not reach the service")
}

func TestCreateClassBlankNameIsRejected(t *testing.T) {
	svc := &stubClassService{}
	w, env := perform(t, classTestRouter(svc), http.MethodPost, "/api/classes", `{"name":"   "}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Zero(t, svc.calls)
}

func TestCreateClassReturns201(t *testing.T) {
	svc := &stubClassService{record: &model.ClassRecord{ID: 1, Name: "새 반"}}
	w, env := perform(t, classTestRouter(svc), http.MethodPost, "/api/classes", `{"name":"새 반"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
}

func TestCreateClassMisconfiguredTable(t *testing.T) {
	svc := &stubClassService{err: repository.ErrNoNameColumn}
	w, env := perform(t, classTestRouter(svc), http.MethodPost, "/api/classes", `{"name":"새 반"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "classes table is misconfigured", env.Message)
	assert.NotEmpty(t, env.Error)
}

func TestUpdateClassBlankNameIsRejected(t *testing.T) {
	svc := &stubClassService{}
	w, env := perform(t, classTestRouter(svc), http.MethodPut, "/api/classes/3", `{"name":""}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "name must not be empty", env.Message)
	assert.Zero(t, svc.calls)
}

func TestUpdateClassAbsentNameIsAllowed(t *testing.T) {
	svc := &stubClassService{record: &model.ClassRecord{ID: 3, Name: "기존 이름"}}
	w, env := perform(t, classTestRouter(svc), http.MethodPut, "/api/classes/3", `{"isActive":false}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, 1, svc.calls)
}

func TestUpdateClassNotFound(t *testing.T) {
	svc := &stubClassService{err: repository.ErrNotFound}
	w, env := perform(t, classTestRouter(svc), http.MethodPut, "/api/classes/99", `{"name":"x"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "class not found", env.Message)
}

func TestDeleteClassNotFound(t *testing.T) {
	svc := &stubClassService{err: repository.ErrNotFound}
	w, env := perform(t, classTestRouter(svc), http.MethodDelete, "/api/classes/42", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, env.Success)
}

func TestDeleteClassStorageErrorIs500(t *testing.T) {
	svc := &stubClassService{err: assert.AnError}
	w, env := perform(t, classTestRouter(svc), http.MethodDelete, "/api/classes/42", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "storage error", env.Message)
	assert.NotEmpty(t, env.Error)
}
