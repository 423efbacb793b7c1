package https

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/Kravtmk/whoami-app/internal/repository"
	"github.com/Kravtmk/whoami-app/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	store, err := repository.NewJSONStore(filepath.Join(dir, "roles.json"), filepath.Join(dir, "days.json"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	ctx := context.Background()
	registry, err := service.NewRoleRegistry(ctx, store, model.DefaultRoles())
	require.NoError(t, err)
	handlers := NewHTTPHandlers(registry, service.NewDayLogService(store))
	handlers.now = func() time.Time { return time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC) }
	return NewHTTPServer(handlers, ":0").Handler
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	h := setupServer(t)
	rec := do(t, h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[model.HealthDTO](t, rec).Status)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRequestIDIsEchoed(t *testing.T) {
	h := setupServer(t)
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
}

func TestRoles(t *testing.T) {
	h := setupServer(t)

	rec := do(t, h, http.MethodGet, "/roles", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.DefaultRoles(), decode[[]model.Role](t, rec))

	rec = do(t, h, http.MethodPost, "/roles", `{"id":6,"name":"Reader","percent":10}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, model.Role{ID: 6, Name: "Reader", Percent: 10}, decode[model.Role](t, rec))

	rec = do(t, h, http.MethodPost, "/roles", `{"id":1,"name":"Devops","percent":10}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, h, http.MethodPost, "/roles", `{"id":7,"name":"Greedy","percent":150}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/roles", `{"id":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid JSON", decode[model.ErrorDTO](t, rec).Error)

	rec = do(t, h, http.MethodDelete, "/roles/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decode[model.DeletedRoleDTO](t, rec).Deleted.ID)

	rec = do(t, h, http.MethodDelete, "/roles/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodDelete, "/roles/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPut, "/roles", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	rec = do(t, h, http.MethodGet, "/roles", "")
	var ids []int
	for _, role := range decode[[]model.Role](t, rec) {
		ids = append(ids, role.ID)
	}
	assert.Equal(t, []int{1, 3, 4, 5, 6}, ids)
}

func TestToday_Default(t *testing.T) {
	h := setupServer(t)
	rec := do(t, h, http.MethodGet, "/today?userId=u1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	today := decode[model.TodayDTO](t, rec)
	assert.Equal(t, "2024-05-01", today.Log.Day)
	assert.Equal(t, "u1", today.Log.UserID)
	assert.Equal(t, 480, today.Log.SleepMinutes)
	assert.Equal(t, 120, today.Log.BufferMinutes)
	assert.Empty(t, today.Log.Segments)
	assert.Equal(t, 840, today.OtherMinutes)
	assert.Equal(t, model.SummaryPercentDTO{Sleep: 33, Buffer: 8, Tracked: 0, Other: 58}, today.SummaryPercent)
}

func TestToday_MissingUser(t *testing.T) {
	h := setupServer(t)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/today", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodPost, "/today/segment", `{"roleId":1,"minutes":5}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/today?userId=u1&day=yesterday", "").Code)
}

func TestAddSegment(t *testing.T) {
	h := setupServer(t)

	rec := do(t, h, http.MethodPost, "/today/segment?userId=u1", `{"roleId":1,"minutes":300,"note":"deploy"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[model.AppendSegmentResponseDTO](t, rec)
	assert.True(t, resp.OK)
	assert.Equal(t, 540, resp.OtherMinutes)
	require.Len(t, resp.Log.Segments, 1)
	require.NotNil(t, resp.Log.Segments[0].Note)
	assert.Equal(t, "deploy", *resp.Log.Segments[0].Note)

	rec = do(t, h, http.MethodGet, "/today?userId=u1", "")
	today := decode[model.TodayDTO](t, rec)
	assert.Equal(t, model.SummaryPercentDTO{Sleep: 33, Buffer: 8, Tracked: 21, Other: 38}, today.SummaryPercent)

	rec = do(t, h, http.MethodPost, "/today/segment?userId=u1", `{"roleId":1,"minutes":-5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/today/segment?userId=u1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddSegment_OverAllocation(t *testing.T) {
	h := setupServer(t)
	rec := do(t, h, http.MethodPost, "/today/segment?userId=u1&day=2024-04-30", `{"roleId":1,"minutes":840}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[model.AppendSegmentResponseDTO](t, rec).OtherMinutes)

	rec = do(t, h, http.MethodPost, "/today/segment?userId=u1&day=2024-04-30", `{"roleId":2,"minutes":1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decode[model.ErrorDTO](t, rec).Error, "1440")

	rec = do(t, h, http.MethodGet, "/today?userId=u1&day=2024-04-30", "")
	today := decode[model.TodayDTO](t, rec)
	assert.Len(t, today.Log.Segments, 1)
	assert.Equal(t, 0, today.OtherMinutes)

	// другой день того же пользователя не затронут
	rec = do(t, h, http.MethodGet, "/today?userId=u1", "")
	assert.Equal(t, 840, decode[model.TodayDTO](t, rec).OtherMinutes)
}

func TestRoleIDFromPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int
		wantErr bool
	}{
		{name: "Valid", path: "/roles/3", want: 3},
		{name: "TrailingSlash", path: "/roles/3/", want: 3},
		{name: "Negative", path: "/roles/-1", want: -1},
		{name: "ErrorMissing", path: "/roles/", wantErr: true},
		{name: "ErrorNested", path: "/roles/3/extra", wantErr: true},
		{name: "ErrorNotNumber", path: "/roles/x", wantErr: true},
		{name: "ErrorPrefix", path: "/users/3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := roleIDFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
