package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Kravtmk/whoami-app/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	today    model.TodayDTO
	added    model.AppendSegmentResponseDTO
	err      error
	gotUser  string
	gotSeg   model.Segment
	requests int
}

func (f *fakeAPI) Today(ctx context.Context, userID string) (model.TodayDTO, error) {
	f.requests++
	f.gotUser = userID
	return f.today, f.err
}

func (f *fakeAPI) AddSegment(ctx context.Context, userID string, seg model.Segment) (model.AppendSegmentResponseDTO, error) {
	f.requests++
	f.gotUser = userID
	f.gotSeg = seg
	return f.added, f.err
}

func TestBot_Today(t *testing.T) {
	api := &fakeAPI{today: model.TodayDTO{
		OtherMinutes:   540,
		SummaryPercent: model.SummaryPercentDTO{Sleep: 33, Buffer: 8, Tracked: 21, Other: 38},
	}}
	reply := NewBot(api).Handle(context.Background(), "/today u1")
	assert.Equal(t, "u1", api.gotUser)
	assert.Equal(t, "📅 Today for u1\nOther minutes: 540\nSleep: 33%\nBuffer: 8%\nTracked: 21%\nOther: 38%\n", reply)
}

func TestBot_Add(t *testing.T) {
	api := &fakeAPI{added: model.AppendSegmentResponseDTO{OK: true, OtherMinutes: 815}}
	reply := NewBot(api).Handle(context.Background(), "/add@WhoAmIBot u1 1 25")
	assert.Equal(t, model.Segment{RoleID: 1, Minutes: 25}, api.gotSeg)
	assert.Equal(t, "✅ Added: roleId=1, minutes=25\nOther minutes now: 815", reply)
}

func TestBot_Usage(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{name: "TodayNoArgs", line: "/today", want: usageToday},
		{name: "AddTooFewArgs", line: "/add u1 1", want: usageAdd},
		{name: "AddBadRole", line: "/add u1 one 25", want: usageAdd},
		{name: "AddBadMinutes", line: "/add u1 1 lots", want: usageAdd},
		{name: "Start", line: "/start", want: StartText()},
		{name: "Blank", line: "   ", want: StartText()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &fakeAPI{}
			assert.Equal(t, tt.want, NewBot(api).Handle(context.Background(), tt.line))
			assert.Zero(t, api.requests, "usage errors must not reach the API")
		})
	}
}

func TestBot_UnknownCommand(t *testing.T) {
	reply := NewBot(&fakeAPI{}).Handle(context.Background(), "/week u1")
	assert.Contains(t, reply, "/week")
}

func TestBot_APIError(t *testing.T) {
	api := &fakeAPI{err: &APIError{Status: http.StatusConflict, Message: "total minutes exceed 1440"}}
	reply := NewBot(api).Handle(context.Background(), "/add u1 1 5")
	assert.Equal(t, "⛔ total minutes exceed 1440", reply)

	api.err = errors.New("connection refused")
	assert.Equal(t, "⛔ connection refused", NewBot(api).Handle(context.Background(), "/today u1"))
}

func TestClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/today":
			assert.Equal(t, "u 1", r.URL.Query().Get("userId"))
			json.NewEncoder(w).Encode(model.TodayDTO{OtherMinutes: 840})
		case r.Method == http.MethodPost && r.URL.Path == "/today/segment":
			var seg model.Segment
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&seg))
			if seg.Minutes > 840 {
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(model.ErrorDTO{Error: "total minutes exceed 1440"})
				return
			}
			json.NewEncoder(w).Encode(model.AppendSegmentResponseDTO{OK: true, OtherMinutes: 840 - seg.Minutes})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	client := NewClient(srv.URL + "/")
	ctx := context.Background()

	today, err := client.Today(ctx, "u 1")
	require.NoError(t, err)
	assert.Equal(t, 840, today.OtherMinutes)

	added, err := client.AddSegment(ctx, "u1", model.Segment{RoleID: 1, Minutes: 40})
	require.NoError(t, err)
	assert.True(t, added.OK)
	assert.Equal(t, 800, added.OtherMinutes)

	_, err = client.AddSegment(ctx, "u1", model.Segment{RoleID: 1, Minutes: 900})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "total minutes exceed 1440", apiErr.Message)

	var out bytes.Buffer
	require.NoError(t, client.Request(&out, http.MethodGet, "/today?userId=u+1", ""))
	assert.Contains(t, out.String(), "Status: 200 OK")
	assert.Contains(t, out.String(), `"otherMinutes": 840`)
}
