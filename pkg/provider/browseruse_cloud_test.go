package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutqa/scout/pkg/models"
)

// fakeBrowserUse serves a minimal slice of the cloud API: accept one task,
// report it running once, then finished with a verdict.
func fakeBrowserUse(t *testing.T, output string, failTask bool) *httptest.Server {
	t.Helper()
	var polls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("POST /run-task", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer bu-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"id": "task-1"})
	})
	mux.HandleFunc("GET /task/task-1", func(w http.ResponseWriter, r *http.Request) {
		task := map[string]any{
			"id":         "task-1",
			"session_id": "sess-1",
			"status":     "running",
			"live_url":   "https://live.example/task-1",
			"steps":      []map[string]any{{"number": 1, "next_goal": "open page"}},
		}
		if polls.Add(1) >= 2 {
			task["status"] = "finished"
			task["output"] = output
			if failTask {
				task["status"] = "failed"
				task["output"] = "browser crashed"
			}
		}
		json.NewEncoder(w).Encode(task)
	})
	return httptest.NewServer(mux)
}

func testCloudClient(srv *httptest.Server) *BrowserUseCloud {
	c := NewBrowserUseCloud()
	c.baseURL = srv.URL
	c.pollInterval = 5 * time.Millisecond
	return c
}

func TestBrowserUseCloudExecuteTest(t *testing.T) {
	srv := fakeBrowserUse(t, `{"success": true, "reason": "flow completed"}`, false)
	defer srv.Close()

	var liveURL, taskID string
	res, err := testCloudClient(srv).ExecuteTest(context.Background(), ExecuteInput{
		TargetURL: "https://app.example",
		Task:      "do the thing",
		Keys:      models.ProviderKeys{BrowserUseAPIKey: "bu-key"},
	}, Callbacks{
		OnLiveURL:     func(live, _ string) { liveURL = live },
		OnTaskCreated: func(id, _ string) { taskID = id },
	})
	require.NoError(t, err)

	assert.Equal(t, StatusCompleted, res.Status)
	require.NotNil(t, res.Verdict)
	assert.Equal(t, "flow completed", res.Verdict.Reason)
	assert.Equal(t, "https://live.example/task-1", liveURL)
	assert.Equal(t, "task-1", taskID)
	assert.Equal(t, "task-1", res.RawProviderData["taskId"])
}

func TestBrowserUseCloudTaskFailure(t *testing.T) {
	srv := fakeBrowserUse(t, "", true)
	defer srv.Close()

	res, err := testCloudClient(srv).ExecuteTest(context.Background(), ExecuteInput{
		Task: "do the thing",
		Keys: models.ProviderKeys{BrowserUseAPIKey: "bu-key"},
	}, Callbacks{})
	require.NoError(t, err)

	assert.Equal(t, StatusError, res.Status)
	assert.Equal(t, "browser crashed", res.Error)
	assert.Nil(t, res.Verdict)
}

func TestBrowserUseCloudAuthRejected(t *testing.T) {
	srv := fakeBrowserUse(t, "", false)
	defer srv.Close()

	_, err := testCloudClient(srv).ExecuteTest(context.Background(), ExecuteInput{
		Task: "do the thing",
		Keys: models.ProviderKeys{BrowserUseAPIKey: "wrong"},
	}, Callbacks{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 401")
}

func TestBrowserUseCloudCancellation(t *testing.T) {
	// Never finishes; the poll loop must exit on context cancel.
	mux := http.NewServeMux()
	mux.HandleFunc("POST /run-task", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"id": "task-1"})
	})
	mux.HandleFunc("GET /task/task-1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "task-1", "status": "running"})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := testCloudClient(srv).ExecuteTest(ctx, ExecuteInput{
		Task: "do the thing",
		Keys: models.ProviderKeys{BrowserUseAPIKey: "bu-key"},
	}, Callbacks{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestBrowserUseLocalProfileUnsupported(t *testing.T) {
	l := NewBrowserUseLocal("http://127.0.0.1:1")

	_, err := l.LoginWithProfile(context.Background(), LoginInput{})
	assert.ErrorIs(t, err, ErrUnsupported)

	err = l.DeleteProfile(context.Background(), "p-1", models.ProviderKeys{})
	assert.ErrorIs(t, err, ErrUnsupported)
}
