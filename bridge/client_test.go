package bridge

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"meet-lab/errors"
)

func TestClient_CreateMeeting(t *testing.T) {
	req := require.New(t)

	var got createMeetingRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/meetings", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := subject.CreateMeeting(context.Background(), "m1")

	req.NoError(err)
	req.Equal("m1", got.ID)
}

func TestClient_JoinSession(t *testing.T) {
	req := require.New(t)

	var got joinSessionRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/meetings/m1/sessions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := subject.JoinSession(context.Background(), "m1", "u1", "s1", true, false)

	req.NoError(err)
	req.Equal(joinSessionRequest{UserID: "u1", SessionID: "s1", Audio: true, Video: false}, got)
}

func TestClient_LeaveSession_Tolerates_Absence(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/meetings/m1/sessions/s1", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	// When leaving a session the bridge already forgot
	err := subject.LeaveSession(context.Background(), "m1", "s1")

	// Then absence counts as success
	req.NoError(err)
}

func TestClient_DeleteMeeting_Tolerates_Absence(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	req.NoError(subject.DeleteMeeting(context.Background(), "m1"))
}

func TestClient_Server_Error_Is_Dependency_Failure(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := subject.CreateMeeting(context.Background(), "m1")

	req.ErrorIs(err, errors.ErrDependency)
}

func TestClient_NotFound_On_Create_Is_Not_Tolerated(t *testing.T) {
	req := require.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	subject := NewClient(server.URL, time.Second, logs.GetLoggerFromLevel(slog.LevelDebug))

	// 404 is only forgiven on the idempotent delete paths
	err := subject.JoinSession(context.Background(), "m1", "u1", "s1", false, false)

	req.ErrorIs(err, errors.ErrDependency)
}

func TestClient_Timeout_Is_Dependency_Failure(t *testing.T) {
	req := require.New(t)

	block := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer server.Close()
	defer close(block)

	subject := NewClient(server.URL, 50*time.Millisecond, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := subject.CreateMeeting(context.Background(), "m1")

	req.ErrorIs(err, errors.ErrDependency)
}

func TestClient_Unreachable_Bridge(t *testing.T) {
	req := require.New(t)

	// Given a bridge nobody listens on
	subject := NewClient("http://127.0.0.1:1", 200*time.Millisecond, logs.GetLoggerFromLevel(slog.LevelDebug))

	err := subject.DeleteMeeting(context.Background(), "m1")

	req.ErrorIs(err, errors.ErrDependency)
}
