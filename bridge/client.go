// Package bridge is the adapter for the external real-time media server.
// It translates coordination intents into the bridge's HTTP API and owns
// no state of its own.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"meet-lab/domain"
	"meet-lab/errors"
)

// Client speaks JSON over HTTP to the video bridge. Every call is bounded
// by the configured timeout; a timeout or transport failure surfaces as a
// dependency failure and is never retried here. Retry and compensation
// policy belongs to the coordinator.
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	log     *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		timeout: timeout,
		log:     log,
	}
}

type createMeetingRequest struct {
	ID string `json:"id"`
}

type joinSessionRequest struct {
	UserID    string `json:"userId"`
	SessionID string `json:"sessionId"`
	Audio     bool   `json:"audio"`
	Video     bool   `json:"video"`
}

// CreateMeeting provisions the bridge-side meeting.
func (c *Client) CreateMeeting(ctx context.Context, meetingID domain.MeetingID) error {
	return c.call(ctx, http.MethodPost, "/meetings",
		createMeetingRequest{ID: string(meetingID)}, false)
}

// DeleteMeeting tears the bridge-side meeting down. An already-absent
// meeting is success: teardown ordering against late join retries cannot
// be fully guaranteed, so the delete must tolerate it.
func (c *Client) DeleteMeeting(ctx context.Context, meetingID domain.MeetingID) error {
	return c.call(ctx, http.MethodDelete,
		fmt.Sprintf("/meetings/%s", meetingID), nil, true)
}

// JoinSession attaches a session to the bridge-side meeting with its
// initial media flags.
func (c *Client) JoinSession(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID,
	sessionID domain.SessionID, audioOn, videoOn bool) error {
	return c.call(ctx, http.MethodPost,
		fmt.Sprintf("/meetings/%s/sessions", meetingID),
		joinSessionRequest{
			UserID:    string(userID),
			SessionID: string(sessionID),
			Audio:     audioOn,
			Video:     videoOn,
		}, false)
}

// LeaveSession detaches a session. Like DeleteMeeting, absence is success.
func (c *Client) LeaveSession(ctx context.Context, meetingID domain.MeetingID, sessionID domain.SessionID) error {
	return c.call(ctx, http.MethodDelete,
		fmt.Sprintf("/meetings/%s/sessions/%s", meetingID, sessionID), nil, true)
}

// call performs one bounded request. tolerateAbsent maps 404 to success
// for the idempotent delete/leave paths.
func (c *Client) call(ctx context.Context, method, path string, body any, tolerateAbsent bool) error {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encoding bridge request: %v", errors.ErrDependency, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(callCtx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: building bridge request: %v", errors.ErrDependency, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: bridge call %s %s: %v", errors.ErrDependency, method, path, err)
	}
	defer func() {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound && tolerateAbsent {
		c.log.Debug(fmt.Sprintf("Bridge reports %s already absent, treating as success", path))
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: bridge call %s %s: status %d", errors.ErrDependency, method, path, resp.StatusCode)
	}
	return nil
}
