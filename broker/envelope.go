package broker

import (
	"encoding/json"
	"fmt"
	"time"

	"meet-lab/domain/event"
)

// envelope is the canonical interchange form of a domain event:
// a type tag, the acting user, the acting session (null when the event
// has none) and the type-specific fields.
type envelope struct {
	Type      string     `json:"type"`
	From      string     `json:"from"`
	SessionID *string    `json:"sessionId"`
	MeetingID string     `json:"meetingId"`
	Audio     *bool      `json:"audio,omitempty"`
	Video     *bool      `json:"video,omitempty"`
	Screen    *bool      `json:"screenShare,omitempty"`
	At        *time.Time `json:"at,omitempty"`
}

// Encode serializes a domain event to its canonical JSON form.
func Encode(evt event.DomainEvent) (string, error) {
	env := envelope{
		Type:      evt.Type(),
		From:      string(evt.From()),
		MeetingID: string(evt.MeetingID()),
	}
	if sid := evt.Session(); sid != "" {
		s := string(sid)
		env.SessionID = &s
	}

	switch e := evt.(type) {
	case event.ParticipantJoined:
		env.Audio = &e.Media.Audio
		env.Video = &e.Media.Video
		env.Screen = &e.Media.ScreenShare
		env.At = &e.At
	case event.ParticipantLeft:
		env.At = &e.At
	case event.MeetingTeardown:
		env.At = &e.At
	default:
		return "", fmt.Errorf("unknown event type %q", evt.Type())
	}

	payload, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}
