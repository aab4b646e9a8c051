package domain

import "time"

// MediaFlags describe the media state a session joins with.
// All flags default to false.
type MediaFlags struct {
	Audio       bool
	Video       bool
	ScreenShare bool
}

// JoinSettings carry per-join options supplied by the client.
// OwnersOnly restricts the join to room owners.
type JoinSettings struct {
	Media      MediaFlags
	OwnersOnly bool
}

// Participant is one joined (user, session) pair within a meeting.
// A user may hold several concurrent sessions in the same meeting,
// but a session id appears at most once across all meetings.
type Participant struct {
	Meeting  MeetingID
	User     UserID
	Session  SessionID
	Media    MediaFlags
	JoinedAt time.Time
}
