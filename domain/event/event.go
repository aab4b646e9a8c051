// Package event defines the domain events fanned out to participant queues.
package event

import (
	"time"

	"meet-lab/domain"
)

const (
	TypeParticipantJoined = "participant-joined"
	TypeParticipantLeft   = "participant-left"
	TypeMeetingTeardown   = "meeting-teardown"
)

// DomainEvent is discriminated by Type. From is the acting user,
// Session the acting session when one applies.
type DomainEvent interface {
	Type() string
	MeetingID() domain.MeetingID
	From() domain.UserID
	Session() domain.SessionID
}

type ParticipantJoined struct {
	Meeting   domain.MeetingID
	User      domain.UserID
	SessionID domain.SessionID
	Media     domain.MediaFlags
	At        time.Time
}

func (e ParticipantJoined) Type() string                { return TypeParticipantJoined }
func (e ParticipantJoined) MeetingID() domain.MeetingID { return e.Meeting }
func (e ParticipantJoined) From() domain.UserID         { return e.User }
func (e ParticipantJoined) Session() domain.SessionID   { return e.SessionID }

type ParticipantLeft struct {
	Meeting   domain.MeetingID
	User      domain.UserID
	SessionID domain.SessionID
	At        time.Time
}

func (e ParticipantLeft) Type() string                { return TypeParticipantLeft }
func (e ParticipantLeft) MeetingID() domain.MeetingID { return e.Meeting }
func (e ParticipantLeft) From() domain.UserID         { return e.User }
func (e ParticipantLeft) Session() domain.SessionID   { return e.SessionID }

// MeetingTeardown is emitted when the last participant leaves and the
// meeting transitions back to INACTIVE. It carries no session: the
// teardown concerns the meeting, not a single device.
type MeetingTeardown struct {
	Meeting domain.MeetingID
	User    domain.UserID
	At      time.Time
}

func (e MeetingTeardown) Type() string                { return TypeMeetingTeardown }
func (e MeetingTeardown) MeetingID() domain.MeetingID { return e.Meeting }
func (e MeetingTeardown) From() domain.UserID         { return e.User }
func (e MeetingTeardown) Session() domain.SessionID   { return "" }
