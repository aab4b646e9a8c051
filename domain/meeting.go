// Package domain contains core concepts of the meeting system.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

type MeetingID string
type RoomID string
type UserID string
type SessionID string

type MeetingState string

const (
	MeetingInactive MeetingState = "INACTIVE"
	MeetingActive   MeetingState = "ACTIVE"
)

// Meeting is the live multi-party session derived 1:1 from a room.
// It is mutated only by the coordinator and never hard-deleted:
// teardown is a state transition, the record is kept for audit.
type Meeting struct {
	ID        MeetingID
	Room      RoomID
	State     MeetingState
	CreatedAt time.Time
}
