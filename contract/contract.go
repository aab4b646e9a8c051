//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"meet-lab/domain"
	"meet-lab/domain/event"
)

// AddResult is the outcome of IRegistry.TryAddParticipant.
// WasFirst is computed atomically with the mutation itself: it is the
// linchpin that prevents two concurrent first joiners from both trying
// to activate the bridge meeting.
type AddResult struct {
	Added    bool
	WasFirst bool
}

// RemoveResult mirrors AddResult for removals. WasLast is true when the
// removal emptied the meeting, computed inside the same critical section.
type RemoveResult struct {
	Removed bool
	WasLast bool
}

// IRegistry is the authoritative record of which (meeting, session) pairs
// are currently joined. Operations on the same meeting are linearized,
// different meetings proceed independently.
type IRegistry interface {
	TryAddParticipant(meetingID domain.MeetingID, userID domain.UserID, sessionID domain.SessionID, flags domain.MediaFlags) AddResult
	RemoveParticipant(meetingID domain.MeetingID, sessionID domain.SessionID) RemoveResult
	ListParticipants(meetingID domain.MeetingID) []domain.Participant
}

// RoomDirectory resolves room existence and membership. It abstracts the
// room/authorization collaborator, whatever stores it.
type RoomDirectory interface {
	RoomExists(roomID domain.RoomID) (bool, error)
	IsRoomMember(roomID domain.RoomID, userID domain.UserID) (bool, error)
	IsRoomOwner(roomID domain.RoomID, userID domain.UserID) (bool, error)
}

// VideoBridge translates coordination intents into calls against the
// external media server. Calls are bounded by the adapter's timeout and
// perform no implicit retry. DeleteMeeting and LeaveSession tolerate
// already-absent state and report it as success.
type VideoBridge interface {
	CreateMeeting(ctx context.Context, meetingID domain.MeetingID) error
	DeleteMeeting(ctx context.Context, meetingID domain.MeetingID) error
	JoinSession(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID, sessionID domain.SessionID, audioOn, videoOn bool) error
	LeaveSession(ctx context.Context, meetingID domain.MeetingID, sessionID domain.SessionID) error
}

// EventPublisher delivers one event to the durable queue of every
// recipient, at least once. Healthy reports broker liveness independently
// of publish calls.
type EventPublisher interface {
	Publish(ctx context.Context, recipients []domain.UserID, evt event.DomainEvent) error
	Healthy(ctx context.Context) bool
}

// Publication is one fan-out unit: an event and the user queues that must
// receive it. The coordinator enqueues publications, the fan-out worker
// drains them.
type Publication struct {
	Recipients []domain.UserID
	Event      event.DomainEvent
}

// IMeetingRepository persists meeting records and their state transitions.
// Records are never deleted, teardown only flips the state.
type IMeetingRepository interface {
	Create(roomID domain.RoomID) (domain.Meeting, error)
	Get(meetingID domain.MeetingID) (domain.Meeting, error)
	GetByRoom(roomID domain.RoomID) (domain.Meeting, error)
	SetState(meetingID domain.MeetingID, state domain.MeetingState) error
}

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
