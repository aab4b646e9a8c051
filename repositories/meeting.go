// Package repositories persists meetings and rooms in BadgerDB.
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"meet-lab/domain"
	"meet-lab/errors"
)

// storedMeeting is the on-disk representation of a meeting record.
type storedMeeting struct {
	ID        string    `json:"id"`
	Room      string    `json:"room"`
	State     string    `json:"state"`
	CreatedAt time.Time `json:"createdAt"`
}

// Transition is one entry of a meeting's state audit log.
type Transition struct {
	State string    `json:"state"`
	At    time.Time `json:"at"`
}

// MeetingRepository stores one meeting per room plus an append-only log
// of its state transitions. Meetings are never deleted: teardown flips
// the state and the log keeps the history.
//
// Key scheme:
//
//	meeting:id:{meetingID}          -> meeting record
//	meeting:room:{roomID}           -> meeting id (one meeting per room)
//	meeting:log:{meetingID}:{ts}    -> transition, 19-digit zero padded
//	                                   nanosecond timestamp so a prefix
//	                                   scan yields chronological order
type MeetingRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMeetingRepository(db *badger.DB, log *slog.Logger) *MeetingRepository {
	return &MeetingRepository{db: db, log: log}
}

func meetingKey(id domain.MeetingID) []byte {
	return []byte("meeting:id:" + id)
}

func roomIndexKey(id domain.RoomID) []byte {
	return []byte("meeting:room:" + id)
}

func transitionKey(id domain.MeetingID, at time.Time) []byte {
	return []byte(fmt.Sprintf("meeting:log:%s:%019d", id, at.UnixNano()))
}

// Create materializes the meeting of a room, INACTIVE. A room holds at
// most one meeting; a second creation is a conflict.
func (m *MeetingRepository) Create(roomID domain.RoomID) (domain.Meeting, error) {
	meeting := domain.Meeting{
		ID:        domain.MeetingID(uuid.New().String()),
		Room:      roomID,
		State:     domain.MeetingInactive,
		CreatedAt: time.Now().UTC(),
	}

	record, err := json.Marshal(storedMeeting{
		ID:        string(meeting.ID),
		Room:      string(meeting.Room),
		State:     string(meeting.State),
		CreatedAt: meeting.CreatedAt,
	})
	if err != nil {
		return domain.Meeting{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = m.db.Update(func(txn *badger.Txn) error {
		if _, getErr := txn.Get(roomIndexKey(roomID)); getErr == nil {
			return fmt.Errorf("%w: room %s already has a meeting", errors.ErrConflict, roomID)
		}
		if setErr := txn.Set(roomIndexKey(roomID), []byte(meeting.ID)); setErr != nil {
			return setErr
		}
		if setErr := txn.Set(meetingKey(meeting.ID), record); setErr != nil {
			return setErr
		}
		return appendTransition(txn, meeting.ID, meeting.State, meeting.CreatedAt)
	})
	if err != nil {
		return domain.Meeting{}, err
	}
	return meeting, nil
}

// Get resolves a meeting by id.
func (m *MeetingRepository) Get(meetingID domain.MeetingID) (domain.Meeting, error) {
	var stored storedMeeting
	err := m.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(meetingKey(meetingID))
		if getErr != nil {
			return getErr
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &stored)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Meeting{}, fmt.Errorf("%w: meeting %s", errors.ErrNotFound, meetingID)
	}
	if err != nil {
		return domain.Meeting{}, err
	}
	return toMeeting(stored), nil
}

// GetByRoom resolves the meeting of a room through the room index.
func (m *MeetingRepository) GetByRoom(roomID domain.RoomID) (domain.Meeting, error) {
	var meetingID domain.MeetingID
	err := m.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(roomIndexKey(roomID))
		if getErr != nil {
			return getErr
		}
		return item.Value(func(value []byte) error {
			meetingID = domain.MeetingID(value)
			return nil
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Meeting{}, fmt.Errorf("%w: no meeting for room %s", errors.ErrNotFound, roomID)
	}
	if err != nil {
		return domain.Meeting{}, err
	}
	return m.Get(meetingID)
}

// SetState records an activation or teardown transition, both on the
// meeting record and in the audit log.
func (m *MeetingRepository) SetState(meetingID domain.MeetingID, state domain.MeetingState) error {
	err := m.db.Update(func(txn *badger.Txn) error {
		item, getErr := txn.Get(meetingKey(meetingID))
		if getErr != nil {
			return getErr
		}

		var stored storedMeeting
		if valErr := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &stored)
		}); valErr != nil {
			return valErr
		}

		stored.State = string(state)
		record, marshalErr := json.Marshal(stored)
		if marshalErr != nil {
			return marshalErr
		}
		if setErr := txn.Set(meetingKey(meetingID), record); setErr != nil {
			return setErr
		}
		return appendTransition(txn, meetingID, state, time.Now().UTC())
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: meeting %s", errors.ErrNotFound, meetingID)
	}
	return err
}

// History returns the chronological state transitions of a meeting.
func (m *MeetingRepository) History(meetingID domain.MeetingID) ([]Transition, error) {
	var transitions []Transition
	err := m.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("meeting:log:%s:", meetingID))
		options := badger.DefaultIteratorOptions
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var transition Transition
			if err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &transition)
			}); err != nil {
				return err
			}
			transitions = append(transitions, transition)
		}
		return nil
	})
	return transitions, err
}

func appendTransition(txn *badger.Txn, meetingID domain.MeetingID, state domain.MeetingState, at time.Time) error {
	entry, err := json.Marshal(Transition{State: string(state), At: at})
	if err != nil {
		return err
	}
	return txn.Set(transitionKey(meetingID, at), entry)
}

func toMeeting(stored storedMeeting) domain.Meeting {
	return domain.Meeting{
		ID:        domain.MeetingID(stored.ID),
		Room:      domain.RoomID(stored.Room),
		State:     domain.MeetingState(stored.State),
		CreatedAt: stored.CreatedAt,
	}
}
