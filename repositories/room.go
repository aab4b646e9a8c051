package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"meet-lab/domain"
	"meet-lab/errors"
)

type storedRoom struct {
	ID        string    `json:"id"`
	Owner     string    `json:"owner"`
	Members   []string  `json:"members"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomRepository stores room membership under "room:{id}" and answers the
// room directory contract the coordinator authorizes against.
type RoomRepository struct {
	db *badger.DB
}

func NewRoomRepository(db *badger.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func roomKey(id domain.RoomID) []byte {
	return []byte("room:" + id)
}

// Save persists a room record, overwriting any previous membership.
func (r *RoomRepository) Save(room domain.Room) error {
	record, err := json.Marshal(storedRoom{
		ID:        string(room.ID),
		Owner:     string(room.Owner),
		Members:   memberIDs(room.Members),
		CreatedAt: room.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(roomKey(room.ID), record)
	})
}

// Get resolves a room by id.
func (r *RoomRepository) Get(roomID domain.RoomID) (domain.Room, error) {
	var stored storedRoom
	err := r.db.View(func(txn *badger.Txn) error {
		item, getErr := txn.Get(roomKey(roomID))
		if getErr != nil {
			return getErr
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &stored)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return domain.Room{}, fmt.Errorf("%w: room %s", errors.ErrNotFound, roomID)
	}
	if err != nil {
		return domain.Room{}, err
	}

	room := domain.Room{
		ID:        domain.RoomID(stored.ID),
		Owner:     domain.UserID(stored.Owner),
		CreatedAt: stored.CreatedAt,
	}
	for _, m := range stored.Members {
		room.Members = append(room.Members, domain.UserID(m))
	}
	return room, nil
}

// RoomExists implements the room directory contract.
func (r *RoomRepository) RoomExists(roomID domain.RoomID) (bool, error) {
	_, err := r.Get(roomID)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, errors.ErrNotFound) {
		return false, nil
	}
	return false, err
}

// IsRoomMember implements the room directory contract. The owner counts
// as a member.
func (r *RoomRepository) IsRoomMember(roomID domain.RoomID, userID domain.UserID) (bool, error) {
	room, err := r.Get(roomID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return room.HasMember(userID), nil
}

// IsRoomOwner implements the room directory contract.
func (r *RoomRepository) IsRoomOwner(roomID domain.RoomID, userID domain.UserID) (bool, error) {
	room, err := r.Get(roomID)
	if err != nil {
		if stderrors.Is(err, errors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return room.Owner == userID, nil
}

func memberIDs(members []domain.UserID) []string {
	ids := make([]string, 0, len(members))
	for _, m := range members {
		ids = append(ids, string(m))
	}
	return ids
}
