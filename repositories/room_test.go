package repositories

import (
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"meet-lab/domain"
	"meet-lab/errors"
)

func newRoomRepository(t *testing.T) *RoomRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRoomRepository(db)
}

func TestRoomRepository_Save_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newRoomRepository(t)

	room := domain.Room{
		ID:        "r1",
		Owner:     "u1",
		Members:   []domain.UserID{"u2", "u3"},
		CreatedAt: time.Now().UTC(),
	}
	req.NoError(repo.Save(room))

	stored, err := repo.Get("r1")
	req.NoError(err)
	req.Equal(room.ID, stored.ID)
	req.Equal(room.Owner, stored.Owner)
	req.Equal(room.Members, stored.Members)
}

func TestRoomRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	repo := newRoomRepository(t)

	_, err := repo.Get("nope")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestRoomRepository_Directory_Answers(t *testing.T) {
	req := require.New(t)
	repo := newRoomRepository(t)

	req.NoError(repo.Save(domain.Room{ID: "r1", Owner: "u1", Members: []domain.UserID{"u2"}}))

	exists, err := repo.RoomExists("r1")
	req.NoError(err)
	req.True(exists)

	exists, err = repo.RoomExists("nope")
	req.NoError(err)
	req.False(exists)

	// The owner counts as a member
	member, err := repo.IsRoomMember("r1", "u1")
	req.NoError(err)
	req.True(member)

	member, err = repo.IsRoomMember("r1", "u2")
	req.NoError(err)
	req.True(member)

	member, err = repo.IsRoomMember("r1", "u9")
	req.NoError(err)
	req.False(member)

	owner, err := repo.IsRoomOwner("r1", "u1")
	req.NoError(err)
	req.True(owner)

	owner, err = repo.IsRoomOwner("r1", "u2")
	req.NoError(err)
	req.False(owner)

	// An unknown room answers negatively instead of erroring
	member, err = repo.IsRoomMember("nope", "u1")
	req.NoError(err)
	req.False(member)
}
