package repositories

import (
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"

	"meet-lab/domain"
	"meet-lab/errors"
)

func newMeetingRepository(t *testing.T) *MeetingRepository {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewMeetingRepository(db, slog.Default())
}

func TestMeetingRepository_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repo := newMeetingRepository(t)

	// When the meeting of a room is created
	created, err := repo.Create("r1")
	req.NoError(err)
	req.NotEmpty(created.ID)
	req.Equal(domain.RoomID("r1"), created.Room)
	req.Equal(domain.MeetingInactive, created.State)

	// Then it is resolvable by id and by room
	byID, err := repo.Get(created.ID)
	req.NoError(err)
	req.Equal(created.ID, byID.ID)
	req.Equal(domain.MeetingInactive, byID.State)

	byRoom, err := repo.GetByRoom("r1")
	req.NoError(err)
	req.Equal(created.ID, byRoom.ID)
}

func TestMeetingRepository_One_Meeting_Per_Room(t *testing.T) {
	req := require.New(t)
	repo := newMeetingRepository(t)

	_, err := repo.Create("r1")
	req.NoError(err)

	// A second creation for the same room conflicts
	_, err = repo.Create("r1")
	req.ErrorIs(err, errors.ErrConflict)

	// Another room is unaffected
	_, err = repo.Create("r2")
	req.NoError(err)
}

func TestMeetingRepository_Get_Unknown(t *testing.T) {
	req := require.New(t)
	repo := newMeetingRepository(t)

	_, err := repo.Get("nope")
	req.ErrorIs(err, errors.ErrNotFound)

	_, err = repo.GetByRoom("nope")
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestMeetingRepository_SetState(t *testing.T) {
	req := require.New(t)
	repo := newMeetingRepository(t)

	created, err := repo.Create("r1")
	req.NoError(err)

	// When the meeting activates then tears down
	req.NoError(repo.SetState(created.ID, domain.MeetingActive))

	meeting, err := repo.Get(created.ID)
	req.NoError(err)
	req.Equal(domain.MeetingActive, meeting.State)

	req.NoError(repo.SetState(created.ID, domain.MeetingInactive))

	meeting, err = repo.Get(created.ID)
	req.NoError(err)
	req.Equal(domain.MeetingInactive, meeting.State)

	// And unknown meetings cannot transition
	req.ErrorIs(repo.SetState("nope", domain.MeetingActive), errors.ErrNotFound)
}

func TestMeetingRepository_History_Is_Chronological(t *testing.T) {
	req := require.New(t)
	repo := newMeetingRepository(t)

	created, err := repo.Create("r1")
	req.NoError(err)
	req.NoError(repo.SetState(created.ID, domain.MeetingActive))
	req.NoError(repo.SetState(created.ID, domain.MeetingInactive))

	transitions, err := repo.History(created.ID)
	req.NoError(err)
	req.Len(transitions, 3)
	req.Equal(string(domain.MeetingInactive), transitions[0].State)
	req.Equal(string(domain.MeetingActive), transitions[1].State)
	req.Equal(string(domain.MeetingInactive), transitions[2].State)
	req.True(transitions[0].At.Before(transitions[2].At))
}
