package runtime

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"meet-lab/contract"
	"meet-lab/domain"
)

func TestRegistry_Add_First_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())
	userID := domain.UserID(uuid.NewString())

	// Given an empty registry
	req.Nil(registry.ListParticipants(meetingID))

	// When a session joins
	res := registry.TryAddParticipant(meetingID, userID, "s1", domain.MediaFlags{Audio: true})

	// Then it is the first participant
	req.True(res.Added)
	req.True(res.WasFirst)

	participants := registry.ListParticipants(meetingID)
	req.Len(participants, 1)
	req.Equal(userID, participants[0].User)
	req.Equal(domain.SessionID("s1"), participants[0].Session)
	req.True(participants[0].Media.Audio)
}

func TestRegistry_Add_Second_Session_Same_User(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())
	userID := domain.UserID(uuid.NewString())

	// Given one joined session
	registry.TryAddParticipant(meetingID, userID, "s1", domain.MediaFlags{})

	// When the same user joins with a second device
	res := registry.TryAddParticipant(meetingID, userID, "s2", domain.MediaFlags{})

	// Then it is joined but not first
	req.True(res.Added)
	req.False(res.WasFirst)
	req.Len(registry.ListParticipants(meetingID), 2)
}

func TestRegistry_Add_Duplicate_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())

	// Given a joined session
	registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{})

	// When the same session joins again
	res := registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{Video: true})

	// Then nothing is mutated
	req.False(res.Added)
	req.False(res.WasFirst)

	participants := registry.ListParticipants(meetingID)
	req.Len(participants, 1)
	req.False(participants[0].Media.Video)
}

func TestRegistry_Session_Unique_Across_Meetings(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	// Given a session joined in one meeting
	registry.TryAddParticipant("m1", "u1", "s1", domain.MediaFlags{})

	// When the same session joins another meeting
	res := registry.TryAddParticipant("m2", "u1", "s1", domain.MediaFlags{})

	// Then the second meeting rejects it untouched
	req.False(res.Added)
	req.Nil(registry.ListParticipants("m2"))
}

func TestRegistry_Remove_Unknown_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()

	res := registry.RemoveParticipant("m1", "s1")

	req.False(res.Removed)
	req.False(res.WasLast)
}

func TestRegistry_Remove_Last_Participant(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())

	// Given two joined sessions
	registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{})
	registry.TryAddParticipant(meetingID, "u2", "s2", domain.MediaFlags{})

	// When they leave one by one
	first := registry.RemoveParticipant(meetingID, "s1")
	second := registry.RemoveParticipant(meetingID, "s2")

	// Then only the final removal empties the meeting
	req.True(first.Removed)
	req.False(first.WasLast)
	req.True(second.Removed)
	req.True(second.WasLast)
	req.Nil(registry.ListParticipants(meetingID))
}

func TestRegistry_Rejoin_After_Teardown(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())

	// Given a meeting that was emptied
	registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{})
	registry.RemoveParticipant(meetingID, "s1")

	// When the session joins again
	res := registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{})

	// Then it is a fresh first participant
	req.True(res.Added)
	req.True(res.WasFirst)
}

func TestRegistry_List_Ordered_By_Join_Time(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())

	for i := 0; i < 5; i++ {
		registry.TryAddParticipant(meetingID, domain.UserID(fmt.Sprintf("u%d", i)),
			domain.SessionID(fmt.Sprintf("s%d", i)), domain.MediaFlags{})
	}

	participants := registry.ListParticipants(meetingID)
	req.Len(participants, 5)
	for i, p := range participants {
		req.Equal(domain.SessionID(fmt.Sprintf("s%d", i)), p.Session)
	}
}

func TestRegistry_Concurrent_Joins_Single_First(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())
	joiners := 64

	// When many sessions race to join an empty meeting
	var wg sync.WaitGroup
	results := make(chan bool, joiners)
	for i := 0; i < joiners; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := registry.TryAddParticipant(meetingID, domain.UserID(fmt.Sprintf("u%d", i)),
				domain.SessionID(fmt.Sprintf("s%d", i)), domain.MediaFlags{})
			results <- res.WasFirst
		}(i)
	}
	wg.Wait()
	close(results)

	// Then exactly one of them observed the activation
	firsts := 0
	for wasFirst := range results {
		if wasFirst {
			firsts++
		}
	}
	req.Equal(1, firsts)
	req.Len(registry.ListParticipants(meetingID), joiners)
}

func TestRegistry_Concurrent_Leaves_Single_Last(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())
	sessions := 64

	for i := 0; i < sessions; i++ {
		registry.TryAddParticipant(meetingID, domain.UserID(fmt.Sprintf("u%d", i)),
			domain.SessionID(fmt.Sprintf("s%d", i)), domain.MediaFlags{})
	}

	// When every session leaves concurrently
	var wg sync.WaitGroup
	results := make(chan bool, sessions)
	for i := 0; i < sessions; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := registry.RemoveParticipant(meetingID, domain.SessionID(fmt.Sprintf("s%d", i)))
			results <- res.WasLast
		}(i)
	}
	wg.Wait()
	close(results)

	// Then exactly one of them observed the teardown
	lasts := 0
	for wasLast := range results {
		if wasLast {
			lasts++
		}
	}
	req.Equal(1, lasts)
	req.Nil(registry.ListParticipants(meetingID))
}

func TestRegistry_Final_Leave_Racing_Join(t *testing.T) {
	req := require.New(t)
	iterations := 500

	for i := 0; i < iterations; i++ {
		registry := NewRegistry()
		meetingID := domain.MeetingID(uuid.NewString())

		// Given a meeting holding its final participant
		registry.TryAddParticipant(meetingID, "u1", "s1", domain.MediaFlags{})

		// When the final leave races a fresh join
		var wg sync.WaitGroup
		var removeRes contract.RemoveResult
		var addRes contract.AddResult
		wg.Add(2)
		go func() {
			defer wg.Done()
			removeRes = registry.RemoveParticipant(meetingID, "s1")
		}()
		go func() {
			defer wg.Done()
			addRes = registry.TryAddParticipant(meetingID, "u2", "s2", domain.MediaFlags{})
		}()
		wg.Wait()

		// Then the teardown flag and the activation flag agree: either the
		// joiner landed after the meeting emptied (fresh first participant),
		// or it landed before and the leave must not report last
		req.True(removeRes.Removed)
		req.True(addRes.Added)
		req.Equal(removeRes.WasLast, addRes.WasFirst)
		req.Len(registry.ListParticipants(meetingID), 1)
	}
}

func TestRegistry_Concurrent_Churn_No_Duplicates(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	meetingID := domain.MeetingID(uuid.NewString())
	workers := 16
	rounds := 50

	// When sessions join and leave in a tight loop
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sessionID := domain.SessionID(fmt.Sprintf("s%d", i))
			for r := 0; r < rounds; r++ {
				registry.TryAddParticipant(meetingID, domain.UserID(fmt.Sprintf("u%d", i)),
					sessionID, domain.MediaFlags{})
				registry.RemoveParticipant(meetingID, sessionID)
			}
		}(i)
	}
	wg.Wait()

	// Then the quiescent participant set holds no duplicate sessions
	seen := map[domain.SessionID]struct{}{}
	for _, p := range registry.ListParticipants(meetingID) {
		_, duplicate := seen[p.Session]
		req.False(duplicate, "duplicate session %s", p.Session)
		seen[p.Session] = struct{}{}
	}
}
