package runtime

import (
	"sync"
	"time"

	"meet-lab/contract"
	"meet-lab/domain"
)

// meetingEntry holds the participants of a single meeting behind its own
// lock, so two meetings never contend with each other. The participants
// slice is kept in join order, which is the order ListParticipants returns.
//
// evicted marks an entry that was removed from the registry map after its
// last participant left. An adder that raced the eviction re-resolves the
// entry instead of writing into an orphan.
type meetingEntry struct {
	mu           sync.Mutex
	participants []domain.Participant
	evicted      bool
}

// Registry is the authoritative record of joined (meeting, session) pairs.
//
// Mutations on the same meeting are linearized by the entry lock, and the
// first/last flags are computed inside that same critical section: this is
// what prevents two concurrent first joiners from both activating the
// bridge meeting, and a teardown racing a join mid-flight.
//
// A session id is claimed globally before the per-meeting mutation, so a
// given session appears at most once across all meetings.
type Registry struct {
	mu       sync.RWMutex
	meetings map[domain.MeetingID]*meetingEntry

	sessionMu sync.Mutex
	sessions  map[domain.SessionID]domain.MeetingID
}

func NewRegistry() *Registry {
	return &Registry{
		meetings: make(map[domain.MeetingID]*meetingEntry),
		sessions: make(map[domain.SessionID]domain.MeetingID),
	}
}

// TryAddParticipant records a (user, session) pair in a meeting.
// Added=false means the session is already present somewhere (in this
// meeting or another) and nothing was mutated.
func (r *Registry) TryAddParticipant(meetingID domain.MeetingID, userID domain.UserID, sessionID domain.SessionID, flags domain.MediaFlags) contract.AddResult {
	r.sessionMu.Lock()
	if _, taken := r.sessions[sessionID]; taken {
		r.sessionMu.Unlock()
		return contract.AddResult{}
	}
	r.sessions[sessionID] = meetingID
	r.sessionMu.Unlock()

	participant := domain.Participant{
		Meeting:  meetingID,
		User:     userID,
		Session:  sessionID,
		Media:    flags,
		JoinedAt: time.Now().UTC(),
	}

	for {
		entry := r.getOrCreate(meetingID)
		entry.mu.Lock()
		if entry.evicted {
			entry.mu.Unlock()
			continue
		}
		entry.participants = append(entry.participants, participant)
		wasFirst := len(entry.participants) == 1
		entry.mu.Unlock()
		return contract.AddResult{Added: true, WasFirst: wasFirst}
	}
}

// RemoveParticipant removes a session from a meeting and releases its
// global claim. When the removal empties the meeting, the entry is
// evicted from the map so the registry does not grow with dead meetings.
func (r *Registry) RemoveParticipant(meetingID domain.MeetingID, sessionID domain.SessionID) contract.RemoveResult {
	r.mu.RLock()
	entry, ok := r.meetings[meetingID]
	r.mu.RUnlock()
	if !ok {
		return contract.RemoveResult{}
	}

	entry.mu.Lock()
	idx := -1
	for i, p := range entry.participants {
		if p.Session == sessionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		entry.mu.Unlock()
		return contract.RemoveResult{}
	}
	entry.participants = append(entry.participants[:idx], entry.participants[idx+1:]...)
	wasLast := len(entry.participants) == 0
	if wasLast {
		entry.evicted = true
	}
	entry.mu.Unlock()

	if wasLast {
		r.mu.Lock()
		if r.meetings[meetingID] == entry {
			delete(r.meetings, meetingID)
		}
		r.mu.Unlock()
	}

	r.sessionMu.Lock()
	delete(r.sessions, sessionID)
	r.sessionMu.Unlock()

	return contract.RemoveResult{Removed: true, WasLast: wasLast}
}

// ListParticipants returns a snapshot ordered by join time.
// Returns nil for an unknown or empty meeting.
func (r *Registry) ListParticipants(meetingID domain.MeetingID) []domain.Participant {
	r.mu.RLock()
	entry, ok := r.meetings[meetingID]
	r.mu.RUnlock()
	if !ok {
		return nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	if len(entry.participants) == 0 {
		return nil
	}
	snapshot := make([]domain.Participant, len(entry.participants))
	copy(snapshot, entry.participants)
	return snapshot
}

// getOrCreate resolves the entry for a meeting, creating it on first use.
// Fast path under the read lock, double-checked under the write lock.
func (r *Registry) getOrCreate(meetingID domain.MeetingID) *meetingEntry {
	r.mu.RLock()
	entry, ok := r.meetings[meetingID]
	r.mu.RUnlock()
	if ok {
		return entry
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok = r.meetings[meetingID]; !ok {
		entry = &meetingEntry{}
		r.meetings[meetingID] = entry
	}
	return entry
}
