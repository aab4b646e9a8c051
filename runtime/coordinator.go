// Package runtime hosts the meeting coordination core: the session
// registry and the coordinator state machine built on top of it.
// It orchestrates collaborators without containing transport logic.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/domain/event"
	"meet-lab/errors"
)

// Coordinator drives the per-meeting state machine:
// INACTIVE -> ACTIVE -> INACTIVE for meetings, ABSENT -> JOINED -> ABSENT
// for participants. The registry critical section covers only the local
// state transition and its first/last flag; bridge and broker I/O always
// happen outside of it, with explicit compensation when the bridge fails.
type Coordinator struct {
	log      *slog.Logger
	registry contract.IRegistry
	rooms    contract.RoomDirectory
	bridge   contract.VideoBridge
	meetings contract.IMeetingRepository
	outbound chan<- contract.Publication
}

func NewCoordinator(log *slog.Logger, registry contract.IRegistry, rooms contract.RoomDirectory,
	bridge contract.VideoBridge, meetings contract.IMeetingRepository,
	outbound chan<- contract.Publication) *Coordinator {
	return &Coordinator{
		log:      log,
		registry: registry,
		rooms:    rooms,
		bridge:   bridge,
		meetings: meetings,
		outbound: outbound,
	}
}

// CreateMeeting materializes the (single) meeting of a room, INACTIVE.
// The room must exist and the principal must be one of its members.
func (c *Coordinator) CreateMeeting(roomID domain.RoomID, principal domain.Principal) (domain.Meeting, error) {
	if err := c.authorize(roomID, principal, false); err != nil {
		return domain.Meeting{}, err
	}
	return c.meetings.Create(roomID)
}

// InsertParticipant admits a (user, session) pair into a meeting.
//
// Order matters: the registry mutation commits first, then bridge calls
// run outside the critical section, and any bridge failure rolls the
// registry back so the operation is never partially applied. The joined
// event is dispatched asynchronously and cannot fail the join.
func (c *Coordinator) InsertParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID,
	sessionID domain.SessionID, settings domain.JoinSettings, principal domain.Principal) error {
	if principal.User != userID {
		return fmt.Errorf("%w: joining on behalf of another user", errors.ErrForbidden)
	}

	meeting, err := c.meetings.Get(meetingID)
	if err != nil {
		return err
	}
	if err = c.authorize(meeting.Room, principal, settings.OwnersOnly); err != nil {
		return err
	}

	res := c.registry.TryAddParticipant(meetingID, userID, sessionID, settings.Media)
	if !res.Added {
		return fmt.Errorf("%w: session %s already joined", errors.ErrConflict, sessionID)
	}

	if res.WasFirst {
		if err = c.bridge.CreateMeeting(ctx, meetingID); err != nil {
			c.registry.RemoveParticipant(meetingID, sessionID)
			return err
		}
	}

	if err = c.bridge.JoinSession(ctx, meetingID, userID, sessionID, settings.Media.Audio, settings.Media.Video); err != nil {
		if res.WasFirst {
			// Best effort teardown of the bridge meeting we just created.
			if cleanupErr := c.bridge.DeleteMeeting(ctx, meetingID); cleanupErr != nil {
				c.log.Warn("Bridge meeting cleanup failed after join failure",
					"meeting", meetingID, "error", cleanupErr)
			}
		}
		c.registry.RemoveParticipant(meetingID, sessionID)
		return err
	}

	if res.WasFirst {
		if err = c.meetings.SetState(meetingID, domain.MeetingActive); err != nil {
			c.log.Warn("Recording meeting activation failed", "meeting", meetingID, "error", err)
		}
	}

	c.dispatch(contract.Publication{
		Recipients: joinRecipients(c.registry.ListParticipants(meetingID), userID),
		Event: event.ParticipantJoined{
			Meeting:   meetingID,
			User:      userID,
			SessionID: sessionID,
			Media:     settings.Media,
			At:        time.Now().UTC(),
		},
	})
	return nil
}

// RemoveParticipant removes the caller's session from a meeting. An empty
// sessionID removes every session the user holds there. Removing another
// user requires room ownership.
//
// Bridge failures during leave are logged and swallowed: locally the user
// has left no matter what the bridge cleanup did.
func (c *Coordinator) RemoveParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID,
	sessionID domain.SessionID, principal domain.Principal) error {
	meeting, err := c.meetings.Get(meetingID)
	if err != nil {
		return err
	}
	if err = c.authorize(meeting.Room, principal, false); err != nil {
		return err
	}
	if principal.User != userID {
		owner, ownerErr := c.rooms.IsRoomOwner(meeting.Room, principal.User)
		if ownerErr != nil {
			return fmt.Errorf("%w: room directory: %v", errors.ErrDependency, ownerErr)
		}
		if !owner {
			return fmt.Errorf("%w: only room owners may remove other participants", errors.ErrForbidden)
		}
	}

	targets := targetSessions(c.registry.ListParticipants(meetingID), userID, sessionID)
	if len(targets) == 0 {
		return fmt.Errorf("%w: no joined session for user %s", errors.ErrNotFound, userID)
	}

	removed := 0
	wasLast := false
	for _, sid := range targets {
		res := c.registry.RemoveParticipant(meetingID, sid)
		if !res.Removed {
			// Lost a race with another leave for the same session.
			continue
		}
		removed++
		wasLast = wasLast || res.WasLast
		if leaveErr := c.bridge.LeaveSession(ctx, meetingID, sid); leaveErr != nil {
			c.log.Warn("Bridge session leave failed",
				"meeting", meetingID, "session", sid, "error", leaveErr)
		}
	}
	if removed == 0 {
		return fmt.Errorf("%w: no joined session for user %s", errors.ErrNotFound, userID)
	}

	if wasLast {
		if deleteErr := c.bridge.DeleteMeeting(ctx, meetingID); deleteErr != nil {
			c.log.Warn("Bridge meeting deletion failed on teardown",
				"meeting", meetingID, "error", deleteErr)
		}
		if stateErr := c.meetings.SetState(meetingID, domain.MeetingInactive); stateErr != nil {
			c.log.Warn("Recording meeting teardown failed", "meeting", meetingID, "error", stateErr)
		}
		if removed > 1 {
			// The leaver was multi-device: their own queue still needs
			// to observe the teardown.
			c.dispatch(contract.Publication{
				Recipients: []domain.UserID{userID},
				Event:      event.MeetingTeardown{Meeting: meetingID, User: userID, At: time.Now().UTC()},
			})
		}
		return nil
	}

	remaining := c.registry.ListParticipants(meetingID)
	c.dispatch(contract.Publication{
		Recipients: lo.Uniq(lo.Map(remaining, func(p domain.Participant, _ int) domain.UserID { return p.User })),
		Event: event.ParticipantLeft{
			Meeting:   meetingID,
			User:      userID,
			SessionID: sessionID,
			At:        time.Now().UTC(),
		},
	})
	return nil
}

// ListParticipants returns the join-ordered snapshot of a meeting,
// membership-checked against the principal.
func (c *Coordinator) ListParticipants(meetingID domain.MeetingID, principal domain.Principal) ([]domain.Participant, error) {
	meeting, err := c.meetings.Get(meetingID)
	if err != nil {
		return nil, err
	}
	if err = c.authorize(meeting.Room, principal, false); err != nil {
		return nil, err
	}
	return c.registry.ListParticipants(meetingID), nil
}

// authorize checks room existence and the principal's membership, plus
// ownership when the operation demands it.
func (c *Coordinator) authorize(roomID domain.RoomID, principal domain.Principal, ownersOnly bool) error {
	exists, err := c.rooms.RoomExists(roomID)
	if err != nil {
		return fmt.Errorf("%w: room directory: %v", errors.ErrDependency, err)
	}
	if !exists {
		return fmt.Errorf("%w: room %s", errors.ErrNotFound, roomID)
	}

	member, err := c.rooms.IsRoomMember(roomID, principal.User)
	if err != nil {
		return fmt.Errorf("%w: room directory: %v", errors.ErrDependency, err)
	}
	if !member {
		return fmt.Errorf("%w: user %s is not a member of room %s", errors.ErrForbidden, principal.User, roomID)
	}

	if ownersOnly {
		owner, err := c.rooms.IsRoomOwner(roomID, principal.User)
		if err != nil {
			return fmt.Errorf("%w: room directory: %v", errors.ErrDependency, err)
		}
		if !owner {
			return fmt.Errorf("%w: room %s is restricted to owners", errors.ErrForbidden, roomID)
		}
	}
	return nil
}

// dispatch hands a publication to the fan-out worker without blocking the
// caller. A full channel drops the publication: delivery is best effort
// and must never stall a join or leave.
func (c *Coordinator) dispatch(p contract.Publication) {
	if len(p.Recipients) == 0 {
		return
	}
	select {
	case c.outbound <- p:
	default:
		c.log.Warn(fmt.Sprintf("Outbound event channel full, dropping %s event for meeting %s",
			p.Event.Type(), p.Event.MeetingID()))
	}
}

// joinRecipients enumerates who must observe a join: every other current
// participant, and the joiner themselves when this join added a second
// device (their other sessions must reflect the new device state).
func joinRecipients(participants []domain.Participant, actor domain.UserID) []domain.UserID {
	var recipients []domain.UserID
	actorSessions := 0
	for _, p := range participants {
		if p.User == actor {
			actorSessions++
			continue
		}
		recipients = append(recipients, p.User)
	}
	if actorSessions > 1 {
		recipients = append(recipients, actor)
	}
	return lo.Uniq(recipients)
}

// targetSessions resolves which sessions a removal applies to: the one
// explicitly named (if it belongs to the user), or all of the user's
// sessions when none is named.
func targetSessions(participants []domain.Participant, userID domain.UserID, sessionID domain.SessionID) []domain.SessionID {
	var targets []domain.SessionID
	for _, p := range participants {
		if p.User != userID {
			continue
		}
		if sessionID == "" || p.Session == sessionID {
			targets = append(targets, p.Session)
		}
	}
	return targets
}
