package services

import (
	"context"

	"meet-lab/domain"
	"meet-lab/runtime"
)

type IMeetingService interface {
	CreateMeeting(roomID domain.RoomID, principal domain.Principal) (domain.Meeting, error)
	InsertParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID, sessionID domain.SessionID, settings domain.JoinSettings, principal domain.Principal) error
	RemoveParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID, sessionID domain.SessionID, principal domain.Principal) error
	ListParticipants(meetingID domain.MeetingID, principal domain.Principal) ([]domain.Participant, error)
}

type MeetingService struct {
	coordinator *runtime.Coordinator
}

func NewMeetingService(c *runtime.Coordinator) *MeetingService {
	return &MeetingService{coordinator: c}
}

func (s *MeetingService) CreateMeeting(roomID domain.RoomID, principal domain.Principal) (domain.Meeting, error) {
	return s.coordinator.CreateMeeting(roomID, principal)
}

func (s *MeetingService) InsertParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID,
	sessionID domain.SessionID, settings domain.JoinSettings, principal domain.Principal) error {
	return s.coordinator.InsertParticipant(ctx, meetingID, userID, sessionID, settings, principal)
}

func (s *MeetingService) RemoveParticipant(ctx context.Context, meetingID domain.MeetingID, userID domain.UserID,
	sessionID domain.SessionID, principal domain.Principal) error {
	return s.coordinator.RemoveParticipant(ctx, meetingID, userID, sessionID, principal)
}

func (s *MeetingService) ListParticipants(meetingID domain.MeetingID, principal domain.Principal) ([]domain.Participant, error) {
	return s.coordinator.ListParticipants(meetingID, principal)
}
