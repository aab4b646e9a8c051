// Package transport exposes the meeting service over HTTP. It only
// shuttles DTOs and maps the error taxonomy to status codes; all
// semantics live in the coordination core.
package transport

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"meet-lab/contract"
	"meet-lab/domain"
	"meet-lab/errors"
	"meet-lab/services"
)

type Handler struct {
	meetings  services.IMeetingService
	publisher contract.EventPublisher
}

func NewHandler(meetings services.IMeetingService, publisher contract.EventPublisher) *Handler {
	return &Handler{meetings: meetings, publisher: publisher}
}

// Router wires the HTTP routes. The principal is taken from the
// X-User-ID header: token validation happens upstream of this service.
func (h *Handler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/health", h.health)
	router.POST("/rooms/:roomID/meeting", h.createMeeting)
	router.POST("/meetings/:meetingID/participants", h.join)
	router.DELETE("/meetings/:meetingID/participants/:userID", h.leave)
	router.GET("/meetings/:meetingID/participants", h.listParticipants)
	return router
}

type joinRequest struct {
	UserID      string `json:"userId" binding:"required"`
	SessionID   string `json:"sessionId" binding:"required"`
	Audio       bool   `json:"audio"`
	Video       bool   `json:"video"`
	ScreenShare bool   `json:"screenShare"`
	OwnersOnly  bool   `json:"ownersOnly"`
}

type participantResponse struct {
	UserID      string    `json:"userId"`
	SessionID   string    `json:"sessionId"`
	Audio       bool      `json:"audio"`
	Video       bool      `json:"video"`
	ScreenShare bool      `json:"screenShare"`
	JoinedAt    time.Time `json:"joinedAt"`
}

func (h *Handler) createMeeting(c *gin.Context) {
	principal, ok := principalOf(c)
	if !ok {
		return
	}

	meeting, err := h.meetings.CreateMeeting(domain.RoomID(c.Param("roomID")), principal)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":        meeting.ID,
		"room":      meeting.Room,
		"state":     meeting.State,
		"createdAt": meeting.CreatedAt,
	})
}

func (h *Handler) join(c *gin.Context) {
	principal, ok := principalOf(c)
	if !ok {
		return
	}

	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings := domain.JoinSettings{
		Media: domain.MediaFlags{
			Audio:       req.Audio,
			Video:       req.Video,
			ScreenShare: req.ScreenShare,
		},
		OwnersOnly: req.OwnersOnly,
	}
	err := h.meetings.InsertParticipant(c.Request.Context(),
		domain.MeetingID(c.Param("meetingID")),
		domain.UserID(req.UserID),
		domain.SessionID(req.SessionID),
		settings, principal)
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) leave(c *gin.Context) {
	principal, ok := principalOf(c)
	if !ok {
		return
	}

	err := h.meetings.RemoveParticipant(c.Request.Context(),
		domain.MeetingID(c.Param("meetingID")),
		domain.UserID(c.Param("userID")),
		domain.SessionID(c.Query("sessionId")),
		principal)
	if err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) listParticipants(c *gin.Context) {
	principal, ok := principalOf(c)
	if !ok {
		return
	}

	participants, err := h.meetings.ListParticipants(domain.MeetingID(c.Param("meetingID")), principal)
	if err != nil {
		fail(c, err)
		return
	}

	response := make([]participantResponse, 0, len(participants))
	for _, p := range participants {
		response = append(response, participantResponse{
			UserID:      string(p.User),
			SessionID:   string(p.Session),
			Audio:       p.Media.Audio,
			Video:       p.Media.Video,
			ScreenShare: p.Media.ScreenShare,
			JoinedAt:    p.JoinedAt,
		})
	}
	c.JSON(http.StatusOK, response)
}

func (h *Handler) health(c *gin.Context) {
	if !h.publisher.Healthy(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"broker": "down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"broker": "up"})
}

func principalOf(c *gin.Context) (domain.Principal, bool) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing X-User-ID header"})
		return domain.Principal{}, false
	}
	return domain.Principal{User: domain.UserID(userID)}, true
}

// fail maps the error taxonomy to HTTP statuses:
// NotFound 404, Forbidden 403, Conflict 409, DependencyFailure 502.
func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case stderrors.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case stderrors.Is(err, errors.ErrForbidden):
		status = http.StatusForbidden
	case stderrors.Is(err, errors.ErrConflict):
		status = http.StatusConflict
	case stderrors.Is(err, errors.ErrDependency):
		status = http.StatusBadGateway
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
