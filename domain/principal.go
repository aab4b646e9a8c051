package domain

// Principal identifies the authenticated caller of a coordinator operation.
// It is passed explicitly into each call, there is no ambient request context.
// Authorization against room membership/ownership is resolved through the
// RoomDirectory collaborator, not stored here.
type Principal struct {
	User UserID
}
