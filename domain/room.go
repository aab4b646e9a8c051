package domain

import "time"

// Room is the chat room a meeting derives from. The coordination core
// only reads existence, membership and ownership; everything else about
// rooms belongs to the surrounding system.
type Room struct {
	ID        RoomID
	Owner     UserID
	Members   []UserID
	CreatedAt time.Time
}

// HasMember reports whether a user belongs to the room. The owner is
// always a member.
func (r Room) HasMember(userID UserID) bool {
	if r.Owner == userID {
		return true
	}
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}
