package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoom_HasMember(t *testing.T) {
	req := require.New(t)

	room := Room{
		ID:      "r1",
		Owner:   "u1",
		Members: []UserID{"u2", "u3"},
	}

	// The owner counts as a member
	req.True(room.HasMember("u1"))
	req.True(room.HasMember("u2"))
	req.True(room.HasMember("u3"))
	req.False(room.HasMember("u9"))
}
