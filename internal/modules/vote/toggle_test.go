package vote

import (
	"testing"

	"github.com/blognest/core/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestNextAction(t *testing.T) {
	like := models.VoteLike
	dislike := models.VoteDislike

	tests := []struct {
		name      string
		existing  *string
		requested string
		action    voteAction
	}{
		{"no prior vote inserts", nil, like, actionInsert},
		{"same type toggles off", &like, like, actionDelete},
		{"same dislike toggles off", &dislike, dislike, actionDelete},
		{"opposite type mutates", &like, dislike, actionMutate},
		{"opposite back mutates", &dislike, like, actionMutate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, err := nextAction(tt.existing, tt.requested)
			assert.NoError(t, err)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestNextActionRejectsUnknownType(t *testing.T) {
	for _, requested := range []string{"", "upvote", "LIKE"} {
		_, err := nextAction(nil, requested)
		assert.ErrorIs(t, err, ErrInvalidType)
	}
}
