package vote

import "github.com/blognest/core/internal/models"

// voteAction is what Cast does with the caller's vote document.
type voteAction int

const (
	actionInsert voteAction = iota
	actionMutate
	actionDelete
)

// nextAction decides the toggle outcome from the caller's existing vote (nil
// when none) and the requested type.
func nextAction(existing *string, requested string) (voteAction, error) {
	if requested != models.VoteLike && requested != models.VoteDislike {
		return 0, ErrInvalidType
	}
	switch {
	case existing == nil:
		return actionInsert, nil
	case *existing == requested:
		return actionDelete, nil
	default:
		return actionMutate, nil
	}
}
