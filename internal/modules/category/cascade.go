package category

import "errors"

// cascadePlan is what Delete decided to do with the blogs tagged by the
// category being removed.
type cascadePlan int

const (
	// planProceed deletes the category alone; no blogs reference it.
	planProceed cascadePlan = iota
	// planRequiresAction blocks the delete until the client picks an action.
	planRequiresAction
	// planDeleteBlogs bulk-deletes the tagged blogs first.
	planDeleteBlogs
	// planTransfer re-tags the blogs to another category first.
	planTransfer
)

var ErrInvalidCascadeAction = errors.New("Invalid action, must be 'delete' or 'transfer'")

var ErrTransferToRequired = errors.New("transferTo is required for the transfer action")

// resolveCascade maps (blog count, requested action) to a plan. The action
// is only consulted when blogs exist; a clean category deletes regardless of
// what the client sent.
func resolveCascade(blogCount int64, action, transferTo string) (cascadePlan, error) {
	if blogCount == 0 {
		return planProceed, nil
	}
	switch action {
	case "":
		return planRequiresAction, nil
	case "delete":
		return planDeleteBlogs, nil
	case "transfer":
		if transferTo == "" {
			return 0, ErrTransferToRequired
		}
		return planTransfer, nil
	default:
		return 0, ErrInvalidCascadeAction
	}
}
