package ledger

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount rejects a contribution before any storage access.
	ErrInvalidAmount = errors.New("invalid donation amount or campaign id")

	// ErrCampaignNotFound means the campaign id did not resolve.
	ErrCampaignNotFound = errors.New("campaign not found")

	// ErrGoalFulfilled means the campaign has already reached its goal.
	ErrGoalFulfilled = errors.New("campaign goal already fulfilled")
)

// AmountExceedsRemainingError rejects a contribution larger than the
// campaign's remaining headroom. Remaining carries the ceiling at the time
// the rejection was decided so the caller can show the updated limit.
type AmountExceedsRemainingError struct {
	Remaining float64
}

func (e *AmountExceedsRemainingError) Error() string {
	return fmt.Sprintf("you can only donate up to %g", e.Remaining)
}

// IsRejection reports whether err is a business-rule rejection rather than a
// storage failure. Rejections map to 400 responses; anything else is a 500.
func IsRejection(err error) bool {
	var exceeds *AmountExceedsRemainingError
	return errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrGoalFulfilled) ||
		errors.As(err, &exceeds)
}
