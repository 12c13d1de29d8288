// Package ledger owns the campaign funding invariant: raised never exceeds
// goal, no matter how many donation requests race on one campaign. Every
// mutation of Campaign.Raised in the system goes through Reserve.
package ledger

import (
	"crowdfund/models"
	"errors"
	"math"

	"gorm.io/gorm"
)

// ReserveResult is the campaign state directly after a successful
// reservation.
type ReserveResult struct {
	Campaign  models.Campaign
	Fulfilled bool // raised reached goal with this reservation
}

// Reserve atomically claims headroom in the campaign's remaining goal for
// one contribution. It increments raised by amount only if the result stays
// within goal, with the condition evaluated by the database at write time.
//
// The initial read is a fast-path rejection only; the conditional UPDATE is
// the safety mechanism. When the update matches no row another request
// consumed the headroom first, so the campaign is re-read and the caller
// gets the fresh ceiling. Reserve never retries on its own.
func Reserve(db *gorm.DB, campaignID uint, amount float64) (*ReserveResult, error) {
	if campaignID == 0 || amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, ErrInvalidAmount
	}

	var campaign models.Campaign
	if err := db.First(&campaign, campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}

	if campaign.Raised >= campaign.Goal {
		return nil, ErrGoalFulfilled
	}
	if remaining := campaign.Goal - campaign.Raised; amount > remaining {
		return nil, &AmountExceedsRemainingError{Remaining: remaining}
	}

	res := db.Model(&models.Campaign{}).
		Where("id = ? AND raised + ? <= goal", campaignID, amount).
		UpdateColumn("raised", gorm.Expr("raised + ?", amount))
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Lost the race between read and write. Re-read so the rejection
		// carries the current remaining amount.
		if err := db.First(&campaign, campaignID).Error; err != nil {
			return nil, err
		}
		return nil, &AmountExceedsRemainingError{Remaining: campaign.Goal - campaign.Raised}
	}

	if err := db.First(&campaign, campaignID).Error; err != nil {
		return nil, err
	}

	return &ReserveResult{
		Campaign:  campaign,
		Fulfilled: campaign.Raised >= campaign.Goal,
	}, nil
}
