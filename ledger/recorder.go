package ledger

import (
	"crowdfund/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Contribution is one donation attempt against a campaign. PaymentID and
// Payload are set only on the gateway-verified path.
type Contribution struct {
	CampaignID uint
	DonorID    uint
	Amount     float64
	PaymentID  string
	Payload    datatypes.JSON
}

// DonationResult is returned to the entry points after a contribution has
// been reserved and recorded.
type DonationResult struct {
	Receipt   models.Receipt
	Raised    float64
	Fulfilled bool
}

// Record persists the donation history for a reservation that already
// succeeded: one Donation row and one Receipt row with a unique transaction
// id. It does no goal validation of its own; Reserve is the only authority
// on headroom.
func Record(db *gorm.DB, campaign *models.Campaign, contrib Contribution) (*models.Receipt, error) {
	donation := models.Donation{
		Amount:     contrib.Amount,
		CampaignID: contrib.CampaignID,
		DonorID:    contrib.DonorID,
		PaymentID:  contrib.PaymentID,
		Payload:    contrib.Payload,
	}
	if err := db.Create(&donation).Error; err != nil {
		return nil, err
	}

	receipt := models.Receipt{
		DonationID:    donation.ID,
		DonorID:       contrib.DonorID,
		CampaignID:    contrib.CampaignID,
		CampaignTitle: campaign.Title,
		Amount:        contrib.Amount,
		PaymentID:     contrib.PaymentID,
		Status:        models.ReceiptStatusSuccess,
	}
	if err := db.Create(&receipt).Error; err != nil {
		return nil, err
	}

	return &receipt, nil
}

// Donate is the single path shared by the direct and the gateway-verified
// entry points: reserve headroom, then record the donation and its receipt.
// Both steps run in one transaction, so a failed insert rolls the
// reservation back and no raised increment survives without its Donation
// row.
func Donate(db *gorm.DB, contrib Contribution) (*DonationResult, error) {
	var result *DonationResult

	err := db.Transaction(func(tx *gorm.DB) error {
		reserved, err := Reserve(tx, contrib.CampaignID, contrib.Amount)
		if err != nil {
			return err
		}

		receipt, err := Record(tx, &reserved.Campaign, contrib)
		if err != nil {
			return err
		}

		result = &DonationResult{
			Receipt:   *receipt,
			Raised:    reserved.Campaign.Raised,
			Fulfilled: reserved.Fulfilled,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
