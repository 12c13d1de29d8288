package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Donation is an immutable record of one accepted contribution. One row is
// created per successful reservation; rows are never updated or deleted.
type Donation struct {
	gorm.Model
	Amount     float64        `gorm:"not null" json:"amount"`
	CampaignID uint           `gorm:"not null;index" json:"campaignId"`
	DonorID    uint           `gorm:"not null;index" json:"donorId"`
	PaymentID  string         `gorm:"type:varchar(100);index" json:"paymentId,omitempty"` // gateway payment id, empty for direct donations
	Payload    datatypes.JSON `json:"-"`                                                  // raw gateway verify payload, null for direct donations

	Campaign Campaign `gorm:"foreignKey:CampaignID" json:"-"`
	Donor    User     `gorm:"foreignKey:DonorID" json:"-"`
}
