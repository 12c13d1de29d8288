package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptStatus defines the status of a receipt
type ReceiptStatus string

const (
	ReceiptStatusSuccess ReceiptStatus = "success"
	ReceiptStatusPending ReceiptStatus = "pending"
	ReceiptStatusFailed  ReceiptStatus = "failed"
)

// Receipt is the uniquely-identified confirmation record issued for one
// completed donation. One receipt per donation.
type Receipt struct {
	gorm.Model
	DonationID    uint          `gorm:"not null;uniqueIndex" json:"donationId"`
	DonorID       uint          `gorm:"not null;index" json:"donorId"`
	CampaignID    uint          `gorm:"not null;index" json:"campaignId"`
	CampaignTitle string        `gorm:"type:varchar(255)" json:"campaignTitle"`
	Amount        float64       `gorm:"not null" json:"amount"`
	TransactionID string        `gorm:"type:varchar(64);uniqueIndex" json:"transactionId"`
	PaymentID     string        `gorm:"type:varchar(100)" json:"paymentId,omitempty"`
	Status        ReceiptStatus `gorm:"type:varchar(20);default:'success'" json:"status"`
	DonationDate  time.Time     `gorm:"not null" json:"donationDate"`

	Donation Donation `gorm:"foreignKey:DonationID" json:"-"`
	Donor    User     `gorm:"foreignKey:DonorID" json:"-"`
	Campaign Campaign `gorm:"foreignKey:CampaignID" json:"-"`
}

// BeforeCreate assigns the human-referenceable transaction id and stamps the
// donation date when the caller has not set them.
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.TransactionID == "" {
		r.TransactionID = NewTransactionID()
	}
	if r.DonationDate.IsZero() {
		r.DonationDate = time.Now()
	}
	return nil
}

// NewTransactionID builds a receipt transaction id of the form
// RCP-<millis>-<random>.
func NewTransactionID() string {
	random := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
	return fmt.Sprintf("RCP-%d-%s", time.Now().UnixMilli(), random)
}
