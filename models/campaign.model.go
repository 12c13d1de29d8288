package models

import (
	"time"

	"gorm.io/gorm"
)

// CampaignStatus defines the moderation state of a campaign
type CampaignStatus string

const (
	CampaignStatusPending  CampaignStatus = "pending"
	CampaignStatusApproved CampaignStatus = "approved"
	CampaignStatusRejected CampaignStatus = "rejected"
)

// Campaign is a fundraising project with a monetary goal and an
// accumulated raised amount. Raised may never exceed Goal; the check
// constraint enforces it at the storage layer and the ledger enforces it
// on every mutation path.
type Campaign struct {
	gorm.Model
	Title       string         `gorm:"not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	Goal        float64        `gorm:"not null" json:"goal"`
	Raised      float64        `gorm:"default:0;check:chk_raised_within_goal,raised <= goal" json:"raised"`
	CreatorID   *uint          `gorm:"index" json:"creatorId"`
	Creator     *User          `gorm:"foreignKey:CreatorID;constraint:OnDelete:SET NULL" json:"-"`
	Deadline    time.Time      `json:"deadline"`
	Category    string         `gorm:"type:varchar(50);default:'General'" json:"category"`
	Status      CampaignStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
}
