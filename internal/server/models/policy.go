package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Policy is owned by exactly one partner and is never updated after creation.
type Policy struct {
	ID           int64           `json:"id"`
	PartnerID    int64           `json:"partnerId"`
	PolicyNumber string          `json:"policyNumber"`
	Amount       decimal.Decimal `json:"amount"`
	CreatedAtUTC time.Time       `json:"createdAtUtc"`
}

// PolicyInput is the add-policy form as submitted by an operator.
type PolicyInput struct {
	PartnerID    int64           `json:"partnerId"`
	PolicyNumber string          `json:"policyNumber"`
	Amount       decimal.Decimal `json:"amount"`
}

// PolicyForm is the add-policy form as presented, pre-filled with the
// owning partner's name.
type PolicyForm struct {
	PartnerID    int64           `json:"partnerId"`
	PartnerName  string          `json:"partnerName"`
	PolicyNumber string          `json:"policyNumber"`
	Amount       decimal.Decimal `json:"amount"`
}
