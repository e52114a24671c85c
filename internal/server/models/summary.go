package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Highlight thresholds. Both comparisons are strict: a partner with exactly
// HighlightPolicyCount policies or exactly HighlightAmount in total is not
// highlighted.
const HighlightPolicyCount = 5

var HighlightAmount = decimal.NewFromInt(5000)

func RequiresHighlight(policyCount int, total decimal.Decimal) bool {
	return policyCount > HighlightPolicyCount || total.GreaterThan(HighlightAmount)
}

// PartnerSummary is one row of the partner list, aggregated over the
// partner's policies.
type PartnerSummary struct {
	ID                int64           `json:"id"`
	FullName          string          `json:"fullName"`
	PartnerNumber     string          `json:"partnerNumber"`
	NationalPIN       *string         `json:"nationalPin,omitempty"`
	PartnerType       PartnerType     `json:"partnerType"`
	CreatedAtUTC      time.Time       `json:"createdAtUtc"`
	IsForeign         bool            `json:"isForeign"`
	Gender            Gender          `json:"gender"`
	PolicyCount       int             `json:"policyCount"`
	TotalPolicyAmount decimal.Decimal `json:"totalPolicyAmount"`
	RequiresHighlight bool            `json:"requiresHighlight"`
}
