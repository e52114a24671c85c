// Package models defines the partner and policy records persisted by the
// repositories and returned by the services.
package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PartnerType is the closed set of partner kinds, stored as partner_type_id.
type PartnerType int

const (
	PartnerTypePersonal PartnerType = 1
	PartnerTypeBusiness PartnerType = 2
)

func (t PartnerType) Valid() bool {
	return t == PartnerTypePersonal || t == PartnerTypeBusiness
}

func (t PartnerType) String() string {
	switch t {
	case PartnerTypePersonal:
		return "Personal"
	case PartnerTypeBusiness:
		return "Business"
	default:
		return "Unknown"
	}
}

// Gender is stored as a single character.
type Gender string

const (
	GenderMale        Gender = "M"
	GenderFemale      Gender = "F"
	GenderUnspecified Gender = "N"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderUnspecified
}

// Partner is a policyholder. Policies is only populated by
// GetWithPolicies; it is never written with the partner row.
type Partner struct {
	ID                 int64       `json:"id"`
	FirstName          string      `json:"firstName"`
	LastName           string      `json:"lastName"`
	Address            *string     `json:"address,omitempty"`
	PartnerNumber      string      `json:"partnerNumber"`
	NationalPIN        *string     `json:"nationalPin,omitempty"`
	PartnerType        PartnerType `json:"partnerType"`
	CreatedAtUTC       time.Time   `json:"createdAtUtc"`
	CreatedByUserEmail string      `json:"createdByUserEmail"`
	IsForeign          bool        `json:"isForeign"`
	ExternalCode       string      `json:"externalCode"`
	Gender             Gender      `json:"gender"`
	Policies           []*Policy   `json:"policies"`
}

// MarshalJSON adds the derived fullName, policyCount, totalPolicyAmount and
// requiresHighlight values to the stored fields.
func (p Partner) MarshalJSON() ([]byte, error) {
	type partner Partner
	total := p.TotalPolicyAmount()
	return json.Marshal(struct {
		partner
		FullName          string          `json:"fullName"`
		PolicyCount       int             `json:"policyCount"`
		TotalPolicyAmount decimal.Decimal `json:"totalPolicyAmount"`
		RequiresHighlight bool            `json:"requiresHighlight"`
	}{
		partner:           partner(p),
		FullName:          p.FullName(),
		PolicyCount:       p.PolicyCount(),
		TotalPolicyAmount: total,
		RequiresHighlight: RequiresHighlight(p.PolicyCount(), total),
	})
}

// Normalize cleans operator input in place: text fields are trimmed, blank
// optional fields become nil and gender is upper-cased.
func (p *Partner) Normalize() {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Address = trimmedOrNil(p.Address)
	p.PartnerNumber = strings.TrimSpace(p.PartnerNumber)
	p.NationalPIN = trimmedOrNil(p.NationalPIN)
	p.CreatedByUserEmail = strings.TrimSpace(p.CreatedByUserEmail)
	p.ExternalCode = strings.TrimSpace(p.ExternalCode)
	p.Gender = Gender(strings.ToUpper(strings.TrimSpace(string(p.Gender))))
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

func (p *Partner) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Partner) PolicyCount() int {
	return len(p.Policies)
}

func (p *Partner) TotalPolicyAmount() decimal.Decimal {
	total := decimal.Zero
	for _, pol := range p.Policies {
		total = total.Add(pol.Amount)
	}
	return total
}

func (p *Partner) RequiresHighlight() bool {
	return RequiresHighlight(p.PolicyCount(), p.TotalPolicyAmount())
}

// Summary builds the list row for p from its loaded policies.
func (p *Partner) Summary() *PartnerSummary {
	total := p.TotalPolicyAmount()
	return &PartnerSummary{
		ID:                p.ID,
		FullName:          p.FullName(),
		PartnerNumber:     p.PartnerNumber,
		NationalPIN:       p.NationalPIN,
		PartnerType:       p.PartnerType,
		CreatedAtUTC:      p.CreatedAtUTC,
		IsForeign:         p.IsForeign,
		Gender:            p.Gender,
		PolicyCount:       p.PolicyCount(),
		TotalPolicyAmount: total,
		RequiresHighlight: RequiresHighlight(p.PolicyCount(), total),
	}
}
