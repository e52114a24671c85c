package rpc

import (
	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/shopspring/decimal"
)

type ListPartnersRequest struct{}

type ListPartnersResponse struct {
	Partners []*models.PartnerSummary `json:"partners"`
}

type GetPartnerRequest struct {
	ID int64 `json:"id"`
}

type GetPartnerResponse struct {
	Partner *models.Partner `json:"partner"`
}

// CreatePartnerRequest carries IsForeign as a pointer so a missing flag can
// be told apart from false.
type CreatePartnerRequest struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Address            *string            `json:"address,omitempty"`
	PartnerNumber      string             `json:"partnerNumber"`
	NationalPIN        *string            `json:"nationalPin,omitempty"`
	PartnerType        models.PartnerType `json:"partnerType"`
	CreatedByUserEmail string             `json:"createdByUserEmail"`
	IsForeign          *bool              `json:"isForeign"`
	ExternalCode       string             `json:"externalCode"`
	Gender             models.Gender      `json:"gender"`
}

type CreatePartnerResponse struct {
	ID int64 `json:"id"`
}

type AddPolicyRequest struct {
	PartnerID    int64           `json:"partnerId"`
	PolicyNumber string          `json:"policyNumber"`
	Amount       decimal.Decimal `json:"amount"`
}

type AddPolicyResponse struct {
	ID int64 `json:"id"`
}

type PingRequest struct{}

type PingResponse struct {
	Status string `json:"status"`
}
