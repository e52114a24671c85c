package http

import (
	"net/http"
	"strings"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"github.com/shopspring/decimal"
)

type partnerRequest struct {
	FirstName          string             `json:"firstName"`
	LastName           string             `json:"lastName"`
	Address            *string            `json:"address"`
	PartnerNumber      string             `json:"partnerNumber"`
	NationalPIN        *string            `json:"nationalPin"`
	PartnerType        models.PartnerType `json:"partnerType"`
	CreatedByUserEmail string             `json:"createdByUserEmail"`
	IsForeign          *bool              `json:"isForeign"`
	ExternalCode       string             `json:"externalCode"`
	Gender             models.Gender      `json:"gender"`
}

func (req *partnerRequest) model() *models.Partner {
	p := &models.Partner{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Address:            req.Address,
		PartnerNumber:      req.PartnerNumber,
		NationalPIN:        req.NationalPIN,
		PartnerType:        req.PartnerType,
		CreatedByUserEmail: req.CreatedByUserEmail,
		ExternalCode:       req.ExternalCode,
		Gender:             req.Gender,
	}
	if req.IsForeign != nil {
		p.IsForeign = *req.IsForeign
	}
	p.Normalize()
	return p
}

type policyRequest struct {
	PolicyNumber string          `json:"policyNumber"`
	Amount       decimal.Decimal `json:"amount"`
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *HTTPServer) handleListPartners(w http.ResponseWriter, r *http.Request) {
	list, err := s.admin.ListPartners(r.Context())
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *HTTPServer) handleGetPartner(w http.ResponseWriter, r *http.Request) {
	id, ok := partnerIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	p, err := s.admin.GetPartner(r.Context(), id)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *HTTPServer) handleCreatePartner(w http.ResponseWriter, r *http.Request) {
	var req partnerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p := req.model()
	if msg := validation.IsForeign(req.IsForeign); msg != "" {
		errs := append(validation.Single(validation.FieldIsForeign, msg), validation.Partner(p)...)
		writeJSON(w, http.StatusUnprocessableEntity, fieldErrorsResponse{Errors: errs})
		return
	}

	id, err := s.admin.CreatePartner(r.Context(), p)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: id})
}

func (s *HTTPServer) handlePolicyForm(w http.ResponseWriter, r *http.Request) {
	id, ok := partnerIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	form, err := s.admin.PolicyForm(r.Context(), id)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, form)
}

func (s *HTTPServer) handleAddPolicy(w http.ResponseWriter, r *http.Request) {
	id, ok := partnerIDParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid partner id")
		return
	}

	var req policyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	policyID, err := s.admin.AddPolicy(r.Context(), models.PolicyInput{
		PartnerID:    id,
		PolicyNumber: strings.TrimSpace(req.PolicyNumber),
		Amount:       req.Amount,
	})
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, idResponse{ID: policyID})
}

func (s *HTTPServer) handleExportPartners(w http.ResponseWriter, r *http.Request) {
	if s.exporter == nil {
		writeError(w, http.StatusServiceUnavailable, "report storage is not configured")
		return
	}

	rep, err := s.exporter.ExportPartners(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "report export failed", "error", err)
		writeError(w, http.StatusBadGateway, "report export failed")
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}
