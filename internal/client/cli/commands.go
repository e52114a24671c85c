package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/dmitrijs2005/policydesk/internal/client/client"
	"github.com/dmitrijs2005/policydesk/internal/common"
	"github.com/dmitrijs2005/policydesk/internal/server/validation"
	"github.com/shopspring/decimal"
)

const timeLayout = "2006-01-02 15:04"

func (a *App) List(ctx context.Context) error {
	partners, err := a.client.ListPartners(ctx)
	if err != nil {
		return err
	}

	if len(partners) == 0 {
		fmt.Fprintln(a.out, "No partners")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tID\tNAME\tPARTNER NUMBER\tTYPE\tFOREIGN\tGENDER\tCREATED (UTC)\tPOLICIES\tTOTAL")
	for _, p := range partners {
		mark := ""
		if p.RequiresHighlight {
			mark = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%t\t%s\t%s\t%d\t%s\n",
			mark, p.ID, p.FullName, p.PartnerNumber, p.PartnerType, p.IsForeign, p.Gender,
			p.CreatedAtUTC.Format(timeLayout), p.PolicyCount, p.TotalPolicyAmount.StringFixed(2))
	}
	return w.Flush()
}

func (a *App) Show(ctx context.Context, rawID string) error {
	id, err := parseID(rawID)
	if err != nil {
		return err
	}

	p, err := a.client.GetPartner(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Partner #%d: %s\n", p.ID, p.FullName())
	fmt.Fprintf(a.out, "  Partner number: %s\n", p.PartnerNumber)
	if p.NationalPIN != nil {
		fmt.Fprintf(a.out, "  National PIN:   %s\n", *p.NationalPIN)
	}
	if p.Address != nil {
		fmt.Fprintf(a.out, "  Address:        %s\n", *p.Address)
	}
	fmt.Fprintf(a.out, "  Type:           %s\n", p.PartnerType)
	fmt.Fprintf(a.out, "  Gender:         %s\n", p.Gender)
	fmt.Fprintf(a.out, "  Foreign:        %t\n", p.IsForeign)
	fmt.Fprintf(a.out, "  External code:  %s\n", p.ExternalCode)
	fmt.Fprintf(a.out, "  Created by:     %s at %s UTC\n", p.CreatedByUserEmail, p.CreatedAtUTC.Format(timeLayout))

	if len(p.Policies) == 0 {
		fmt.Fprintln(a.out, "  No policies")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tPOLICY NUMBER\tAMOUNT")
	for _, pol := range p.Policies {
		fmt.Fprintf(w, "  %d\t%s\t%s\n", pol.ID, pol.PolicyNumber, pol.Amount.StringFixed(2))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "  Total: %s in %d policies\n", p.TotalPolicyAmount().StringFixed(2), p.PolicyCount())
	return nil
}

func (a *App) AddPolicy(ctx context.Context, rawPartnerID, policyNumber, rawAmount string) error {
	partnerID, err := parseID(rawPartnerID)
	if err != nil {
		return err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
	if err != nil {
		return validation.Single(validation.FieldAmount, "Amount must be a number")
	}

	id, err := a.client.AddPolicy(ctx, partnerID, strings.TrimSpace(policyNumber), amount)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Policy #%d added to partner #%d\n", id, partnerID)
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	if err := a.client.Ping(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "OK")
	return nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, validation.Single(validation.FieldPartnerID, "Partner id must be a positive number")
	}
	return id, nil
}

// Describe renders err for an operator: one line per rejected field, plain
// wording for the common transport conditions.
func Describe(err error) string {
	if errs, ok := validation.As(err); ok {
		lines := make([]string, 0, len(errs))
		for _, e := range errs {
			lines = append(lines, fmt.Sprintf("%s: %s", e.Field, e.Message))
		}
		return strings.Join(lines, "\n")
	}
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return "partner not found"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable"
	}
	return err.Error()
}
