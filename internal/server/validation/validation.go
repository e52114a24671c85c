// Package validation checks operator input field by field before it reaches
// the services. Each field has a pure check returning an error message ("" when
// the value is acceptable); Partner and Policy compose them into one pass.
package validation

import (
	"strings"

	"github.com/dmitrijs2005/policydesk/internal/server/models"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Field names as exposed to clients.
const (
	FieldFirstName          = "firstName"
	FieldLastName           = "lastName"
	FieldPartnerNumber      = "partnerNumber"
	FieldNationalPIN        = "nationalPin"
	FieldPartnerType        = "partnerType"
	FieldCreatedByUserEmail = "createdByUserEmail"
	FieldIsForeign          = "isForeign"
	FieldExternalCode       = "externalCode"
	FieldGender             = "gender"
	FieldPartnerID          = "partnerId"
	FieldPolicyNumber       = "policyNumber"
	FieldAmount             = "amount"
)

const (
	MsgExternalCodeTaken = "External code must be unique"
	MsgPolicyNumberTaken = "Policy number must be unique"
)

// maxAmount is the first value that no longer fits NUMERIC(18,2).
var maxAmount = decimal.New(1, 16)

var validate = validator.New(validator.WithRequiredStructEnabled())

func check(value any, tag string) bool {
	return validate.Var(value, tag) == nil
}

func FirstName(v string) string {
	return name(v, "First name")
}

func LastName(v string) string {
	return name(v, "Last name")
}

func name(v, label string) string {
	if strings.TrimSpace(v) == "" {
		return label + " is required"
	}
	if !check(v, "min=2,max=255") {
		return label + " must be between 2 and 255 characters"
	}
	return ""
}

func PartnerNumber(v string) string {
	if v == "" {
		return "Partner number is required"
	}
	if !check(v, "len=20,number") {
		return "Partner number must contain exactly 20 digits"
	}
	return ""
}

// NationalPIN is optional; an empty value counts as absent.
func NationalPIN(v *string) string {
	if v == nil || *v == "" {
		return ""
	}
	if !check(*v, "len=11,number") {
		return "National PIN must be 11 digits"
	}
	return ""
}

func PartnerType(v models.PartnerType) string {
	if !v.Valid() {
		return "Partner type is required"
	}
	return ""
}

func CreatedByUserEmail(v string) string {
	if v == "" {
		return "Email is required"
	}
	if !check(v, "max=255") {
		return "Email must not exceed 255 characters"
	}
	if !check(v, "email") {
		return "Invalid email address"
	}
	return ""
}

// IsForeign is required on input even though the model field is a plain
// bool, so transports pass the decoded pointer here.
func IsForeign(v *bool) string {
	if v == nil {
		return "Is Foreign flag is required"
	}
	return ""
}

func ExternalCode(v string) string {
	if v == "" {
		return "External code is required"
	}
	if !check(v, "min=10,max=20") {
		return "External code must be between 10 and 20 characters"
	}
	return ""
}

func Gender(v models.Gender) string {
	if !v.Valid() {
		return "Gender is required"
	}
	return ""
}

func PartnerID(v int64) string {
	if v <= 0 {
		return "Partner is required"
	}
	return ""
}

func PolicyNumber(v string) string {
	if v == "" {
		return "Policy number is required"
	}
	if !check(v, "min=10,max=15") {
		return "Policy number must be between 10 and 15 characters"
	}
	return ""
}

func Amount(v decimal.Decimal) string {
	if !v.IsPositive() {
		return "Amount must be greater than 0"
	}
	if !v.Equal(v.Round(2)) {
		return "Amount must have at most 2 decimal places"
	}
	if v.GreaterThanOrEqual(maxAmount) {
		return "Amount is too large"
	}
	return ""
}

// Partner validates every operator-supplied field of p. ID, CreatedAtUTC and
// Policies are server-owned and ignored.
func Partner(p *models.Partner) Errors {
	var errs Errors
	errs.add(FieldFirstName, FirstName(p.FirstName))
	errs.add(FieldLastName, LastName(p.LastName))
	errs.add(FieldPartnerNumber, PartnerNumber(p.PartnerNumber))
	errs.add(FieldNationalPIN, NationalPIN(p.NationalPIN))
	errs.add(FieldPartnerType, PartnerType(p.PartnerType))
	errs.add(FieldCreatedByUserEmail, CreatedByUserEmail(p.CreatedByUserEmail))
	errs.add(FieldExternalCode, ExternalCode(p.ExternalCode))
	errs.add(FieldGender, Gender(p.Gender))
	return errs
}

func Policy(in models.PolicyInput) Errors {
	var errs Errors
	errs.add(FieldPartnerID, PartnerID(in.PartnerID))
	errs.add(FieldPolicyNumber, PolicyNumber(in.PolicyNumber))
	errs.add(FieldAmount, Amount(in.Amount))
	return errs
}
