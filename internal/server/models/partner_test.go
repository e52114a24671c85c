package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policiesOf(amounts ...string) []*Policy {
	out := make([]*Policy, 0, len(amounts))
	for i, a := range amounts {
		out = append(out, &Policy{ID: int64(i + 1), Amount: decimal.RequireFromString(a)})
	}
	return out
}

func repeat(n int, amount string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = amount
	}
	return out
}

func TestRequiresHighlight(t *testing.T) {
	tests := []struct {
		name  string
		count int
		total string
		want  bool
	}{
		{name: "nothing", count: 0, total: "0", want: false},
		{name: "boundary count and amount", count: 5, total: "5000.00", want: false},
		{name: "count above threshold", count: 6, total: "600", want: true},
		{name: "amount above threshold", count: 2, total: "6000", want: true},
		{name: "amount just above", count: 1, total: "5000.01", want: true},
		{name: "both above", count: 10, total: "100000", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RequiresHighlight(tt.count, decimal.RequireFromString(tt.total)))
		})
	}
}

func TestPartner_DerivedValues(t *testing.T) {
	t.Run("no policies", func(t *testing.T) {
		p := &Partner{FirstName: "John", LastName: "Doe"}
		assert.Equal(t, "John Doe", p.FullName())
		assert.Equal(t, 0, p.PolicyCount())
		assert.True(t, p.TotalPolicyAmount().Equal(decimal.Zero))
		assert.False(t, p.RequiresHighlight())
	})

	t.Run("six policies of 100", func(t *testing.T) {
		p := &Partner{Policies: policiesOf(repeat(6, "100")...)}
		assert.Equal(t, 6, p.PolicyCount())
		assert.Equal(t, "600", p.TotalPolicyAmount().String())
		assert.True(t, p.RequiresHighlight())
	})

	t.Run("two policies totalling 6000", func(t *testing.T) {
		p := &Partner{Policies: policiesOf("2500.00", "3500.00")}
		assert.Equal(t, 2, p.PolicyCount())
		assert.True(t, p.TotalPolicyAmount().Equal(decimal.NewFromInt(6000)))
		assert.True(t, p.RequiresHighlight())
	})

	t.Run("five policies totalling exactly 5000", func(t *testing.T) {
		p := &Partner{Policies: policiesOf(repeat(5, "1000.00")...)}
		assert.False(t, p.RequiresHighlight())
	})
}

func TestPartner_MarshalJSON_IncludesDerivedValues(t *testing.T) {
	p := Partner{ID: 3, FirstName: "Ana", LastName: "Lee", Policies: policiesOf(repeat(6, "100.00")...)}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(3), got["id"])
	assert.Equal(t, "Ana Lee", got["fullName"])
	assert.Equal(t, float64(6), got["policyCount"])
	assert.Equal(t, "600", got["totalPolicyAmount"])
	assert.Equal(t, true, got["requiresHighlight"])
	assert.Len(t, got["policies"], 6)

	var back Partner
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "Ana", back.FirstName)
	assert.Equal(t, 6, back.PolicyCount())
}

func TestPartner_Normalize(t *testing.T) {
	blank := "   "
	addr := "  Ilica 1  "
	p := &Partner{
		FirstName:          "  John ",
		LastName:           " Doe",
		Address:            &addr,
		PartnerNumber:      " 12345678901234567890 ",
		NationalPIN:        &blank,
		CreatedByUserEmail: " test@example.com ",
		ExternalCode:       " EXT-0000000001 ",
		Gender:             " m ",
	}

	p.Normalize()

	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	require.NotNil(t, p.Address)
	assert.Equal(t, "Ilica 1", *p.Address)
	assert.Equal(t, "12345678901234567890", p.PartnerNumber)
	assert.Nil(t, p.NationalPIN)
	assert.Equal(t, "test@example.com", p.CreatedByUserEmail)
	assert.Equal(t, "EXT-0000000001", p.ExternalCode)
	assert.Equal(t, GenderMale, p.Gender)

	empty := ""
	p = &Partner{Address: &empty}
	p.Normalize()
	assert.Nil(t, p.Address)
}

func TestPartner_Summary(t *testing.T) {
	pin := "12345678901"
	p := &Partner{
		ID:            7,
		FirstName:     "Ana",
		LastName:      "Horvat",
		PartnerNumber: "12345678901234567890",
		NationalPIN:   &pin,
		PartnerType:   PartnerTypeBusiness,
		IsForeign:     true,
		Gender:        GenderFemale,
		Policies:      policiesOf("1500.50", "10"),
	}

	s := p.Summary()
	assert.Equal(t, int64(7), s.ID)
	assert.Equal(t, "Ana Horvat", s.FullName)
	assert.Equal(t, &pin, s.NationalPIN)
	assert.Equal(t, 2, s.PolicyCount)
	assert.Equal(t, "1510.5", s.TotalPolicyAmount.String())
	assert.False(t, s.RequiresHighlight)
	assert.True(t, s.IsForeign)
	assert.Equal(t, GenderFemale, s.Gender)
}

func TestEnums(t *testing.T) {
	assert.True(t, PartnerTypePersonal.Valid())
	assert.True(t, PartnerTypeBusiness.Valid())
	assert.False(t, PartnerType(0).Valid())
	assert.Equal(t, "Business", PartnerTypeBusiness.String())
	assert.Equal(t, "Unknown", PartnerType(9).String())

	assert.True(t, GenderMale.Valid())
	assert.True(t, GenderUnspecified.Valid())
	assert.False(t, Gender("X").Valid())
	assert.False(t, Gender("").Valid())
}
