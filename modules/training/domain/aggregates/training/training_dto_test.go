package training

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/money"
	"github.com/sandesh-thapaa/admin-dashboard-for-main-website/pkg/validation"
)

func TestTraining_DecodesNullDiscount(t *testing.T) {
	var tr Training
	raw := `{"id":"t1","title":"Go","base_price":"2500.50","discount_type":null,"discount_value":null,"effective_price":"2500.50","mentors":[{"id":"m1","name":"Hari"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &tr))
	assert.Equal(t, money.Amount(2500.5), tr.BasePrice)
	assert.Empty(t, tr.DiscountType)
	assert.Zero(t, tr.DiscountValue)
	assert.Equal(t, []string{"Hari"}, tr.MentorNames())

	dto := FromTraining(tr, []string{"m1"})
	assert.Equal(t, DiscountPercentage, dto.DiscountType)
	assert.Equal(t, 2500.5, dto.BasePrice)
}

func TestFormDTO_Validation(t *testing.T) {
	dto := NewFormDTO()
	dto.Title = "Go"
	dto.BasePrice = -10

	res := validation.Validate(dto)
	assert.Equal(t, map[string]string{
		"title":      "Title must be at least 3 characters",
		"base_price": "Price cannot be negative",
	}, res.FieldErrors)

	dto.Title = "Go Bootcamp"
	dto.BasePrice = 0
	assert.True(t, validation.Validate(dto).Success)
}

func TestToPayload_CleansBenefits(t *testing.T) {
	dto := FormDTO{
		Title:         " Go Bootcamp ",
		BasePrice:     1200,
		DiscountType:  DiscountAmount,
		DiscountValue: 200,
		Benefits:      []string{"Certificate", "  ", "", " Mentorship "},
	}
	p := dto.ToPayload("https://cdn.test/a.png", nil)
	assert.Equal(t, "Go Bootcamp", p.Title)
	assert.Equal(t, []string{"Certificate", "Mentorship"}, p.Benefits)
	assert.Equal(t, []string{}, p.MentorIDs)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"title":"Go Bootcamp","description":"","photo_url":"https://cdn.test/a.png",
		"base_price":1200,"discount_type":"AMOUNT","discount_value":200,
		"benefits":["Certificate","Mentorship"],"mentor_ids":[]
	}`, string(raw))
}

func TestFormDTO_ToggleMentor(t *testing.T) {
	dto := NewFormDTO()
	dto.ToggleMentor("m1")
	dto.ToggleMentor("Sita")
	dto.ToggleMentor("m1")
	dto.ToggleMentor(" ")
	assert.Equal(t, []string{"Sita"}, dto.MentorIDs)
}
