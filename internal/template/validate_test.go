package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateOrderUpdateDraft(t *testing.T) {
	d := Draft{
		Category:        CategoryUtility,
		Name:            "order_update",
		Language:        "en",
		BodyText:        "Your order {{1}} is out for delivery",
		FooterText:      "",
		Buttons:         []Button{},
		VariableSamples: map[string]string{"1": "A1023"},
	}
	res := DefaultRules().Validate(d)
	assert.True(t, res.Valid())
	assert.Empty(t, res)
	assert.NoError(t, res.Err())

	p := Build(d)
	require.Len(t, p.Components, 1)
	assert.Equal(t, ComponentBody, p.Components[0].Type)
	assert.Equal(t, [][]string{{"A1023"}}, p.Components[0].Example.BodyText)
}

func TestValidateCollectsFieldErrors(t *testing.T) {
	d := Draft{
		Category:   CategoryMarketing,
		Name:       "ab",
		Language:   "en",
		Header:     Header{Format: HeaderText, Text: "Hello {{1}}"},
		BodyText:   "Hello {{1}}, code {{3}}",
		FooterText: "Thanks {{1}}",
		ButtonType: ButtonsCallToAction,
		Buttons: []Button{
			{Type: SubtypePhoneNumber, Text: "Call", Value: "+15550001111"},
			{Type: SubtypePhoneNumber, Text: "Call", Value: "+15550002222"},
		},
	}
	res := DefaultRules().Validate(d)
	assert.Equal(t, []string{FieldBody, FieldButtons, FieldFooter, FieldHeader, FieldName, FieldSamples}, res.Fields())
	assert.Contains(t, res[FieldBody], "{{2}} is missing")
	assert.Contains(t, res[FieldButtons], "phone number")

	err := res.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name: Template name must be between 3 and 512 characters")
}

func TestValidateZeroDraft(t *testing.T) {
	res := DefaultRules().Validate(Draft{})
	assert.Equal(t, []string{FieldBody, FieldCategory, FieldLanguage, FieldName}, res.Fields())
}

func TestValidateCategoryStep(t *testing.T) {
	r := DefaultRules()
	assert.Contains(t, r.ValidateCategoryStep(Draft{})[FieldCategory], "Select")
	assert.Contains(t, r.ValidateCategoryStep(Draft{Category: "PROMO"})[FieldCategory], "Unknown")
	assert.True(t, r.ValidateCategoryStep(Draft{Category: CategoryAuthentication}).Valid())
}

func TestValidateHeaderPlaceholderSequence(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		body    string
		samples map[string]string
		wantErr string
	}{
		{
			name:    "header index past body indices",
			header:  "Order {{3}} update",
			body:    "Your order is out for delivery today",
			samples: map[string]string{"3": "A1023"},
			wantErr: "{{1}} is missing",
		},
		{
			name:    "header index zero",
			header:  "Order {{0}} update",
			body:    "Your order is out for delivery today",
			samples: map[string]string{"0": "A1023"},
			wantErr: "must start at {{1}}",
		},
		{
			name:    "header continues body",
			header:  "Order {{2}} update",
			body:    "Hi {{1}}, your order is out for delivery today",
			samples: map[string]string{"1": "Ana", "2": "A1023"},
		},
		{
			name:    "header shares body index",
			header:  "Order {{1}} update",
			body:    "Your order {{1}} is out for delivery today",
			samples: map[string]string{"1": "A1023"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDraft(CategoryUtility).
				WithName("order_update").
				WithLanguage("en").
				WithHeader(Header{Format: HeaderText, Text: tt.header}).
				WithBody(tt.body)
			for k, v := range tt.samples {
				d = d.WithSample(k, v)
			}
			res := DefaultRules().Validate(d)
			if tt.wantErr == "" {
				assert.True(t, res.Valid(), res)
				return
			}
			assert.Contains(t, res[FieldHeader], tt.wantErr)
		})
	}
}
