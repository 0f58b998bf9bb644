package template

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func orderUpdateDraft() Draft {
	return NewDraft(CategoryUtility).
		WithName("order_update").
		WithLanguage("en").
		WithBody("Your order {{1}} is out for delivery").
		WithSample("1", "A1023")
}

func TestBuildBodyOnly(t *testing.T) {
	d := orderUpdateDraft()
	require.True(t, DefaultRules().Validate(d).Valid())

	p := Build(d)
	assert.Equal(t, "order_update", p.Name)
	assert.Equal(t, CategoryUtility, p.Category)
	assert.Equal(t, "en", p.Language)
	require.Len(t, p.Components, 1)
	body := p.Components[0]
	assert.Equal(t, ComponentBody, body.Type)
	assert.Equal(t, "Your order {{1}} is out for delivery", body.Text)
	require.NotNil(t, body.Example)
	assert.Equal(t, [][]string{{"A1023"}}, body.Example.BodyText)
}

func TestBuildFullTemplate(t *testing.T) {
	d := NewDraft(CategoryMarketing).
		WithName("Spring Sale").
		WithLanguage("en_US").
		WithHeader(Header{Format: HeaderText, Text: "Hi {{1}}, welcome"}).
		WithBody("Hi {{1}}, your coupon {{2}} is ready for you today").
		WithFooter("Reply STOP to opt out").
		WithButtons(ButtonsCallToAction,
			Button{Type: SubtypePhoneNumber, Text: "Call us", Value: "+1 555-000-1111"},
			Button{Type: SubtypeURL, Text: "Shop", Value: "https://shop.com/{{1}}", Example: "sku123"},
		).
		WithSample("2", "SPRING10").
		WithSample("1", "Ana")
	require.True(t, DefaultRules().Validate(d).Valid(), DefaultRules().Validate(d))

	want := Payload{
		Name:     "spring_sale",
		Category: CategoryMarketing,
		Language: "en_US",
		Components: []Component{
			{Type: ComponentHeader, Format: HeaderText, Text: "Hi {{1}}, welcome", Example: &Example{HeaderText: [][]string{{"Ana"}}}},
			{Type: ComponentBody, Text: "Hi {{1}}, your coupon {{2}} is ready for you today", Example: &Example{BodyText: [][]string{{"Ana", "SPRING10"}}}},
			{Type: ComponentFooter, Text: "Reply STOP to opt out"},
			{Type: ComponentButtons, Buttons: []PayloadButton{
				{Type: SubtypePhoneNumber, Text: "Call us", PhoneNumber: "+15550001111"},
				{Type: SubtypeURL, Text: "Shop", URL: "https://shop.com/{{1}}", Example: []string{"sku123"}},
			}},
		},
	}
	assert.Equal(t, want, Build(d))
}

func TestBuildMediaHeader(t *testing.T) {
	d := orderUpdateDraft().WithHeader(Header{Format: HeaderImage, MediaID: "4::aW1hZ2U="})
	p := Build(d)
	require.Len(t, p.Components, 2)
	assert.Equal(t, Component{
		Type:    ComponentHeader,
		Format:  HeaderImage,
		Example: &Example{HeaderHandle: []string{"4::aW1hZ2U="}},
	}, p.Components[0])

	p = Build(d.WithHeader(Header{Format: HeaderDocument}))
	assert.Nil(t, p.Components[0].Example)
	assert.Equal(t, HeaderDocument, p.Components[0].Format)
}

func TestBuildButtonWireShapes(t *testing.T) {
	auth := NewDraft(CategoryAuthentication).
		WithName("login_code").
		WithLanguage("en").
		WithBody("Your login code is {{1}} for this session").
		WithSample("1", "123456").
		WithButtons(ButtonsCallToAction, Button{Type: SubtypeCopyCode, Text: "Copy code", Example: "123456"})
	require.True(t, DefaultRules().Validate(auth).Valid())

	raw, err := json.Marshal(Build(auth).Components[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"BUTTONS","buttons":[{"type":"COPY_CODE","text":"Copy code","example":"123456"}]}`, string(raw))

	static := orderUpdateDraft().WithButtons(ButtonsCallToAction, Button{Type: SubtypeURL, Text: "Track", Value: "https://shop.com/track"})
	raw, err = json.Marshal(Build(static).Components[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"BUTTONS","buttons":[{"type":"URL","text":"Track","url":"https://shop.com/track"}]}`, string(raw))

	quick := orderUpdateDraft().WithButtons(ButtonsQuickReply, Button{Text: "Yes"}, Button{Type: SubtypeURL, Text: "No"})
	raw, err = json.Marshal(Build(quick).Components[1])
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"BUTTONS","buttons":[{"type":"QUICK_REPLY","text":"Yes"},{"type":"QUICK_REPLY","text":"No"}]}`, string(raw))
}

func TestBuildIsIdempotentAndPure(t *testing.T) {
	d := orderUpdateDraft().
		WithHeader(Header{Format: HeaderText, Text: "Order {{1}} update"}).
		WithButtons(ButtonsQuickReply, Button{Text: "Thanks"})
	before := d.Clone()

	first := Build(d)
	second := Build(d)
	assert.Equal(t, first, second)
	assert.Equal(t, before, d)
}

func TestWithCopiesDraft(t *testing.T) {
	base := NewDraft(CategoryUtility).WithSample("1", "a")
	changed := base.WithSample("1", "b").WithButtons(ButtonsQuickReply, Button{Text: "x"})
	assert.Equal(t, "a", base.VariableSamples["1"])
	assert.Empty(t, base.Buttons)
	assert.Equal(t, "b", changed.VariableSamples["1"])
}
