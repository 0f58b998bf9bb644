package template

import (
	"strings"

	"github.com/ecodeclub/ekit/slice"
)

type ComponentType string

const (
	ComponentHeader  ComponentType = "HEADER"
	ComponentBody    ComponentType = "BODY"
	ComponentFooter  ComponentType = "FOOTER"
	ComponentButtons ComponentType = "BUTTONS"
)

// Payload is the message_templates creation request.
type Payload struct {
	Name       string      `json:"name"`
	Category   Category    `json:"category"`
	Language   string      `json:"language"`
	Components []Component `json:"components"`
}

type Component struct {
	Type    ComponentType   `json:"type"`
	Format  HeaderFormat    `json:"format,omitempty"`
	Text    string          `json:"text,omitempty"`
	Buttons []PayloadButton `json:"buttons,omitempty"`
	Example *Example        `json:"example,omitempty"`
}

type Example struct {
	HeaderText   [][]string `json:"header_text,omitempty"`
	HeaderHandle []string   `json:"header_handle,omitempty"`
	BodyText     [][]string `json:"body_text,omitempty"`
}

// PayloadButton is a button in wire form. Example is a []string for dynamic
// URL buttons and a bare string for COPY_CODE buttons.
type PayloadButton struct {
	Type        ButtonSubtype `json:"type"`
	Text        string        `json:"text"`
	PhoneNumber string        `json:"phone_number,omitempty"`
	URL         string        `json:"url,omitempty"`
	Example     any           `json:"example,omitempty"`
}

// Build converts a validated draft into the creation payload. It does not
// re-validate and never modifies d.
func Build(d Draft) Payload {
	p := Payload{
		Name:     NormalizeName(d.Name),
		Category: d.Category,
		Language: d.Language,
	}
	if h, ok := buildHeader(d); ok {
		p.Components = append(p.Components, h)
	}
	p.Components = append(p.Components, buildBody(d))
	if d.FooterText != "" {
		p.Components = append(p.Components, Component{Type: ComponentFooter, Text: d.FooterText})
	}
	if d.buttonType() != ButtonsNone && len(d.Buttons) > 0 {
		p.Components = append(p.Components, Component{
			Type: ComponentButtons,
			Buttons: slice.Map(d.Buttons, func(_ int, b Button) PayloadButton {
				return buildButton(d.buttonType(), b)
			}),
		})
	}
	return p
}

func buildHeader(d Draft) (Component, bool) {
	format := d.headerFormat()
	switch {
	case format == HeaderText:
		c := Component{Type: ComponentHeader, Format: HeaderText, Text: d.Header.Text}
		if samples := orderedSamples(d.Header.Text, d.VariableSamples); len(samples) > 0 {
			c.Example = &Example{HeaderText: [][]string{samples}}
		}
		return c, true
	case format.IsMedia():
		c := Component{Type: ComponentHeader, Format: format}
		if d.Header.MediaID != "" {
			c.Example = &Example{HeaderHandle: []string{d.Header.MediaID}}
		}
		return c, true
	}
	return Component{}, false
}

func buildBody(d Draft) Component {
	c := Component{Type: ComponentBody, Text: d.BodyText}
	if samples := orderedSamples(d.BodyText, d.VariableSamples); len(samples) > 0 {
		c.Example = &Example{BodyText: [][]string{samples}}
	}
	return c
}

func buildButton(t ButtonType, b Button) PayloadButton {
	if t == ButtonsQuickReply {
		return PayloadButton{Type: SubtypeQuickReply, Text: b.Text}
	}
	out := PayloadButton{Type: b.Type, Text: b.Text}
	switch b.Type {
	case SubtypePhoneNumber:
		out.PhoneNumber = NormalizePhone(b.Value)
	case SubtypeURL:
		out.URL = b.Value
		if strings.Contains(b.Value, "{{1}}") {
			out.Example = []string{strings.TrimSpace(b.Example)}
		}
	case SubtypeCopyCode:
		out.Example = strings.TrimSpace(b.Example)
	}
	return out
}

// orderedSamples returns the samples for the placeholders of text ordered
// by numeric index.
func orderedSamples(text string, samples map[string]string) []string {
	vars := VariableUnion(text)
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, strings.TrimSpace(samples[v]))
	}
	return out
}
