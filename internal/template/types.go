package template

import "maps"

// Category is the platform classification that drives review rules.
type Category string

const (
	CategoryMarketing      Category = "MARKETING"
	CategoryUtility        Category = "UTILITY"
	CategoryAuthentication Category = "AUTHENTICATION"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryMarketing, CategoryUtility, CategoryAuthentication:
		return true
	}
	return false
}

type HeaderFormat string

const (
	HeaderNone     HeaderFormat = "NONE"
	HeaderText     HeaderFormat = "TEXT"
	HeaderImage    HeaderFormat = "IMAGE"
	HeaderVideo    HeaderFormat = "VIDEO"
	HeaderDocument HeaderFormat = "DOCUMENT"
)

// IsMedia reports whether the header carries an uploaded sample instead of text.
func (f HeaderFormat) IsMedia() bool {
	return f == HeaderImage || f == HeaderVideo || f == HeaderDocument
}

type ButtonType string

const (
	ButtonsNone         ButtonType = "NONE"
	ButtonsQuickReply   ButtonType = "QUICK_REPLY"
	ButtonsCallToAction ButtonType = "CALL_TO_ACTION"
)

// ButtonSubtype is the wire type of a single button.
type ButtonSubtype string

const (
	SubtypeQuickReply  ButtonSubtype = "QUICK_REPLY"
	SubtypeURL         ButtonSubtype = "URL"
	SubtypePhoneNumber ButtonSubtype = "PHONE_NUMBER"
	SubtypeCopyCode    ButtonSubtype = "COPY_CODE"
)

// Header is NONE, a TEXT header, or a media header referencing an uploaded sample.
type Header struct {
	Format  HeaderFormat `json:"format"`
	Text    string       `json:"text,omitempty"`
	MediaID string       `json:"media_id,omitempty"`
}

// Button holds one button as typed in the wizard. Value is the phone number
// for PHONE_NUMBER buttons and the url for URL buttons.
type Button struct {
	Type    ButtonSubtype `json:"type"`
	Text    string        `json:"text"`
	Value   string        `json:"value,omitempty"`
	Example string        `json:"example,omitempty"`
}

// Draft is the in-progress template composed in the creation wizard.
//
// The With* methods return modified copies; a Draft value is never shared
// mutably between callers.
type Draft struct {
	Category        Category          `json:"category"`
	Name            string            `json:"name"`
	Language        string            `json:"language"`
	Header          Header            `json:"header"`
	BodyText        string            `json:"body_text"`
	FooterText      string            `json:"footer_text"`
	ButtonType      ButtonType        `json:"button_type"`
	Buttons         []Button          `json:"buttons"`
	VariableSamples map[string]string `json:"variable_samples"`
}

// NewDraft returns an empty draft for the given category.
func NewDraft(category Category) Draft {
	return Draft{
		Category:        category,
		Header:          Header{Format: HeaderNone},
		ButtonType:      ButtonsNone,
		VariableSamples: map[string]string{},
	}
}

// Clone returns a deep copy of d.
func (d Draft) Clone() Draft {
	out := d
	if d.Buttons != nil {
		out.Buttons = append([]Button(nil), d.Buttons...)
	}
	if d.VariableSamples != nil {
		out.VariableSamples = maps.Clone(d.VariableSamples)
	}
	return out
}

func (d Draft) WithCategory(c Category) Draft {
	out := d.Clone()
	out.Category = c
	return out
}

func (d Draft) WithName(name string) Draft {
	out := d.Clone()
	out.Name = name
	return out
}

func (d Draft) WithLanguage(code string) Draft {
	out := d.Clone()
	out.Language = code
	return out
}

func (d Draft) WithHeader(h Header) Draft {
	out := d.Clone()
	out.Header = h
	return out
}

func (d Draft) WithBody(text string) Draft {
	out := d.Clone()
	out.BodyText = text
	return out
}

func (d Draft) WithFooter(text string) Draft {
	out := d.Clone()
	out.FooterText = text
	return out
}

func (d Draft) WithButtons(t ButtonType, buttons ...Button) Draft {
	out := d.Clone()
	out.ButtonType = t
	out.Buttons = append([]Button(nil), buttons...)
	return out
}

func (d Draft) WithSample(index, value string) Draft {
	out := d.Clone()
	if out.VariableSamples == nil {
		out.VariableSamples = map[string]string{}
	}
	out.VariableSamples[index] = value
	return out
}

func (d Draft) headerFormat() HeaderFormat {
	if d.Header.Format == "" {
		return HeaderNone
	}
	return d.Header.Format
}

func (d Draft) buttonType() ButtonType {
	if d.ButtonType == "" {
		return ButtonsNone
	}
	return d.ButtonType
}

// headerText is the header text when the header is TEXT, otherwise "".
func (d Draft) headerText() string {
	if d.headerFormat() != HeaderText {
		return ""
	}
	return d.Header.Text
}
