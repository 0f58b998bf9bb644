package template

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rules holds the limits the validators apply. The density and whitespace
// thresholds mirror the platform's review policy and may change upstream, so
// they are loaded from the policy file rather than fixed.
type Rules struct {
	NameMinLength int
	NameMaxLength int
	ReservedWords []string

	BodyMaxLength       int
	HeaderTextMaxLength int
	FooterMaxLength     int

	// VariableDensityDivisor: placeholder occurrences may not exceed
	// words / VariableDensityDivisor.
	VariableDensityDivisor int
	// MaxConsecutiveSpaces is the longest whitespace run allowed.
	MaxConsecutiveSpaces int

	QuickReplyMax       int
	CallToActionMax     int
	PhoneButtonMax      int
	URLButtonMax        int
	ButtonTextMaxLength int
	URLExampleMaxLength int
	CopyCodeMaxLength   int
	AuthSampleMaxLength int

	Languages []Language
}

// DefaultRules returns the limits published for the Cloud API.
func DefaultRules() Rules {
	return Rules{
		NameMinLength:          3,
		NameMaxLength:          512,
		ReservedWords:          []string{"whatsapp", "meta", "facebook"},
		BodyMaxLength:          1024,
		HeaderTextMaxLength:    60,
		FooterMaxLength:        60,
		VariableDensityDivisor: 3,
		MaxConsecutiveSpaces:   4,
		QuickReplyMax:          3,
		CallToActionMax:        2,
		PhoneButtonMax:         1,
		URLButtonMax:           2,
		ButtonTextMaxLength:    25,
		URLExampleMaxLength:    2000,
		CopyCodeMaxLength:      15,
		AuthSampleMaxLength:    15,
		Languages:              DefaultLanguages,
	}
}

var (
	nameRe       = regexp.MustCompile(`^[a-z0-9_]+$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	phoneRe      = regexp.MustCompile(`^\+?\d{2,15}$`)
	phoneStrip   = strings.NewReplacer(" ", "", "-", "")
)

// NormalizeName lowercases name and replaces whitespace runs with underscores.
func NormalizeName(name string) string {
	return whitespaceRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
}

// NormalizePhone strips spaces and hyphens from a phone number.
func NormalizePhone(phone string) string {
	return phoneStrip.Replace(strings.TrimSpace(phone))
}

func length(s string) int {
	return utf8.RuneCountInString(s)
}

func (r Rules) ValidateCategory(c Category) string {
	if c == "" {
		return "Select a template category"
	}
	if !c.Valid() {
		return fmt.Sprintf("Unknown category %q", c)
	}
	return ""
}

func (r Rules) ValidateName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "Template name is required"
	}
	if n := length(name); n < r.NameMinLength || n > r.NameMaxLength {
		return fmt.Sprintf("Template name must be between %d and %d characters", r.NameMinLength, r.NameMaxLength)
	}
	normalized := NormalizeName(name)
	if !nameRe.MatchString(normalized) {
		return "Template name may only contain lowercase letters, numbers and underscores"
	}
	for _, w := range r.ReservedWords {
		if strings.Contains(normalized, strings.ToLower(w)) {
			return fmt.Sprintf("Template name cannot contain %q", w)
		}
	}
	return ""
}

func (r Rules) ValidateLanguage(code string) string {
	if code == "" {
		return "Select a language"
	}
	if _, ok := r.LanguageName(code); !ok {
		return fmt.Sprintf("Unsupported language %q", code)
	}
	return ""
}

// ValidateBody checks the body text. The category decides whether links and
// emoji are allowed.
func (r Rules) ValidateBody(text string, category Category) string {
	if strings.TrimSpace(text) == "" {
		return "Body text is required"
	}
	if length(text) > r.BodyMaxLength {
		return fmt.Sprintf("Body text cannot exceed %d characters", r.BodyMaxLength)
	}
	caps := CapabilitiesFor(category)
	if !caps.AllowLinks && (strings.Contains(text, "http://") || strings.Contains(text, "https://")) {
		return fmt.Sprintf("%s templates cannot contain URLs", category)
	}
	if !caps.AllowEmoji && containsEmoji(text) {
		return fmt.Sprintf("%s templates cannot contain emoji", category)
	}
	vars := ExtractVariables(text)
	if msg := checkSequence(vars); msg != "" {
		return msg
	}
	if msg := edgePlaceholder(text, "Body text"); msg != "" {
		return msg
	}
	if r.VariableDensityDivisor > 0 {
		words := len(strings.Fields(text))
		if len(vars)*r.VariableDensityDivisor > words {
			return "Too many variables for the length of the message; add more text around them"
		}
	}
	for _, m := range anyPlaceholderRe.FindAllStringSubmatch(text, -1) {
		if strings.ContainsAny(m[1], "#$%&*") {
			return fmt.Sprintf("Variable %s cannot contain special characters (#, $, %%, &, *)", m[0])
		}
	}
	if r.hasWhitespaceRun(text) {
		return fmt.Sprintf("Body text cannot contain more than %d consecutive spaces", r.MaxConsecutiveSpaces)
	}
	return ""
}

// ValidateHeaderText applies only to TEXT headers.
func (r Rules) ValidateHeaderText(text string) string {
	if strings.TrimSpace(text) == "" {
		return "Header text is required"
	}
	if length(text) > r.HeaderTextMaxLength {
		return fmt.Sprintf("Header text cannot exceed %d characters", r.HeaderTextMaxLength)
	}
	return edgePlaceholder(text, "Header text")
}

// ValidateHeader dispatches on the header format.
func (r Rules) ValidateHeader(h Header) string {
	switch h.Format {
	case "", HeaderNone, HeaderImage, HeaderVideo, HeaderDocument:
		return ""
	case HeaderText:
		return r.ValidateHeaderText(h.Text)
	}
	return fmt.Sprintf("Unknown header format %q", h.Format)
}

func (r Rules) ValidateFooter(text string) string {
	if text == "" {
		return ""
	}
	if length(text) > r.FooterMaxLength {
		return fmt.Sprintf("Footer text cannot exceed %d characters", r.FooterMaxLength)
	}
	if strings.Contains(text, "{{") {
		return "Footer text cannot contain variables"
	}
	return ""
}

// ValidateButtons checks the button set against buttonType and the
// category's capability gate, returning the first problem found.
func (r Rules) ValidateButtons(buttonType ButtonType, buttons []Button, category Category) string {
	if buttonType == "" || buttonType == ButtonsNone {
		return ""
	}
	caps := CapabilitiesFor(category)
	if !caps.AllowsButtonType(buttonType) {
		return fmt.Sprintf("%s templates do not support %s buttons", category, buttonType)
	}
	switch buttonType {
	case ButtonsQuickReply:
		if len(buttons) == 0 {
			return "Add at least one quick reply button"
		}
		if len(buttons) > r.QuickReplyMax {
			return fmt.Sprintf("A template can have at most %d quick reply buttons", r.QuickReplyMax)
		}
		for i, b := range buttons {
			if msg := r.buttonText(i, b); msg != "" {
				return msg
			}
		}
		return ""
	case ButtonsCallToAction:
		return r.validateCallToAction(buttons, caps)
	}
	return fmt.Sprintf("Unknown button type %q", buttonType)
}

func (r Rules) validateCallToAction(buttons []Button, caps Capabilities) string {
	if len(buttons) == 0 {
		return "Add at least one call to action button"
	}
	if len(buttons) > r.CallToActionMax {
		return fmt.Sprintf("A template can have at most %d call to action buttons", r.CallToActionMax)
	}
	var phones, urls int
	for _, b := range buttons {
		switch b.Type {
		case SubtypePhoneNumber:
			phones++
		case SubtypeURL:
			urls++
		}
	}
	if phones > r.PhoneButtonMax {
		return fmt.Sprintf("A template can have at most %d phone number button", r.PhoneButtonMax)
	}
	if urls > r.URLButtonMax {
		return fmt.Sprintf("A template can have at most %d URL buttons", r.URLButtonMax)
	}
	for i, b := range buttons {
		if !caps.AllowsSubtype(b.Type) {
			return fmt.Sprintf("Button %d: %s buttons are not available for %s templates", i+1, b.Type, caps.Category)
		}
		if msg := r.buttonText(i, b); msg != "" {
			return msg
		}
		switch b.Type {
		case SubtypePhoneNumber:
			if !phoneRe.MatchString(NormalizePhone(b.Value)) {
				return fmt.Sprintf("Button %d: enter a phone number in international format", i+1)
			}
		case SubtypeURL:
			if !strings.HasPrefix(b.Value, "https://") {
				return fmt.Sprintf("Button %d: URL must start with https://", i+1)
			}
			if strings.Contains(b.Value, "{{1}}") {
				ex := strings.TrimSpace(b.Example)
				if ex == "" {
					return fmt.Sprintf("Button %d: dynamic URL requires an example value", i+1)
				}
				if length(ex) > r.URLExampleMaxLength {
					return fmt.Sprintf("Button %d: URL example cannot exceed %d characters", i+1, r.URLExampleMaxLength)
				}
			}
		case SubtypeCopyCode:
			ex := strings.TrimSpace(b.Example)
			if ex == "" {
				return fmt.Sprintf("Button %d: copy code requires an example code", i+1)
			}
			if length(ex) > r.CopyCodeMaxLength {
				return fmt.Sprintf("Button %d: example code cannot exceed %d characters", i+1, r.CopyCodeMaxLength)
			}
		}
	}
	return ""
}

func (r Rules) buttonText(i int, b Button) string {
	text := strings.TrimSpace(b.Text)
	if text == "" {
		return fmt.Sprintf("Button %d: text is required", i+1)
	}
	if length(text) > r.ButtonTextMaxLength {
		return fmt.Sprintf("Button %d: text cannot exceed %d characters", i+1, r.ButtonTextMaxLength)
	}
	return ""
}

// ValidateSamples checks that every placeholder used in body or header text
// has a usable sample value.
func (r Rules) ValidateSamples(bodyText, headerText string, samples map[string]string, category Category) string {
	for _, idx := range VariableUnion(bodyText, headerText) {
		sample := strings.TrimSpace(samples[idx])
		if sample == "" {
			return fmt.Sprintf("Provide a sample value for {{%s}}", idx)
		}
		if category == CategoryAuthentication && length(sample) > r.AuthSampleMaxLength {
			return fmt.Sprintf("Sample for {{%s}} cannot exceed %d characters", idx, r.AuthSampleMaxLength)
		}
		if strings.Contains(sample, "{{") || strings.Contains(sample, "}}") {
			return fmt.Sprintf("Sample for {{%s}} cannot contain curly braces", idx)
		}
		if r.hasWhitespaceRun(sample) {
			return fmt.Sprintf("Sample for {{%s}} cannot contain more than %d consecutive spaces", idx, r.MaxConsecutiveSpaces)
		}
	}
	return ""
}

func (r Rules) hasWhitespaceRun(s string) bool {
	if r.MaxConsecutiveSpaces <= 0 {
		return false
	}
	run := 0
	for _, c := range s {
		if !unicode.IsSpace(c) {
			run = 0
			continue
		}
		run++
		if run > r.MaxConsecutiveSpaces {
			return true
		}
	}
	return false
}

func edgePlaceholder(text, field string) string {
	t := strings.TrimSpace(text)
	if strings.HasPrefix(t, "{{") {
		return field + " cannot start with a variable"
	}
	if strings.HasSuffix(t, "}}") {
		return field + " cannot end with a variable"
	}
	return ""
}

// checkSequence requires the distinct indices to be exactly 1..k.
func checkSequence(vars []string) string {
	var distinct []string
	seen := map[string]struct{}{}
	for _, v := range vars {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	sortNumeric(distinct)
	for i, v := range distinct {
		want := i + 1
		got := variableNumber(v)
		if got == want {
			continue
		}
		if got < want {
			if got == 0 {
				return "Variables must start at {{1}}"
			}
			return fmt.Sprintf("Variable {{%s}} is duplicated", v)
		}
		return fmt.Sprintf("Variables must be sequential: {{%d}} is missing", want)
	}
	return ""
}

var emojiRanges = [][2]rune{
	{0x1F000, 0x1F02F}, // mahjong
	{0x1F0A0, 0x1F0FF}, // playing cards
	{0x1F100, 0x1F1FF}, // enclosed alphanumerics, flags
	{0x1F200, 0x1F2FF},
	{0x1F300, 0x1F5FF}, // symbols and pictographs
	{0x1F600, 0x1F64F}, // emoticons
	{0x1F680, 0x1F6FF}, // transport and map
	{0x1F700, 0x1F77F},
	{0x1F780, 0x1F7FF},
	{0x1F800, 0x1F8FF},
	{0x1F900, 0x1F9FF}, // supplemental symbols
	{0x1FA00, 0x1FAFF},
	{0x2600, 0x26FF}, // misc symbols
	{0x2700, 0x27BF}, // dingbats
	{0xFE00, 0xFE0F}, // variation selectors
	{0x200D, 0x200D}, // zero width joiner
}

func containsEmoji(s string) bool {
	for _, c := range s {
		for _, rg := range emojiRanges {
			if c >= rg[0] && c <= rg[1] {
				return true
			}
		}
	}
	return false
}
