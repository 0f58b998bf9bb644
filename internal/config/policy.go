package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"whatsapp-studio/internal/template"
)

// Policy is the on-disk form of the template rules. Unset keys keep the
// built-in defaults.
type Policy struct {
	Name      NamePolicy          `toml:"name"`
	Text      TextPolicy          `toml:"text"`
	Buttons   ButtonPolicy        `toml:"buttons"`
	Samples   SamplePolicy        `toml:"samples"`
	Languages []template.Language `toml:"languages"`
}

type NamePolicy struct {
	MinLength     *int     `toml:"min_length"`
	MaxLength     *int     `toml:"max_length"`
	ReservedWords []string `toml:"reserved_words"`
}

type TextPolicy struct {
	BodyMaxLength          *int `toml:"body_max_length"`
	HeaderMaxLength        *int `toml:"header_max_length"`
	FooterMaxLength        *int `toml:"footer_max_length"`
	VariableDensityDivisor *int `toml:"variable_density_divisor"`
	MaxConsecutiveSpaces   *int `toml:"max_consecutive_spaces"`
}

type ButtonPolicy struct {
	QuickReplyMax       *int `toml:"quick_reply_max"`
	CallToActionMax     *int `toml:"call_to_action_max"`
	PhoneMax            *int `toml:"phone_max"`
	URLMax              *int `toml:"url_max"`
	TextMaxLength       *int `toml:"text_max_length"`
	URLExampleMaxLength *int `toml:"url_example_max_length"`
	CopyCodeMaxLength   *int `toml:"copy_code_max_length"`
}

type SamplePolicy struct {
	AuthMaxLength *int `toml:"auth_max_length"`
}

// LoadPolicy returns the default rules with the overrides from path applied.
// An empty path yields the defaults.
func LoadPolicy(path string) (template.Rules, error) {
	rules := template.DefaultRules()
	if path == "" {
		return rules, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rules, fmt.Errorf("read policy %s: %w", path, err)
	}
	return ParsePolicy(string(data))
}

// ParsePolicy decodes a TOML policy document over the default rules.
func ParsePolicy(doc string) (template.Rules, error) {
	rules := template.DefaultRules()
	var p Policy
	if _, err := toml.Decode(doc, &p); err != nil {
		return rules, fmt.Errorf("decode policy: %w", err)
	}
	p.apply(&rules)
	if err := check(rules); err != nil {
		return template.DefaultRules(), err
	}
	return rules, nil
}

func (p Policy) apply(r *template.Rules) {
	set(&r.NameMinLength, p.Name.MinLength)
	set(&r.NameMaxLength, p.Name.MaxLength)
	if p.Name.ReservedWords != nil {
		r.ReservedWords = p.Name.ReservedWords
	}

	set(&r.BodyMaxLength, p.Text.BodyMaxLength)
	set(&r.HeaderTextMaxLength, p.Text.HeaderMaxLength)
	set(&r.FooterMaxLength, p.Text.FooterMaxLength)
	set(&r.VariableDensityDivisor, p.Text.VariableDensityDivisor)
	set(&r.MaxConsecutiveSpaces, p.Text.MaxConsecutiveSpaces)

	set(&r.QuickReplyMax, p.Buttons.QuickReplyMax)
	set(&r.CallToActionMax, p.Buttons.CallToActionMax)
	set(&r.PhoneButtonMax, p.Buttons.PhoneMax)
	set(&r.URLButtonMax, p.Buttons.URLMax)
	set(&r.ButtonTextMaxLength, p.Buttons.TextMaxLength)
	set(&r.URLExampleMaxLength, p.Buttons.URLExampleMaxLength)
	set(&r.CopyCodeMaxLength, p.Buttons.CopyCodeMaxLength)

	set(&r.AuthSampleMaxLength, p.Samples.AuthMaxLength)

	if len(p.Languages) > 0 {
		r.Languages = p.Languages
	}
}

func set(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func check(r template.Rules) error {
	if r.NameMinLength < 1 || r.NameMaxLength < r.NameMinLength {
		return fmt.Errorf("policy: invalid name length range %d..%d", r.NameMinLength, r.NameMaxLength)
	}
	for _, l := range r.Languages {
		if l.Code == "" {
			return fmt.Errorf("policy: language %q has no code", l.Name)
		}
	}
	return nil
}
