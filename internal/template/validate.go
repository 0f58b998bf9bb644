package template

import (
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"
)

// Field keys used in a Result.
const (
	FieldCategory = "category"
	FieldName     = "name"
	FieldLanguage = "language"
	FieldHeader   = "header"
	FieldBody     = "body"
	FieldFooter   = "footer"
	FieldButtons  = "buttons"
	FieldSamples  = "variable_samples"
)

// Result maps a field key to a human readable error. An empty Result means
// the draft passes.
type Result map[string]string

func (r Result) Valid() bool {
	return len(r) == 0
}

// Fields returns the keys with an error, sorted.
func (r Result) Fields() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Err folds the result into a single error, nil when valid.
func (r Result) Err() error {
	var merr *multierror.Error
	for _, k := range r.Fields() {
		merr = multierror.Append(merr, FieldError{Field: k, Message: r[k]})
	}
	return merr.ErrorOrNil()
}

type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (r Result) add(field, msg string) {
	if msg != "" {
		r[field] = msg
	}
}

// ValidateCategoryStep checks what step 1 of the wizard needs.
func (r Rules) ValidateCategoryStep(d Draft) Result {
	res := Result{}
	res.add(FieldCategory, r.ValidateCategory(d.Category))
	return res
}

// Validate runs every content rule over d.
func (r Rules) Validate(d Draft) Result {
	res := r.ValidateCategoryStep(d)
	res.add(FieldName, r.ValidateName(d.Name))
	res.add(FieldLanguage, r.ValidateLanguage(d.Language))
	res.add(FieldHeader, r.ValidateHeader(d.Header))
	if _, ok := res[FieldHeader]; !ok {
		res.add(FieldHeader, headerSequence(d))
	}
	res.add(FieldBody, r.ValidateBody(d.BodyText, d.Category))
	res.add(FieldFooter, r.ValidateFooter(d.FooterText))
	res.add(FieldButtons, r.ValidateButtons(d.buttonType(), d.Buttons, d.Category))
	res.add(FieldSamples, r.ValidateSamples(d.BodyText, d.headerText(), d.VariableSamples, d.Category))
	return res
}

// headerSequence checks header placeholders against the indices shared with
// the body: together they must form 1..k.
func headerSequence(d Draft) string {
	header := ExtractVariables(d.headerText())
	if len(header) == 0 {
		return ""
	}
	return checkSequence(append(ExtractVariables(d.BodyText), header...))
}
