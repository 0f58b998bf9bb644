package template

import (
	"context"
	"errors"
	"maps"
)

// Step is a page of the creation wizard.
type Step int

const (
	StepCategory Step = 1
	StepContent  Step = 2
	StepReview   Step = 3
)

var (
	ErrCategoryLocked   = errors.New("template: category cannot change after it is confirmed")
	ErrValidationFailed = errors.New("template: draft has validation errors")
	ErrNotOnReview      = errors.New("template: submit is only possible from the review step")
	ErrAlreadySubmitted = errors.New("template: draft was already submitted")
	ErrLastStep         = errors.New("template: already on the last step")
)

// Submission is the platform's answer to a successful creation request.
type Submission struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

// Submitter sends a built payload to the template-creation endpoint.
type Submitter interface {
	SubmitTemplate(ctx context.Context, p Payload) (*Submission, error)
}

// Wizard gates the three creation steps: category, content, review.
// It is not safe for concurrent use.
type Wizard struct {
	rules          Rules
	step           Step
	draft          Draft
	categoryLocked bool
	errors         Result
	submitErr      string
	submission     *Submission
}

func NewWizard(rules Rules) *Wizard {
	return &Wizard{
		rules:  rules,
		step:   StepCategory,
		draft:  NewDraft(""),
		errors: Result{},
	}
}

func (w *Wizard) Step() Step { return w.step }

func (w *Wizard) Draft() Draft { return w.draft.Clone() }

// Errors returns the field errors of the last failed transition.
func (w *Wizard) Errors() Result { return maps.Clone(w.errors) }

// SubmitError is the backend message from the last failed submit.
func (w *Wizard) SubmitError() string { return w.submitErr }

func (w *Wizard) Submission() *Submission { return w.submission }

func (w *Wizard) SetCategory(c Category) error {
	if w.categoryLocked && c != w.draft.Category {
		return ErrCategoryLocked
	}
	w.draft = w.draft.WithCategory(c)
	return nil
}

// UpdateDraft replaces the draft contents. Editing while on review sends the
// wizard back to content so the change is validated again.
func (w *Wizard) UpdateDraft(d Draft) error {
	if w.submission != nil {
		return ErrAlreadySubmitted
	}
	if d.Category == "" {
		d.Category = w.draft.Category
	}
	if w.categoryLocked && d.Category != w.draft.Category {
		return ErrCategoryLocked
	}
	w.draft = d.Clone()
	if w.step == StepReview {
		w.step = StepContent
	}
	w.submitErr = ""
	return nil
}

// Next validates the current step and advances on success. On failure the
// wizard stays put and the returned Result holds the field errors.
func (w *Wizard) Next() (Result, error) {
	switch w.step {
	case StepCategory:
		w.errors = w.rules.ValidateCategoryStep(w.draft)
		if !w.errors.Valid() {
			return w.Errors(), ErrValidationFailed
		}
		w.categoryLocked = true
		w.step = StepContent
	case StepContent:
		w.errors = w.rules.Validate(w.draft)
		if !w.errors.Valid() {
			return w.Errors(), ErrValidationFailed
		}
		w.step = StepReview
	default:
		return w.Errors(), ErrLastStep
	}
	return w.Errors(), nil
}

// Back moves one step back. The category stays locked once confirmed.
func (w *Wizard) Back() {
	if w.step > StepCategory {
		w.step--
	}
	w.errors = Result{}
}

// Submit builds the payload and sends it once. A failure keeps the wizard on
// review with the draft intact; the caller decides whether to submit again.
func (w *Wizard) Submit(ctx context.Context, s Submitter) (*Submission, error) {
	if w.submission != nil {
		return w.submission, ErrAlreadySubmitted
	}
	if w.step != StepReview {
		return nil, ErrNotOnReview
	}
	sub, err := s.SubmitTemplate(ctx, Build(w.draft))
	if err != nil {
		w.submitErr = err.Error()
		return nil, err
	}
	w.submitErr = ""
	w.submission = sub
	return sub, nil
}

// State is a serialisable snapshot of the wizard.
type State struct {
	Step        Step        `json:"step"`
	Draft       Draft       `json:"draft"`
	Errors      Result      `json:"errors"`
	SubmitError string      `json:"submit_error,omitempty"`
	Submission  *Submission `json:"submission,omitempty"`
}

func (w *Wizard) State() State {
	return State{
		Step:        w.step,
		Draft:       w.Draft(),
		Errors:      w.Errors(),
		SubmitError: w.submitErr,
		Submission:  w.submission,
	}
}
