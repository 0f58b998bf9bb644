package template_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"whatsapp-studio/internal/template"
	templatemocks "whatsapp-studio/internal/template/mocks"
)

func validContent() template.Draft {
	return template.NewDraft(template.CategoryUtility).
		WithName("order_update").
		WithLanguage("en").
		WithBody("Your order {{1}} is out for delivery").
		WithSample("1", "A1023")
}

func wizardOnReview(t *testing.T) *template.Wizard {
	t.Helper()
	w := template.NewWizard(template.DefaultRules())
	require.NoError(t, w.SetCategory(template.CategoryUtility))
	_, err := w.Next()
	require.NoError(t, err)
	require.NoError(t, w.UpdateDraft(validContent()))
	_, err = w.Next()
	require.NoError(t, err)
	require.Equal(t, template.StepReview, w.Step())
	return w
}

func TestWizardCategoryStep(t *testing.T) {
	w := template.NewWizard(template.DefaultRules())
	assert.Equal(t, template.StepCategory, w.Step())

	res, err := w.Next()
	assert.ErrorIs(t, err, template.ErrValidationFailed)
	assert.Contains(t, res, template.FieldCategory)
	assert.Equal(t, template.StepCategory, w.Step())

	require.NoError(t, w.SetCategory(template.CategoryMarketing))
	require.NoError(t, w.SetCategory(template.CategoryUtility))
	_, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, template.StepContent, w.Step())
	assert.Empty(t, w.Errors())

	assert.ErrorIs(t, w.SetCategory(template.CategoryMarketing), template.ErrCategoryLocked)
	assert.ErrorIs(t, w.UpdateDraft(validContent().WithCategory(template.CategoryMarketing)), template.ErrCategoryLocked)
	assert.Equal(t, template.CategoryUtility, w.Draft().Category)
}

func TestWizardContentStepStaysOnErrors(t *testing.T) {
	w := template.NewWizard(template.DefaultRules())
	require.NoError(t, w.SetCategory(template.CategoryUtility))
	_, err := w.Next()
	require.NoError(t, err)

	bad := validContent().WithFooter("Thanks {{1}}")
	bad.Category = ""
	require.NoError(t, w.UpdateDraft(bad))
	assert.Equal(t, template.CategoryUtility, w.Draft().Category)

	res, err := w.Next()
	assert.ErrorIs(t, err, template.ErrValidationFailed)
	assert.Equal(t, template.StepContent, w.Step())
	assert.Contains(t, res[template.FieldFooter], "variables")
	assert.Equal(t, res, w.Errors())

	require.NoError(t, w.UpdateDraft(validContent()))
	_, err = w.Next()
	require.NoError(t, err)
	assert.Equal(t, template.StepReview, w.Step())
	assert.Empty(t, w.Errors())

	_, err = w.Next()
	assert.ErrorIs(t, err, template.ErrLastStep)
}

func TestWizardSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := templatemocks.NewMockSubmitter(ctrl)

	w := wizardOnReview(t)
	want := &template.Submission{ID: "1234", Status: "PENDING", Category: "UTILITY"}
	submitter.EXPECT().
		SubmitTemplate(gomock.Any(), template.Build(validContent())).
		Return(want, nil)

	got, err := w.Submit(context.Background(), submitter)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, want, w.Submission())

	_, err = w.Submit(context.Background(), submitter)
	assert.ErrorIs(t, err, template.ErrAlreadySubmitted)
	assert.ErrorIs(t, w.UpdateDraft(validContent()), template.ErrAlreadySubmitted)
}

func TestWizardSubmitFailureKeepsDraft(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := templatemocks.NewMockSubmitter(ctrl)
	w := wizardOnReview(t)

	gomock.InOrder(
		submitter.EXPECT().SubmitTemplate(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("Template name already exists in this language")),
		submitter.EXPECT().SubmitTemplate(gomock.Any(), gomock.Any()).
			Return(&template.Submission{ID: "99", Status: "PENDING"}, nil),
	)

	_, err := w.Submit(context.Background(), submitter)
	require.Error(t, err)
	assert.Equal(t, template.StepReview, w.Step())
	assert.Equal(t, "Template name already exists in this language", w.SubmitError())
	assert.Equal(t, validContent(), w.Draft())
	assert.Nil(t, w.Submission())

	sub, err := w.Submit(context.Background(), submitter)
	require.NoError(t, err)
	assert.Equal(t, "99", sub.ID)
	assert.Empty(t, w.SubmitError())
}

func TestWizardSubmitRequiresReview(t *testing.T) {
	ctrl := gomock.NewController(t)
	submitter := templatemocks.NewMockSubmitter(ctrl)

	w := template.NewWizard(template.DefaultRules())
	_, err := w.Submit(context.Background(), submitter)
	assert.ErrorIs(t, err, template.ErrNotOnReview)
}

func TestWizardEditOnReviewRevalidates(t *testing.T) {
	w := wizardOnReview(t)
	require.NoError(t, w.UpdateDraft(validContent().WithName("ab")))
	assert.Equal(t, template.StepContent, w.Step())

	_, err := w.Next()
	assert.ErrorIs(t, err, template.ErrValidationFailed)
	assert.Contains(t, w.State().Errors, template.FieldName)
}

func TestWizardBack(t *testing.T) {
	w := wizardOnReview(t)
	w.Back()
	assert.Equal(t, template.StepContent, w.Step())
	w.Back()
	assert.Equal(t, template.StepCategory, w.Step())
	w.Back()
	assert.Equal(t, template.StepCategory, w.Step())

	assert.ErrorIs(t, w.SetCategory(template.CategoryMarketing), template.ErrCategoryLocked)
}

func TestWizardErrorsAreCopies(t *testing.T) {
	w := template.NewWizard(template.DefaultRules())
	res, err := w.Next()
	require.ErrorIs(t, err, template.ErrValidationFailed)
	require.Contains(t, res, template.FieldCategory)

	delete(res, template.FieldCategory)
	errs := w.Errors()
	errs["name"] = "changed"
	st := w.State()
	st.Errors[template.FieldLanguage] = "changed"

	assert.Equal(t, []string{template.FieldCategory}, w.Errors().Fields())
	assert.Equal(t, []string{template.FieldCategory}, w.State().Errors.Fields())
}
