package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"whatsapp-studio/internal/models"
	"whatsapp-studio/internal/template"
	"whatsapp-studio/internal/whatsapp"
	"whatsapp-studio/internal/ws"
)

type wizardBody struct {
	ID          string               `json:"id"`
	Step        template.Step        `json:"step"`
	Draft       template.Draft       `json:"draft"`
	Errors      map[string]string    `json:"errors"`
	SubmitError string               `json:"submit_error"`
	Submission  *template.Submission `json:"submission"`
}

func decodeWizard(t *testing.T, raw []byte) wizardBody {
	t.Helper()
	var b wizardBody
	require.NoError(t, json.Unmarshal(raw, &b))
	return b
}

// toReview walks a new session to the review step.
func toReview(t *testing.T, f *fixture) string {
	t.Helper()
	w := f.do(http.MethodPost, "/api/templates/wizard", `{"category":"UTILITY"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeWizard(t, w.Body.Bytes()).ID
	require.NotEmpty(t, id)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, template.StepContent, decodeWizard(t, w.Body.Bytes()).Step)

	w = f.do(http.MethodPut, "/api/templates/wizard/"+id+"/draft", orderUpdateJSON)
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, template.StepReview, decodeWizard(t, w.Body.Bytes()).Step)
	return id
}

func TestWizardHappyPath(t *testing.T) {
	f := newFixture(t)
	id := toReview(t, f)

	f.client.EXPECT().SubmitTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, p template.Payload) (*template.Submission, error) {
			assert.Equal(t, "order_update", p.Name)
			return &template.Submission{ID: "594425479261596", Status: "PENDING", Category: "UTILITY"}, nil
		})
	f.store.EXPECT().SaveTemplate(gomock.Any()).DoAndReturn(func(tpl *models.Template) error {
		assert.Equal(t, "594425479261596", tpl.ID)
		assert.Equal(t, "PENDING", tpl.Status)
		assert.JSONEq(t, `[{"type":"BODY","text":"Your order {{1}} is out for delivery","example":{"body_text":[["A1023"]]}}]`, tpl.Components)
		return nil
	})
	f.hub.EXPECT().BroadcastEvent(ws.EventTemplateSubmitted, gomock.Any())

	w := f.do(http.MethodPost, "/api/templates/wizard/"+id+"/submit", "")
	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeWizard(t, w.Body.Bytes())
	require.NotNil(t, body.Submission)
	assert.Equal(t, "594425479261596", body.Submission.ID)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/submit", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestWizardSubmitRejected(t *testing.T) {
	f := newFixture(t)
	id := toReview(t, f)

	f.client.EXPECT().SubmitTemplate(gomock.Any(), gomock.Any()).Return(nil, &whatsapp.APIError{
		StatusCode:  http.StatusBadRequest,
		Message:     "Invalid parameter",
		UserMessage: "There is already English (US) content for this template.",
	})

	w := f.do(http.MethodPost, "/api/templates/wizard/"+id+"/submit", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var out struct {
		Error string     `json:"error"`
		State wizardBody `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "There is already English (US) content for this template.", out.Error)
	assert.Equal(t, out.Error, out.State.SubmitError)
	assert.Equal(t, template.StepReview, out.State.Step)
	assert.Equal(t, "Your order {{1}} is out for delivery", out.State.Draft.BodyText)
}

func TestWizardValidationErrors(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodPost, "/api/templates/wizard", "")
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeWizard(t, w.Body.Bytes()).ID

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/next", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeWizard(t, w.Body.Bytes()).Errors, "category")

	w = f.do(http.MethodPut, "/api/templates/wizard/"+id+"/draft", `{"category":"MARKETING","name":"ab","language":"en","body_text":"Hello there friend"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/next", "")
	require.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/next", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := decodeWizard(t, w.Body.Bytes())
	assert.Equal(t, template.StepContent, body.Step)
	assert.Contains(t, body.Errors, "name")

	w = f.do(http.MethodPut, "/api/templates/wizard/"+id+"/draft", `{"category":"UTILITY","name":"abc","language":"en","body_text":"Hello there friend"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/submit", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = f.do(http.MethodPost, "/api/templates/wizard/"+id+"/back", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, template.StepCategory, decodeWizard(t, w.Body.Bytes()).Step)
}

func TestWizardSessionLifecycle(t *testing.T) {
	f := newFixture(t)

	w := f.do(http.MethodGet, "/api/templates/wizard/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = f.do(http.MethodPost, "/api/templates/wizard", `{"category":"PROMO"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeWizard(t, w.Body.Bytes()).ID

	w = f.do(http.MethodGet, "/api/templates/wizard/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, template.Category("PROMO"), decodeWizard(t, w.Body.Bytes()).Draft.Category)

	w = f.do(http.MethodDelete, "/api/templates/wizard/"+id, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = f.do(http.MethodGet, "/api/templates/wizard/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizardSubmitSurvivesClientDisconnect(t *testing.T) {
	f := newFixture(t)
	id := toReview(t, f)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f.client.EXPECT().SubmitTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(submitCtx context.Context, _ template.Payload) (*template.Submission, error) {
			cancel()
			<-ctx.Done()
			assert.NoError(t, submitCtx.Err())
			return &template.Submission{ID: "594425479261596", Status: "PENDING", Category: "UTILITY"}, nil
		})
	f.store.EXPECT().SaveTemplate(gomock.Any()).Return(nil)
	f.hub.EXPECT().BroadcastEvent(ws.EventTemplateSubmitted, gomock.Any())

	req := httptest.NewRequest(http.MethodPost, "/api/templates/wizard/"+id+"/submit", nil).WithContext(ctx)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	body := decodeWizard(t, w.Body.Bytes())
	require.NotNil(t, body.Submission)
	assert.Equal(t, "594425479261596", body.Submission.ID)
}
