package metrics_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"whatsapp-studio/internal/metrics"
	"whatsapp-studio/internal/template"
	templatemocks "whatsapp-studio/internal/template/mocks"
)

func TestObserveValidation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ObserveValidation("validate", template.Result{})
	m.ObserveValidation("wizard", template.Result{template.FieldName: "x", template.FieldBody: "y"})

	n, err := testutil.GatherAndCount(reg, "template_validations_total", "template_field_errors_total")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	srv := httptest.NewServer(metrics.Handler(reg))
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), `template_validations_total{outcome="invalid",source="wizard"} 1`)
	assert.Contains(t, string(body), `template_field_errors_total{field="name"} 1`)
}

func TestSubmitterRecordsOutcome(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := templatemocks.NewMockSubmitter(ctrl)
	reg := prometheus.NewRegistry()
	s := metrics.New(reg).Submitter(next)

	p := template.Payload{Name: "order_update", Category: template.CategoryUtility}
	gomock.InOrder(
		next.EXPECT().SubmitTemplate(gomock.Any(), p).Return(&template.Submission{ID: "1"}, nil),
		next.EXPECT().SubmitTemplate(gomock.Any(), p).Return(nil, errors.New("rejected")),
	)

	sub, err := s.SubmitTemplate(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "1", sub.ID)

	_, err = s.SubmitTemplate(context.Background(), p)
	assert.EqualError(t, err, "rejected")

	n, err := testutil.GatherAndCount(reg, "template_submissions_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
