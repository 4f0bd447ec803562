package registration_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"transferdesk/internal/registration"
	registrationerrors "transferdesk/internal/registration/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeWizardService overrides only the methods a test exercises; calling
// anything else panics through the embedded nil interface.
type fakeWizardService struct {
	registration.Service
	StartDraftFn func(ctx context.Context, employeeID string) (registration.DraftResponse, error)
	GetDraftFn   func(ctx context.Context, id string) (registration.DraftResponse, error)
	PreviewFn    func(ctx context.Context, id string) (registration.DraftResponse, error)
}

func (f *fakeWizardService) StartDraft(ctx context.Context, employeeID string) (registration.DraftResponse, error) {
	return f.StartDraftFn(ctx, employeeID)
}

func (f *fakeWizardService) GetDraft(ctx context.Context, id string) (registration.DraftResponse, error) {
	return f.GetDraftFn(ctx, id)
}

func (f *fakeWizardService) Preview(ctx context.Context, id string) (registration.DraftResponse, error) {
	return f.PreviewFn(ctx, id)
}

func newTestContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestRegistrationHandler_StartDraft(t *testing.T) {
	t.Run("empty body starts a blank draft", func(t *testing.T) {
		svc := &fakeWizardService{
			StartDraftFn: func(_ context.Context, employeeID string) (registration.DraftResponse, error) {
				assert.Empty(t, employeeID)
				return registration.DraftResponse{Draft: *registration.NewDraft("")}, nil
			},
		}
		h := registration.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/registration/drafts", "")
		h.StartDraft(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), registration.StepFill)
	})

	t.Run("employee id switches into edit mode", func(t *testing.T) {
		svc := &fakeWizardService{
			StartDraftFn: func(_ context.Context, employeeID string) (registration.DraftResponse, error) {
				assert.Equal(t, "emp-1", employeeID)
				return registration.DraftResponse{Draft: *registration.NewDraft("emp-1")}, nil
			},
		}
		h := registration.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/registration/drafts",
			`{"employee_id":"emp-1"}`)
		h.StartDraft(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}

func TestRegistrationHandler_GetDraft(t *testing.T) {
	t.Run("missing draft maps to 404", func(t *testing.T) {
		svc := &fakeWizardService{
			GetDraftFn: func(_ context.Context, id string) (registration.DraftResponse, error) {
				return registration.DraftResponse{}, registrationerrors.ErrDraftNotFound
			},
		}
		h := registration.NewHandler(svc)

		c, w := newTestContext(t, http.MethodGet, "/api/v1/registration/drafts/gone", "")
		c.Params = gin.Params{{Key: "id", Value: "gone"}}
		h.GetDraft(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestRegistrationHandler_Preview(t *testing.T) {
	t.Run("validation failure returns 422 with the field map", func(t *testing.T) {
		svc := &fakeWizardService{
			PreviewFn: func(_ context.Context, id string) (registration.DraftResponse, error) {
				fields := map[string]string{"probationary_period_doc": "Supporting document is required"}
				return registration.DraftResponse{Errors: fields},
					&registration.ValidationError{Fields: fields}
			},
		}
		h := registration.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/registration/drafts/d1/preview", "")
		c.Params = gin.Params{{Key: "id", Value: "d1"}}
		h.Preview(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
		assert.Contains(t, w.Body.String(), "probationary_period_doc")
	})

	t.Run("wrong step maps to conflict", func(t *testing.T) {
		svc := &fakeWizardService{
			PreviewFn: func(_ context.Context, id string) (registration.DraftResponse, error) {
				return registration.DraftResponse{}, registrationerrors.ErrInvalidStep
			},
		}
		h := registration.NewHandler(svc)

		c, w := newTestContext(t, http.MethodPost, "/api/v1/registration/drafts/d1/preview", "")
		c.Params = gin.Params{{Key: "id", Value: "d1"}}
		h.Preview(c)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}
