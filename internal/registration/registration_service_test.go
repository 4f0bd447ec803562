package registration_test

import (
	"context"
	"errors"
	"testing"

	"transferdesk/internal/employee"
	employeeMock "transferdesk/internal/employee/mock"
	"transferdesk/internal/registration"
	registrationerrors "transferdesk/internal/registration/errors"
	registrationMock "transferdesk/internal/registration/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type wizardDeps struct {
	store     *registrationMock.MockDraftStore
	employees *employeeMock.MockService
	service   registration.Service
}

func setupWizardTest(t *testing.T) *wizardDeps {
	ctrl := gomock.NewController(t)
	store := registrationMock.NewMockDraftStore(ctrl)
	employees := employeeMock.NewMockService(ctrl)
	return &wizardDeps{
		store:     store,
		employees: employees,
		service:   registration.NewService(store, employees),
	}
}

func draftInStep(step string) *registration.Draft {
	d := registration.NewDraft("")
	d.Step = step
	return d
}

func signedDeclarations() registration.Declarations {
	block := registration.DeclarationBlock{
		Agreed:        true,
		SignerName:    "Asha Rao",
		SignatureDate: "2024-01-10",
	}
	return registration.Declarations{Employee: block, ReportingOfficer: block}
}

func TestWizard_PreviewBlockedByValidation(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepFill)
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	// No Save: a blocked transition leaves the draft untouched.

	resp, err := deps.service.Preview(ctx, draft.ID)

	var ve *registration.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, registration.StepFill, resp.Step)
	assert.Equal(t, registration.SectionAll, resp.EditingSection)
	assert.Contains(t, ve.Fields, "full_name")
	assert.Contains(t, ve.Fields, "kgid")
}

func TestWizard_PreviewSucceeds(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepFill)
	draft.Form = validForm()

	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.store.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, d *registration.Draft) error {
			assert.Equal(t, registration.StepPreview, d.Step)
			return nil
		})

	resp, err := deps.service.Preview(ctx, draft.ID)

	require.NoError(t, err)
	assert.Equal(t, registration.StepPreview, resp.Step)
	assert.Empty(t, resp.Errors)
}

func TestWizard_ProbationaryDocBlocksPreview(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepFill)
	draft.Form = validForm()
	draft.Form.SpecialConditions.ProbationaryPeriod = true

	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)

	resp, err := deps.service.Preview(ctx, draft.ID)

	var ve *registration.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Fields, 1)
	assert.Contains(t, ve.Fields, "probationary_period_doc")
	assert.Equal(t, registration.StepFill, resp.Step)
}

func TestWizard_EditSection(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepPreview)
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.EditSection(ctx, draft.ID, 3)

	require.NoError(t, err)
	assert.Equal(t, registration.StepFill, resp.Step)
	assert.Equal(t, 3, resp.EditingSection)
}

func TestWizard_EditSectionRejectsBadSection(t *testing.T) {
	deps := setupWizardTest(t)

	_, err := deps.service.EditSection(context.Background(), "any", 8)
	assert.ErrorIs(t, err, registrationerrors.ErrInvalidSection)

	_, err = deps.service.EditSection(context.Background(), "any", 0)
	assert.ErrorIs(t, err, registrationerrors.ErrInvalidSection)
}

func TestWizard_SaveSectionValidates(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepFill)
	draft.EditingSection = 2
	// Form left empty: the footer save must re-run the validator.
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)

	resp, err := deps.service.SaveSection(ctx, draft.ID)

	var ve *registration.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, registration.StepFill, resp.Step)
	assert.Equal(t, 2, resp.EditingSection)
}

func TestWizard_CancelEditSkipsValidation(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepFill)
	draft.EditingSection = 2
	// Same invalid form as the SaveSection case; the header back control
	// returns to preview anyway.
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.CancelEdit(ctx, draft.ID)

	require.NoError(t, err)
	assert.Equal(t, registration.StepPreview, resp.Step)
	assert.Equal(t, registration.SectionAll, resp.EditingSection)
}

func TestWizard_DeclarationNavigation(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepPreview)
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.ProceedToDeclaration(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, registration.StepDeclare, resp.Step)

	back := draftInStep(registration.StepDeclare)
	deps.store.EXPECT().Get(ctx, back.ID).Return(back, nil)
	deps.store.EXPECT().Save(ctx, gomock.Any()).Return(nil)

	resp, err = deps.service.BackToPreview(ctx, back.ID)
	require.NoError(t, err)
	assert.Equal(t, registration.StepPreview, resp.Step)
}

func TestWizard_StepGuards(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepDeclare)
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)

	_, err := deps.service.Preview(ctx, draft.ID)
	assert.ErrorIs(t, err, registrationerrors.ErrInvalidStep)
}

func TestWizard_SubmitCreatesEmployee(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepDeclare)
	draft.Form = validForm()
	draft.Declarations = signedDeclarations()

	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.employees.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeDetailResponse, error) {
			assert.Equal(t, "KG123456", req.KGID)
			require.Len(t, req.PastServices, 1)
			return employee.EmployeeDetailResponse{
				EmployeeResponse: employee.EmployeeResponse{ID: "new-id", KGID: req.KGID},
			}, nil
		})
	deps.store.EXPECT().Delete(ctx, draft.ID).Return(nil)

	detail, err := deps.service.Submit(ctx, draft.ID)

	require.NoError(t, err)
	assert.Equal(t, "new-id", detail.ID)
}

func TestWizard_SubmitUpdatesInEditMode(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepDeclare)
	draft.EmployeeID = "existing-id"
	draft.Form = validForm()
	draft.Declarations = signedDeclarations()

	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.employees.EXPECT().
		Update(ctx, "existing-id", gomock.Any()).
		Return(employee.EmployeeDetailResponse{
			EmployeeResponse: employee.EmployeeResponse{ID: "existing-id"},
		}, nil)
	deps.store.EXPECT().Delete(ctx, draft.ID).Return(nil)

	detail, err := deps.service.Submit(ctx, draft.ID)

	require.NoError(t, err)
	assert.Equal(t, "existing-id", detail.ID)
}

func TestWizard_SubmitBlockedByDeclarations(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepDeclare)
	draft.Form = validForm()
	// Declarations left unsigned; no persist, no delete.
	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)

	_, err := deps.service.Submit(ctx, draft.ID)

	var ve *registration.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Fields, "employee_declaration_agreed")
}

func TestWizard_SubmitKeepsDraftOnPersistFailure(t *testing.T) {
	deps := setupWizardTest(t)
	ctx := context.Background()

	draft := draftInStep(registration.StepDeclare)
	draft.Form = validForm()
	draft.Declarations = signedDeclarations()

	deps.store.EXPECT().Get(ctx, draft.ID).Return(draft, nil)
	deps.employees.EXPECT().
		Create(ctx, gomock.Any()).
		Return(employee.EmployeeDetailResponse{}, errors.New("db down"))
	// No Delete: a failed submit keeps the draft.

	_, err := deps.service.Submit(ctx, draft.ID)
	assert.Error(t, err)
}
