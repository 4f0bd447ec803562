package registration

import (
	"context"

	"transferdesk/internal/employee"
	registrationerrors "transferdesk/internal/registration/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=registration_service.go -destination=mock/registration_service_mock.go -package=mock
type Service interface {
	StartDraft(ctx context.Context, employeeID string) (DraftResponse, error)
	GetDraft(ctx context.Context, id string) (DraftResponse, error)
	UpdateForm(ctx context.Context, id string, form FormState) (DraftResponse, error)
	AddEntry(ctx context.Context, id string) (DraftResponse, error)
	RemoveEntry(ctx context.Context, id string, index int) (DraftResponse, error)
	UpdateEntry(ctx context.Context, id string, index int, patch EntryPatch) (DraftResponse, error)
	Preview(ctx context.Context, id string) (DraftResponse, error)
	EditSection(ctx context.Context, id string, section int) (DraftResponse, error)
	SaveSection(ctx context.Context, id string) (DraftResponse, error)
	CancelEdit(ctx context.Context, id string) (DraftResponse, error)
	ProceedToDeclaration(ctx context.Context, id string) (DraftResponse, error)
	BackToPreview(ctx context.Context, id string) (DraftResponse, error)
	UpdateDeclarations(ctx context.Context, id string, d Declarations) (DraftResponse, error)
	Submit(ctx context.Context, id string) (employee.EmployeeDetailResponse, error)
}

type service struct {
	store     DraftStore
	employees employee.Service
	logger    *zap.Logger
}

func NewService(store DraftStore, employees employee.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("registration.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("registration.service")
	}
	return &service{store: store, employees: employees, logger: l}
}

func (s *service) StartDraft(ctx context.Context, employeeID string) (DraftResponse, error) {
	draft := NewDraft(employeeID)

	if employeeID != "" {
		detail, err := s.employees.GetByID(ctx, employeeID)
		if err != nil {
			s.logger.Warn("start draft preload failed",
				zap.String("employee_id", employeeID),
				zap.Error(err),
			)
			return DraftResponse{}, err
		}
		draft.Form = formFromDetail(detail)
	}

	if err := s.store.Save(ctx, draft); err != nil {
		s.logger.Error("start draft save failed", zap.Error(err))
		return DraftResponse{}, err
	}

	s.logger.Info("draft started",
		zap.String("draft_id", draft.ID),
		zap.Bool("edit_mode", employeeID != ""),
	)
	return DraftResponse{Draft: *draft}, nil
}

func (s *service) GetDraft(ctx context.Context, id string) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

// UpdateForm replaces the whole form while filling. Tenure on every entry is
// recomputed server-side so a stale client-cached value never survives a
// save.
func (s *service) UpdateForm(ctx context.Context, id string, form FormState) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepFill {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}

	if len(form.PastServices) == 0 {
		form.PastServices = []ServiceEntry{{}}
	}
	for i := range form.PastServices {
		e := &form.PastServices[i]
		e.Tenure = entryTenure(e.FromDate, e.ToDate)
	}

	draft.Form = form
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

func (s *service) AddEntry(ctx context.Context, id string) (DraftResponse, error) {
	return s.mutateEntries(ctx, id, func(f *FormState) error {
		AddServiceEntry(f)
		return nil
	})
}

func (s *service) RemoveEntry(ctx context.Context, id string, index int) (DraftResponse, error) {
	return s.mutateEntries(ctx, id, func(f *FormState) error {
		return RemoveServiceEntry(f, index)
	})
}

func (s *service) UpdateEntry(ctx context.Context, id string, index int, patch EntryPatch) (DraftResponse, error) {
	return s.mutateEntries(ctx, id, func(f *FormState) error {
		return UpdateServiceEntry(f, index, patch)
	})
}

func (s *service) mutateEntries(ctx context.Context, id string, mutate func(*FormState) error) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepFill {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}
	if err := mutate(&draft.Form); err != nil {
		return DraftResponse{}, err
	}
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

// Preview moves fill to preview once the section validator passes. On
// failure the draft stays exactly as it was, step and editing section
// included, and the error map travels back to the caller.
func (s *service) Preview(ctx context.Context, id string) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepFill {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}

	if errs := ValidateSections(&draft.Form); len(errs) > 0 {
		return DraftResponse{Draft: *draft, Errors: errs}, &ValidationError{Fields: errs}
	}

	draft.Step = StepPreview
	draft.EditingSection = SectionAll
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

func (s *service) EditSection(ctx context.Context, id string, section int) (DraftResponse, error) {
	if section < SectionMin || section > SectionMax {
		return DraftResponse{}, registrationerrors.ErrInvalidSection
	}

	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepPreview {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}

	draft.Step = StepFill
	draft.EditingSection = section
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

// SaveSection is the footer "Save & Back to Preview": it re-runs the section
// validator before returning to preview.
func (s *service) SaveSection(ctx context.Context, id string) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepFill || draft.EditingSection == SectionAll {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}

	if errs := ValidateSections(&draft.Form); len(errs) > 0 {
		return DraftResponse{Draft: *draft, Errors: errs}, &ValidationError{Fields: errs}
	}

	draft.Step = StepPreview
	draft.EditingSection = SectionAll
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

// CancelEdit is the header back control while editing a section: it returns
// to preview without validating. The asymmetry with SaveSection is
// intentional and kept.
func (s *service) CancelEdit(ctx context.Context, id string) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepFill || draft.EditingSection == SectionAll {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}

	draft.Step = StepPreview
	draft.EditingSection = SectionAll
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

func (s *service) ProceedToDeclaration(ctx context.Context, id string) (DraftResponse, error) {
	return s.step(ctx, id, StepPreview, StepDeclare)
}

func (s *service) BackToPreview(ctx context.Context, id string) (DraftResponse, error) {
	return s.step(ctx, id, StepDeclare, StepPreview)
}

func (s *service) step(ctx context.Context, id, from, to string) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != from {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}
	draft.Step = to
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

func (s *service) UpdateDeclarations(ctx context.Context, id string, d Declarations) (DraftResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return DraftResponse{}, err
	}
	if draft.Step != StepDeclare {
		return DraftResponse{}, registrationerrors.ErrInvalidStep
	}
	draft.Declarations = d
	if err := s.store.Save(ctx, draft); err != nil {
		return DraftResponse{}, err
	}
	return DraftResponse{Draft: *draft}, nil
}

// Submit runs the declaration validator and persists the assembled employee
// record, creating or updating depending on the draft's mode. The draft is
// deleted only after a successful write; a failed submit keeps the user in
// declare with everything intact.
func (s *service) Submit(ctx context.Context, id string) (employee.EmployeeDetailResponse, error) {
	draft, err := s.store.Get(ctx, id)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}
	if draft.Step != StepDeclare {
		return employee.EmployeeDetailResponse{}, registrationerrors.ErrInvalidStep
	}

	if errs := ValidateDeclarations(draft.Declarations); len(errs) > 0 {
		return employee.EmployeeDetailResponse{}, &ValidationError{Fields: errs}
	}

	req := requestFromForm(draft.Form)

	var detail employee.EmployeeDetailResponse
	if draft.EmployeeID != "" {
		detail, err = s.employees.Update(ctx, draft.EmployeeID, req)
	} else {
		detail, err = s.employees.Create(ctx, req)
	}
	if err != nil {
		s.logger.Warn("draft submit persist failed",
			zap.String("draft_id", draft.ID),
			zap.Error(err),
		)
		return employee.EmployeeDetailResponse{}, err
	}

	if err := s.store.Delete(ctx, draft.ID); err != nil {
		// The record is already persisted; a leftover draft just ages out.
		s.logger.Warn("draft cleanup failed", zap.String("draft_id", draft.ID), zap.Error(err))
	}

	s.logger.Info("draft submitted",
		zap.String("draft_id", draft.ID),
		zap.String("employee_id", detail.ID),
	)
	return detail, nil
}

func requestFromForm(f FormState) employee.CreateEmployeeRequest {
	services := make([]employee.PastServiceRequest, len(f.PastServices))
	for i, e := range f.PastServices {
		services[i] = employee.PastServiceRequest{
			PostHeld:     e.PostHeld,
			PostGroup:    e.PostGroup,
			PostSubGroup: e.PostSubGroup,
			Institution:  e.Institution,
			District:     e.District,
			Taluk:        e.Taluk,
			City:         e.City,
			FromDate:     e.FromDate,
			ToDate:       e.ToDate,
			Kind:         e.Kind,
		}
	}

	return employee.CreateEmployeeRequest{
		KGID:                 f.KGID,
		FullName:             f.FullName,
		Gender:               f.Gender,
		DateOfBirth:          f.DateOfBirth,
		DateOfJoining:        f.DateOfJoining,
		Designation:          f.Designation,
		DesignationGroup:     f.DesignationGroup,
		DesignationSubGroup:  f.DesignationSubGroup,
		PersonalEmail:        f.PersonalEmail,
		PersonalPhone:        f.PersonalPhone,
		PersonalAddress:      f.PersonalAddress,
		PersonalPinCode:      f.PersonalPinCode,
		OfficeEmail:          f.OfficeEmail,
		OfficePhone:          f.OfficePhone,
		OfficeAddress:        f.OfficeAddress,
		OfficePinCode:        f.OfficePinCode,
		CurrentInstitution:   f.CurrentInstitution,
		CurrentDistrict:      f.CurrentDistrict,
		CurrentTaluk:         f.CurrentTaluk,
		CurrentCity:          f.CurrentCity,
		CurrentPositionSince: f.CurrentPositionSince,
		SpecialConditions:    f.SpecialConditions,
		PastServices:         services,
	}
}

func formFromDetail(d employee.EmployeeDetailResponse) FormState {
	services := make([]ServiceEntry, len(d.PastServices))
	for i, ps := range d.PastServices {
		services[i] = ServiceEntry{
			PostHeld:     ps.PostHeld,
			PostGroup:    ps.PostGroup,
			PostSubGroup: ps.PostSubGroup,
			Institution:  ps.Institution,
			District:     ps.District,
			Taluk:        ps.Taluk,
			City:         ps.City,
			FromDate:     ps.FromDate,
			ToDate:       ps.ToDate,
			Tenure:       ps.Tenure,
			Kind:         ps.Kind,
		}
	}
	if len(services) == 0 {
		services = []ServiceEntry{{}}
	}

	return FormState{
		KGID:                 d.KGID,
		FullName:             d.FullName,
		Gender:               d.Gender,
		DateOfBirth:          d.DateOfBirth,
		DateOfJoining:        d.DateOfJoining,
		Designation:          d.Designation,
		DesignationGroup:     d.DesignationGroup,
		DesignationSubGroup:  d.DesignationSubGroup,
		PersonalEmail:        d.PersonalEmail,
		PersonalPhone:        d.PersonalPhone,
		PersonalAddress:      d.PersonalAddress,
		PersonalPinCode:      d.PersonalPinCode,
		OfficeEmail:          d.OfficeEmail,
		OfficePhone:          d.OfficePhone,
		OfficeAddress:        d.OfficeAddress,
		OfficePinCode:        d.OfficePinCode,
		CurrentInstitution:   d.CurrentInstitution,
		CurrentDistrict:      d.CurrentDistrict,
		CurrentTaluk:         d.CurrentTaluk,
		CurrentCity:          d.CurrentCity,
		CurrentPositionSince: d.CurrentPositionSince,
		SpecialConditions:    d.SpecialConditions,
		PastServices:         services,
	}
}
