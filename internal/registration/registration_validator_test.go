package registration_test

import (
	"fmt"
	"testing"

	"transferdesk/internal/employee"
	"transferdesk/internal/registration"

	"github.com/stretchr/testify/assert"
)

func validForm() registration.FormState {
	return registration.FormState{
		KGID:                 "KG123456",
		FullName:             "Asha Rao",
		Gender:               "Female",
		DateOfBirth:          "1988-04-02",
		DateOfJoining:        "2012-07-16",
		Designation:          "Staff Nurse",
		DesignationGroup:     "Group C",
		PersonalEmail:        "asha@example.com",
		PersonalPhone:        "9876543210",
		PersonalAddress:      "12 MG Road, Mysuru",
		PersonalPinCode:      "570001",
		OfficeEmail:          "asha.rao@health.kar.gov.in",
		OfficePhone:          "0821-2444555",
		OfficeAddress:        "District Hospital, Mysuru",
		OfficePinCode:        "570021",
		CurrentInstitution:   "District Hospital Mysuru",
		CurrentDistrict:      "Mysuru",
		CurrentTaluk:         "Mysuru",
		CurrentCity:          "Mysuru",
		CurrentPositionSince: "2021-02-01",
		PastServices: []registration.ServiceEntry{{
			PostHeld:    "Staff Nurse",
			Institution: "Taluk Hospital Hunsur",
			District:    "Mysuru",
			FromDate:    "2012-07-16",
			ToDate:      "2021-01-31",
		}},
	}
}

func TestValidateSections_ValidForm(t *testing.T) {
	form := validForm()
	assert.Empty(t, registration.ValidateSections(&form))
}

func TestValidateSections_Name(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		form := validForm()
		form.FullName = ""
		errs := registration.ValidateSections(&form)
		assert.Contains(t, errs, "full_name")
	})

	t.Run("digit rejected", func(t *testing.T) {
		form := validForm()
		form.FullName = "John2"
		errs := registration.ValidateSections(&form)
		assert.Contains(t, errs, "full_name")
	})

	t.Run("letters spaces and periods accepted", func(t *testing.T) {
		form := validForm()
		form.FullName = "John K."
		errs := registration.ValidateSections(&form)
		assert.NotContains(t, errs, "full_name")
	})
}

func TestValidateSections_ConditionalDocuments(t *testing.T) {
	set := []struct {
		name   string
		apply  func(*employee.SpecialConditions)
		docKey string
	}{
		{"probationary period", func(sc *employee.SpecialConditions) { sc.ProbationaryPeriod = true }, "probationary_period_doc"},
		{"terminal illness", func(sc *employee.SpecialConditions) { sc.TerminalIllness = true }, "terminal_illness_doc"},
		{"pregnancy or child under one", func(sc *employee.SpecialConditions) { sc.PregnancyOrChildUnderOne = true }, "pregnancy_or_child_under_one_doc"},
		{"retiring within two years", func(sc *employee.SpecialConditions) { sc.RetiringWithinTwoYears = true }, "retiring_within_two_years_doc"},
		{"disability", func(sc *employee.SpecialConditions) { sc.Disability = true }, "disability_doc"},
		{"widow or divorcee with child", func(sc *employee.SpecialConditions) { sc.WidowOrDivorceeWithChild = true }, "widow_or_divorcee_with_child_doc"},
		{"spouse government servant", func(sc *employee.SpecialConditions) { sc.SpouseGovernmentServant = true }, "spouse_government_servant_doc"},
	}

	for _, tc := range set {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.apply(&form.SpecialConditions)

			errs := registration.ValidateSections(&form)
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tc.docKey)
		})
	}

	t.Run("flag off never requires the document", func(t *testing.T) {
		form := validForm()
		form.SpecialConditions.DisabilityDoc = "certificate.pdf"
		errs := registration.ValidateSections(&form)
		assert.NotContains(t, errs, "disability_doc")
	})
}

func TestValidateSections_EntryErrors(t *testing.T) {
	form := validForm()
	form.PastServices = append(form.PastServices, registration.ServiceEntry{})

	errs := registration.ValidateSections(&form)

	for _, field := range []string{"post_held", "institution", "district", "from_date", "to_date"} {
		assert.Contains(t, errs, fmt.Sprintf("past_1_%s", field))
		assert.NotContains(t, errs, fmt.Sprintf("past_0_%s", field))
	}
}

func TestValidateDeclarations(t *testing.T) {
	agreed := registration.DeclarationBlock{
		Agreed:        true,
		SignerName:    "Asha Rao",
		SignatureDate: "2024-01-10",
	}

	t.Run("both signed", func(t *testing.T) {
		errs := registration.ValidateDeclarations(registration.Declarations{
			Employee:         agreed,
			ReportingOfficer: agreed,
		})
		assert.Empty(t, errs)
	})

	t.Run("not agreed", func(t *testing.T) {
		errs := registration.ValidateDeclarations(registration.Declarations{
			Employee:         registration.DeclarationBlock{},
			ReportingOfficer: agreed,
		})
		assert.Contains(t, errs, "employee_declaration_agreed")
		assert.NotContains(t, errs, "employee_declaration_name")
	})

	t.Run("agreed but unsigned", func(t *testing.T) {
		errs := registration.ValidateDeclarations(registration.Declarations{
			Employee:         agreed,
			ReportingOfficer: registration.DeclarationBlock{Agreed: true},
		})
		assert.Contains(t, errs, "reporting_officer_declaration_name")
		assert.Contains(t, errs, "reporting_officer_declaration_date")
	})
}
