package registration

import (
	"fmt"
	"regexp"
	"strings"
)

var nameRe = regexp.MustCompile(`^[A-Za-z .]+$`)

// ValidateSections checks sections 1 through 7 of the form and returns a
// field-keyed error map, empty iff the form is valid. It never mutates the
// form; clearing a shown error after a correction is the caller's concern.
func ValidateSections(f *FormState) map[string]string {
	errs := map[string]string{}

	required := []struct {
		key, value, message string
	}{
		{"kgid", f.KGID, "KGID is required"},
		{"full_name", f.FullName, "Full name is required"},
		{"gender", f.Gender, "Gender is required"},
		{"date_of_birth", f.DateOfBirth, "Date of birth is required"},
		{"date_of_joining", f.DateOfJoining, "Date of joining is required"},
		{"designation", f.Designation, "Designation is required"},
		{"personal_email", f.PersonalEmail, "Personal email is required"},
		{"personal_phone", f.PersonalPhone, "Personal phone is required"},
		{"personal_address", f.PersonalAddress, "Personal address is required"},
		{"personal_pin_code", f.PersonalPinCode, "Personal PIN code is required"},
		{"office_email", f.OfficeEmail, "Office email is required"},
		{"office_phone", f.OfficePhone, "Office phone is required"},
		{"office_address", f.OfficeAddress, "Office address is required"},
		{"office_pin_code", f.OfficePinCode, "Office PIN code is required"},
		{"current_institution", f.CurrentInstitution, "Current institution is required"},
		{"current_district", f.CurrentDistrict, "Current district is required"},
		{"current_city", f.CurrentCity, "Current city is required"},
		{"current_position_since", f.CurrentPositionSince, "Current position start date is required"},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs[r.key] = r.message
		}
	}

	if _, missing := errs["full_name"]; !missing {
		if !nameRe.MatchString(strings.TrimSpace(f.FullName)) {
			errs["full_name"] = "Full name may contain only letters, spaces and periods"
		}
	}

	sc := f.SpecialConditions
	conditionalDocs := []struct {
		flag bool
		key  string
	}{
		{sc.ProbationaryPeriod, "probationary_period_doc"},
		{sc.TerminalIllness, "terminal_illness_doc"},
		{sc.PregnancyOrChildUnderOne, "pregnancy_or_child_under_one_doc"},
		{sc.RetiringWithinTwoYears, "retiring_within_two_years_doc"},
		{sc.Disability, "disability_doc"},
		{sc.WidowOrDivorceeWithChild, "widow_or_divorcee_with_child_doc"},
		{sc.SpouseGovernmentServant, "spouse_government_servant_doc"},
	}
	docValues := map[string]string{
		"probationary_period_doc":          sc.ProbationaryPeriodDoc,
		"terminal_illness_doc":             sc.TerminalIllnessDoc,
		"pregnancy_or_child_under_one_doc": sc.PregnancyOrChildUnderOneDoc,
		"retiring_within_two_years_doc":    sc.RetiringWithinTwoYearsDoc,
		"disability_doc":                   sc.DisabilityDoc,
		"widow_or_divorcee_with_child_doc": sc.WidowOrDivorceeWithChildDoc,
		"spouse_government_servant_doc":    sc.SpouseGovernmentServantDoc,
	}
	for _, cd := range conditionalDocs {
		if cd.flag && strings.TrimSpace(docValues[cd.key]) == "" {
			errs[cd.key] = "Supporting document is required when this condition is selected"
		}
	}

	for i, entry := range f.PastServices {
		entryRequired := []struct {
			field, value string
		}{
			{"post_held", entry.PostHeld},
			{"institution", entry.Institution},
			{"district", entry.District},
			{"from_date", entry.FromDate},
			{"to_date", entry.ToDate},
		}
		for _, r := range entryRequired {
			if strings.TrimSpace(r.value) == "" {
				errs[fmt.Sprintf("past_%d_%s", i, r.field)] = "This field is required"
			}
		}
	}

	return errs
}

// ValidateDeclarations checks the declare step. Each signer must agree; once
// agreed, the signer name and signature date become required, each under its
// own key.
func ValidateDeclarations(d Declarations) map[string]string {
	errs := map[string]string{}
	validateBlock(errs, "employee_declaration", d.Employee)
	validateBlock(errs, "reporting_officer_declaration", d.ReportingOfficer)
	return errs
}

func validateBlock(errs map[string]string, prefix string, b DeclarationBlock) {
	if !b.Agreed {
		errs[prefix+"_agreed"] = "Declaration must be accepted"
		return
	}
	if strings.TrimSpace(b.SignerName) == "" {
		errs[prefix+"_name"] = "Signer name is required"
	}
	if strings.TrimSpace(b.SignatureDate) == "" {
		errs[prefix+"_date"] = "Signature date is required"
	}
}
