package export

import (
	"fmt"
	"io"

	"transferdesk/internal/employee"

	"github.com/jung-kurt/gofpdf"
)

// WriteEmployeesPDF renders one page block per employee: the seven numbered
// form sections as key/value tables, matching the printed registration form.
func WriteEmployeesPDF(w io.Writer, employees []employee.Employee) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)

	for i := range employees {
		writeEmployeePage(pdf, &employees[i])
	}
	if len(employees) == 0 {
		pdf.AddPage()
		pdf.SetFont("Arial", "I", 11)
		pdf.CellFormat(0, 8, "No employee records", "", 1, "L", false, 0, "")
	}

	return pdf.Output(w)
}

func writeEmployeePage(pdf *gofpdf.Fpdf, e *employee.Employee) {
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s  (KGID %s)", e.FullName, e.KGID), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	writeSection(pdf, 1, "Personal Information", [][2]string{
		{"KGID", e.KGID},
		{"Full Name", e.FullName},
		{"Gender", e.Gender},
		{"Date of Birth", e.DateOfBirth.Format("2006-01-02")},
	})

	writeSection(pdf, 2, "Service Information", [][2]string{
		{"Date of Joining", e.DateOfJoining.Format("2006-01-02")},
		{"Designation", e.Designation},
		{"Designation Group", e.DesignationGroup},
		{"Designation Sub-Group", e.DesignationSubGroup},
	})

	writeSection(pdf, 3, "Personal Contact", [][2]string{
		{"Email", e.PersonalEmail},
		{"Phone", e.PersonalPhone},
		{"Address", e.PersonalAddress},
		{"PIN Code", e.PersonalPinCode},
	})

	writeSection(pdf, 4, "Office Contact", [][2]string{
		{"Email", e.OfficeEmail},
		{"Phone", e.OfficePhone},
		{"Address", e.OfficeAddress},
		{"PIN Code", e.OfficePinCode},
	})

	writeSection(pdf, 5, "Current Posting", [][2]string{
		{"Institution", e.CurrentInstitution},
		{"District", e.CurrentDistrict},
		{"Taluk", e.CurrentTaluk},
		{"City", e.CurrentCity},
		{"Since", e.CurrentPositionSince.Format("2006-01-02")},
	})

	writeSection(pdf, 6, "Special Conditions", specialConditionRows(e.SpecialConditions))

	historyRows := make([][2]string, 0, len(e.PastServices))
	for _, ps := range e.PastServices {
		historyRows = append(historyRows, [2]string{
			fmt.Sprintf("%s, %s", ps.PostHeld, ps.Institution),
			fmt.Sprintf("%s to %s (%s)",
				ps.FromDate.Format("2006-01-02"),
				ps.ToDate.Format("2006-01-02"),
				ps.Tenure),
		})
	}
	if len(historyRows) == 0 {
		historyRows = append(historyRows, [2]string{"Service History", "None recorded"})
	}
	writeSection(pdf, 7, "Service History", historyRows)
}

func writeSection(pdf *gofpdf.Fpdf, number int, title string, rows [][2]string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(0, 8, fmt.Sprintf("%d. %s", number, title), "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		pdf.CellFormat(60, 7, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(0, 7, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(3)
}

func specialConditionRows(sc employee.SpecialConditions) [][2]string {
	format := func(flag bool, doc string) string {
		if !flag {
			return "No"
		}
		if doc == "" {
			return "Yes"
		}
		return "Yes (" + doc + ")"
	}
	return [][2]string{
		{"Probationary Period", format(sc.ProbationaryPeriod, sc.ProbationaryPeriodDoc)},
		{"Terminal Illness", format(sc.TerminalIllness, sc.TerminalIllnessDoc)},
		{"Pregnancy / Child Under One", format(sc.PregnancyOrChildUnderOne, sc.PregnancyOrChildUnderOneDoc)},
		{"Retiring Within Two Years", format(sc.RetiringWithinTwoYears, sc.RetiringWithinTwoYearsDoc)},
		{"Disability", format(sc.Disability, sc.DisabilityDoc)},
		{"Widow / Divorcee With Child", format(sc.WidowOrDivorceeWithChild, sc.WidowOrDivorceeWithChildDoc)},
		{"Spouse Government Servant", format(sc.SpouseGovernmentServant, sc.SpouseGovernmentServantDoc)},
	}
}
