package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"transferdesk/internal/analytics"
	"transferdesk/internal/employee"
	"transferdesk/internal/transfer"
)

// Column order is fixed; downstream spreadsheets imported from these files
// key on position, not header text.
var employeeCSVHeader = []string{
	"KGID", "Full Name", "Gender", "Date of Birth", "Date of Joining",
	"Designation", "Designation Group", "Designation Sub-Group",
	"Personal Email", "Personal Phone", "Office Email", "Office Phone",
	"Current Institution", "Current District", "Current Taluk", "Current City",
	"Current Position Since", "Past Postings",
}

func WriteEmployeesCSV(w io.Writer, employees []employee.Employee) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(employeeCSVHeader); err != nil {
		return err
	}

	for i := range employees {
		e := &employees[i]
		row := []string{
			e.KGID,
			e.FullName,
			e.Gender,
			e.DateOfBirth.Format("2006-01-02"),
			e.DateOfJoining.Format("2006-01-02"),
			e.Designation,
			e.DesignationGroup,
			e.DesignationSubGroup,
			e.PersonalEmail,
			e.PersonalPhone,
			e.OfficeEmail,
			e.OfficePhone,
			e.CurrentInstitution,
			e.CurrentDistrict,
			e.CurrentTaluk,
			e.CurrentCity,
			e.CurrentPositionSince.Format("2006-01-02"),
			strconv.Itoa(len(e.PastServices)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var transferCSVHeader = []string{
	"Order Number", "Employee ID", "From Institution", "From City", "From Position",
	"To Institution", "To City", "To Position", "Effective From",
}

func WriteTransfersCSV(w io.Writer, transfers []transfer.Transfer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(transferCSVHeader); err != nil {
		return err
	}

	for i := range transfers {
		t := &transfers[i]
		row := []string{
			t.OrderNumber,
			t.EmployeeID.String(),
			t.FromInstitution,
			t.FromCity,
			t.FromPosition,
			t.ToInstitution,
			t.ToCity,
			t.ToPosition,
			t.EffectiveFrom.Format("2006-01-02"),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

var promotionCSVHeader = []string{
	"KGID", "Employee Name", "From Position", "To Position",
	"From City", "To City", "Effective Date", "Year",
}

func WritePromotionsCSV(w io.Writer, promotions []analytics.TransferRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(promotionCSVHeader); err != nil {
		return err
	}

	for _, p := range promotions {
		row := []string{
			p.KGID,
			p.EmployeeName,
			p.FromPosition,
			p.ToPosition,
			p.FromCity,
			p.ToCity,
			p.Date,
			strconv.Itoa(p.Year),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
