package export

import (
	"fmt"

	"transferdesk/internal/employee"
	"transferdesk/internal/transfer"

	"github.com/xuri/excelize/v2"
)

const (
	employeeSheet = "Employees"
	transferSheet = "Transfers"
)

// BuildWorkbook produces the two-sheet export: one row per employee, one row
// per transfer order. Callers own writing and closing the file.
func BuildWorkbook(employees []employee.Employee, transfers []transfer.Transfer) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"2F5496"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	index, err := f.NewSheet(employeeSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	if err := writeSheetRow(f, employeeSheet, 1, employeeCSVHeader); err != nil {
		return nil, err
	}
	if err := styleHeader(f, employeeSheet, len(employeeCSVHeader), headerStyle); err != nil {
		return nil, err
	}
	for i := range employees {
		e := &employees[i]
		row := []string{
			e.KGID, e.FullName, e.Gender,
			e.DateOfBirth.Format("2006-01-02"),
			e.DateOfJoining.Format("2006-01-02"),
			e.Designation, e.DesignationGroup, e.DesignationSubGroup,
			e.PersonalEmail, e.PersonalPhone, e.OfficeEmail, e.OfficePhone,
			e.CurrentInstitution, e.CurrentDistrict, e.CurrentTaluk, e.CurrentCity,
			e.CurrentPositionSince.Format("2006-01-02"),
			fmt.Sprintf("%d", len(e.PastServices)),
		}
		if err := writeSheetRow(f, employeeSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	if _, err := f.NewSheet(transferSheet); err != nil {
		return nil, err
	}
	if err := writeSheetRow(f, transferSheet, 1, transferCSVHeader); err != nil {
		return nil, err
	}
	if err := styleHeader(f, transferSheet, len(transferCSVHeader), headerStyle); err != nil {
		return nil, err
	}
	for i := range transfers {
		t := &transfers[i]
		row := []string{
			t.OrderNumber, t.EmployeeID.String(),
			t.FromInstitution, t.FromCity, t.FromPosition,
			t.ToInstitution, t.ToCity, t.ToPosition,
			t.EffectiveFrom.Format("2006-01-02"),
		}
		if err := writeSheetRow(f, transferSheet, i+2, row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

func writeSheetRow(f *excelize.File, sheet string, row int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return f.SetSheetRow(sheet, cell, &cells)
}

func styleHeader(f *excelize.File, sheet string, columns, style int) error {
	last, err := excelize.CoordinatesToCellName(columns, 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", last, style)
}
