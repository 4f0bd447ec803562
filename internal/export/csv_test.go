package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"transferdesk/internal/analytics"
	"transferdesk/internal/employee"
	"transferdesk/internal/transfer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteEmployeesCSV(t *testing.T) {
	employees := []employee.Employee{{
		ID:                   uuid.New(),
		KGID:                 "KG123456",
		FullName:             "Asha Rao",
		Gender:               "Female",
		DateOfBirth:          time.Date(1988, 4, 2, 0, 0, 0, 0, time.UTC),
		DateOfJoining:        time.Date(2012, 7, 16, 0, 0, 0, 0, time.UTC),
		Designation:          "Staff Nurse",
		DesignationGroup:     "Nursing",
		CurrentInstitution:   "District Hospital Mysuru",
		CurrentDistrict:      "Mysuru",
		CurrentCity:          "Mysuru",
		CurrentPositionSince: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
		PastServices:         []employee.PastService{{}, {}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteEmployeesCSV(&buf, employees))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, employeeCSVHeader, rows[0])
	assert.Equal(t, "KG123456", rows[1][0])
	assert.Equal(t, "Asha Rao", rows[1][1])
	assert.Equal(t, "1988-04-02", rows[1][3])
	assert.Equal(t, "2021-02-01", rows[1][16])
	assert.Equal(t, "2", rows[1][17])
}

func TestWriteTransfersCSV(t *testing.T) {
	emplID := uuid.New()
	transfers := []transfer.Transfer{{
		ID:              uuid.New(),
		OrderNumber:     "TRF-000042",
		EmployeeID:      emplID,
		FromInstitution: "Taluk Hospital Hunsur",
		FromCity:        "Hunsur",
		FromPosition:    "Staff Nurse",
		ToInstitution:   "District Hospital Mysuru",
		ToCity:          "Mysuru",
		ToPosition:      "Senior Staff Nurse",
		EffectiveFrom:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteTransfersCSV(&buf, transfers))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, transferCSVHeader, rows[0])
	assert.Equal(t, []string{
		"TRF-000042", emplID.String(),
		"Taluk Hospital Hunsur", "Hunsur", "Staff Nurse",
		"District Hospital Mysuru", "Mysuru", "Senior Staff Nurse",
		"2024-06-01",
	}, rows[1])
}

func TestWritePromotionsCSV(t *testing.T) {
	promotions := []analytics.TransferRecord{{
		KGID:         "KG123456",
		EmployeeName: "Asha Rao",
		FromPosition: "Staff Nurse",
		ToPosition:   "Senior Staff Nurse",
		FromCity:     "Hunsur",
		ToCity:       "Mysuru",
		Date:         "2024-06-01",
		Year:         2024,
	}}

	var buf bytes.Buffer
	require.NoError(t, WritePromotionsCSV(&buf, promotions))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, promotionCSVHeader, rows[0])
	assert.Equal(t, "2024", rows[1][7])
}

func TestWriteEmployeesCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEmployeesCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
}
