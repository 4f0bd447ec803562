package transfer_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"transferdesk/internal/employee"
	employeeerrors "transferdesk/internal/employee/errors"
	employeeMock "transferdesk/internal/employee/mock"
	counterMock "transferdesk/internal/shared/counter/mock"
	"transferdesk/internal/transfer"
	transfererrors "transferdesk/internal/transfer/errors"
	transferMock "transferdesk/internal/transfer/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type transferServiceDeps struct {
	db        *sql.DB
	dbMock    sqlmock.Sqlmock
	repo      *transferMock.MockRepository
	employees *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	service   transfer.Service
}

func setupTransferServiceTest(t *testing.T) *transferServiceDeps {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctrl := gomock.NewController(t)
	repo := transferMock.NewMockRepository(ctrl)
	employees := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	return &transferServiceDeps{
		db:        db,
		dbMock:    dbMock,
		repo:      repo,
		employees: employees,
		counter:   counterRepo,
		service:   transfer.NewService(db, repo, employees, counterRepo, nil, nil),
	}
}

func postedEmployee() *employee.Employee {
	return &employee.Employee{
		ID:                   uuid.New(),
		KGID:                 "KG123456",
		FullName:             "Asha Rao",
		Designation:          "Staff Nurse",
		DesignationGroup:     "Nursing",
		CurrentInstitution:   "Taluk Hospital Hunsur",
		CurrentDistrict:      "Mysuru",
		CurrentTaluk:         "Hunsur",
		CurrentCity:          "Hunsur",
		CurrentPositionSince: time.Date(2021, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestTransferService_Transfer(t *testing.T) {
	t.Run("records the order and folds the posting into history", func(t *testing.T) {
		deps := setupTransferServiceTest(t)
		ctx := context.Background()

		empl := postedEmployee()
		deps.employees.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)
		deps.counter.EXPECT().GetNextValue(ctx, "transfer_order").Return(int64(42), nil)

		deps.dbMock.ExpectBegin()
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().
			ReplacePastServices(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee, services []employee.PastService) error {
				require.Len(t, services, 1)
				closed := services[0]
				assert.Equal(t, "Taluk Hospital Hunsur", closed.Institution)
				assert.Equal(t, "Staff Nurse", closed.PostHeld)
				assert.Equal(t, "2021-02-01", closed.FromDate.Format("2006-01-02"))
				assert.Equal(t, "2024-06-01", closed.ToDate.Format("2006-01-02"))
				assert.NotEmpty(t, closed.Tenure)
				assert.Equal(t, employee.ServiceKindPast, closed.Kind)
				return nil
			})
		deps.employees.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "District Hospital Mysuru", e.CurrentInstitution)
				assert.Equal(t, "Mysuru", e.CurrentCity)
				assert.Equal(t, "Senior Staff Nurse", e.Designation)
				assert.Equal(t, "2024-06-01", e.CurrentPositionSince.Format("2006-01-02"))
				return nil
			})
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *transfer.Transfer) error {
				assert.Equal(t, "TRF-000042", rec.OrderNumber)
				assert.Equal(t, "Hunsur", rec.FromCity)
				assert.Equal(t, "Mysuru", rec.ToCity)
				assert.Equal(t, "Staff Nurse", rec.FromPosition)
				return nil
			})
		deps.dbMock.ExpectCommit()

		result, err := deps.service.Transfer(ctx, empl.ID.String(), transfer.TransferRequest{
			ToInstitution: "District Hospital Mysuru",
			ToDistrict:    "Mysuru",
			ToTaluk:       "Mysuru",
			ToCity:        "Mysuru",
			ToPosition:    "Senior Staff Nurse",
			EffectiveFrom: "2024-06-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "TRF-000042", result.Transfer.OrderNumber)
		assert.Equal(t, "District Hospital Mysuru", result.Employee.CurrentInstitution)
		require.Len(t, result.Employee.PastServices, 1)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("allows a pure promotion at the same institution", func(t *testing.T) {
		deps := setupTransferServiceTest(t)
		ctx := context.Background()

		empl := postedEmployee()
		deps.employees.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)
		deps.counter.EXPECT().GetNextValue(ctx, "transfer_order").Return(int64(7), nil)

		deps.dbMock.ExpectBegin()
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().ReplacePastServices(ctx, gomock.Any(), gomock.Any()).Return(nil)
		deps.employees.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.dbMock.ExpectCommit()

		result, err := deps.service.Transfer(ctx, empl.ID.String(), transfer.TransferRequest{
			ToInstitution: empl.CurrentInstitution,
			ToDistrict:    empl.CurrentDistrict,
			ToTaluk:       empl.CurrentTaluk,
			ToCity:        empl.CurrentCity,
			ToPosition:    "Senior Staff Nurse",
			EffectiveFrom: "2024-06-01",
		})

		require.NoError(t, err)
		assert.Equal(t, "Senior Staff Nurse", result.Employee.Designation)
	})

	t.Run("rejects a transfer to the same place and position", func(t *testing.T) {
		deps := setupTransferServiceTest(t)
		ctx := context.Background()

		empl := postedEmployee()
		deps.employees.EXPECT().FindByID(ctx, empl.ID.String()).Return(empl, nil)

		_, err := deps.service.Transfer(ctx, empl.ID.String(), transfer.TransferRequest{
			ToInstitution: empl.CurrentInstitution,
			ToDistrict:    empl.CurrentDistrict,
			ToTaluk:       empl.CurrentTaluk,
			ToCity:        empl.CurrentCity,
			EffectiveFrom: "2024-06-01",
		})

		assert.ErrorIs(t, err, transfererrors.ErrSameCityAndPosition)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("rejects an unparseable effective date", func(t *testing.T) {
		deps := setupTransferServiceTest(t)

		_, err := deps.service.Transfer(context.Background(), uuid.NewString(), transfer.TransferRequest{
			ToInstitution: "District Hospital Mysuru",
			ToCity:        "Mysuru",
			EffectiveFrom: "01/06/2024",
		})

		assert.ErrorIs(t, err, transfererrors.ErrInvalidEffectiveDate)
	})

	t.Run("maps an unknown employee", func(t *testing.T) {
		deps := setupTransferServiceTest(t)
		ctx := context.Background()

		id := uuid.NewString()
		deps.employees.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Transfer(ctx, id, transfer.TransferRequest{
			ToInstitution: "District Hospital Mysuru",
			ToCity:        "Mysuru",
			EffectiveFrom: "2024-06-01",
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestTransferService_GetByID(t *testing.T) {
	t.Run("maps a missing order to the domain error", func(t *testing.T) {
		deps := setupTransferServiceTest(t)
		ctx := context.Background()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, transfererrors.ErrTransferNotFound)
	})
}
