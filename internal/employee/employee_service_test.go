package employee_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"transferdesk/internal/employee"
	employeeerrors "transferdesk/internal/employee/errors"
	"transferdesk/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type employeeServiceDeps struct {
	db        *sql.DB
	dbMock    sqlmock.Sqlmock
	repo      *mock.MockRepository
	redisMock redismock.ClientMock
	service   employee.Service
}

func setupEmployeeServiceTest(t *testing.T) *employeeServiceDeps {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	return &employeeServiceDeps{
		db:        db,
		dbMock:    dbMock,
		repo:      repo,
		redisMock: redisMock,
		service:   employee.NewService(db, repo, rdb),
	}
}

func validCreateRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		KGID:                 "KG123456",
		FullName:             "Asha Rao",
		Gender:               "Female",
		DateOfBirth:          "1988-04-02",
		DateOfJoining:        "2012-07-16",
		Designation:          "Staff Nurse",
		DesignationGroup:     "Nursing",
		PersonalEmail:        "asha@example.com",
		PersonalPhone:        "9876543210",
		PersonalAddress:      "12 Main Road",
		PersonalPinCode:      "570001",
		OfficeEmail:          "asha.rao@health.gov.in",
		OfficePhone:          "0821-2440000",
		OfficeAddress:        "District Hospital",
		OfficePinCode:        "570001",
		CurrentInstitution:   "District Hospital Mysuru",
		CurrentDistrict:      "Mysuru",
		CurrentCity:          "Mysuru",
		CurrentPositionSince: "2021-02-01",
		PastServices: []employee.PastServiceRequest{{
			PostHeld:    "Staff Nurse",
			Institution: "Taluk Hospital Hunsur",
			District:    "Mysuru",
			City:        "Hunsur",
			FromDate:    "2012-07-16",
			ToDate:      "2021-01-31",
		}},
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("persists and invalidates the options cache", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, "KG123456", e.KGID)
				require.Len(t, e.PastServices, 1)
				assert.NotEmpty(t, e.PastServices[0].Tenure)
				assert.Equal(t, employee.ServiceKindPast, e.PastServices[0].Kind)
				return nil
			})
		deps.dbMock.ExpectCommit()
		deps.redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		detail, err := deps.service.Create(ctx, validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, "KG123456", detail.KGID)
		assert.NotEmpty(t, detail.ID)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("rejects an unparseable date before opening a transaction", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		req := validCreateRequest()
		req.DateOfBirth = "02-04-1988"

		_, err := deps.service.Create(context.Background(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidDate)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("maps a KGID unique violation and rolls back", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{
			Code:           "23505",
			ConstraintName: "uq_employee_kgid",
		})
		deps.dbMock.ExpectRollback()

		_, err := deps.service.Create(ctx, validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrKGIDAlreadyExists)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Update(t *testing.T) {
	t.Run("rewrites the service history inside one transaction", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		id := uuid.New()
		existing := &employee.Employee{
			ID:        id,
			KGID:      "KG123456",
			CreatedAt: time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC),
		}
		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(existing, nil)

		deps.dbMock.ExpectBegin()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			ReplacePastServices(ctx, gomock.Any(), gomock.Any()).
			Return(nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, id, e.ID)
				assert.Equal(t, existing.CreatedAt, e.CreatedAt)
				return nil
			})
		deps.dbMock.ExpectCommit()
		deps.redisMock.ExpectDel(employee.OptionsCacheKey).SetVal(1)

		detail, err := deps.service.Update(ctx, id.String(), validCreateRequest())

		require.NoError(t, err)
		assert.Equal(t, id.String(), detail.ID)
		assert.NoError(t, deps.dbMock.ExpectationsWereMet())
	})

	t.Run("rejects a malformed id without touching the repository", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		_, err := deps.service.Update(context.Background(), "not-a-uuid", validCreateRequest())

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	t.Run("maps a missing row to the domain error", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		id := uuid.NewString()
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_List(t *testing.T) {
	t.Run("defaults page and limit", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			List(ctx, employee.ListFilter{Page: 1, Limit: 10}).
			Return([]employee.Employee{{ID: uuid.New(), KGID: "KG1"}}, int64(1), nil)

		res, total, err := deps.service.List(ctx, employee.ListFilter{})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, res, 1)
		assert.Equal(t, "KG1", res[0].KGID)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	options := []employee.OptionResponse{
		{ID: uuid.NewString(), KGID: "KG123456", FullName: "Asha Rao"},
	}
	payload, _ := json.Marshal(options)

	t.Run("serves from cache without hitting the repository", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		deps.redisMock.ExpectGet(employee.OptionsCacheKey).SetVal(string(payload))

		res, err := deps.service.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, options, res)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("falls through to the repository and repopulates the cache", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)
		ctx := context.Background()

		emplID := uuid.MustParse(options[0].ID)
		deps.redisMock.ExpectGet(employee.OptionsCacheKey).RedisNil()
		deps.repo.EXPECT().FindOptions(ctx).Return([]employee.Employee{
			{ID: emplID, KGID: "KG123456", FullName: "Asha Rao"},
		}, nil)
		deps.redisMock.ExpectSet(employee.OptionsCacheKey, payload, time.Hour).SetVal("OK")

		res, err := deps.service.GetOptions(ctx)

		require.NoError(t, err)
		assert.Equal(t, options, res)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})
}
