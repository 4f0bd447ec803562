package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	employeeerrors "transferdesk/internal/employee/errors"
	"transferdesk/internal/events"
	"transferdesk/internal/messaging/kafka"
	"transferdesk/internal/shared/contextutil"
	"transferdesk/internal/shared/tenure"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const OptionsCacheKey = "employees:options"

const dateLayout = "2006-01-02"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeDetailResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeDetailResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error)
	GetByKGID(ctx context.Context, kgid string) (EmployeeDetailResponse, error)
	List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error)
	GetOptions(ctx context.Context) ([]OptionResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeDetailResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("kgid", req.KGID),
	)

	empl, err := buildEmployee(uuid.New(), req)
	if err != nil {
		s.logger.Warn("create employee invalid payload", zap.String("kgid", req.KGID), zap.Error(err))
		return EmployeeDetailResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmployeeRegisteredEvent{
			EventType:  "employee_registered",
			RequestID:  rid,
			EmployeeID: empl.ID.String(),
			KGID:       empl.KGID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeDetailResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "employee",
			AggregateID:   empl.ID.String(),
			EventType:     event.EventType,
			Topic:         events.EmployeeLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeDetailResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeDetailResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("kgid", empl.KGID),
	)

	return NewDetailResponse(empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeDetailResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeDetailResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	empl, err := buildEmployee(existing.ID, req)
	if err != nil {
		s.logger.Warn("update employee invalid payload", zap.String("employee_id", id), zap.Error(err))
		return EmployeeDetailResponse{}, err
	}
	empl.CreatedAt = existing.CreatedAt

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.ReplacePastServices(ctx, empl, empl.PastServices); err != nil {
		s.logger.Error("update employee replace history failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}
	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeDetailResponse{}, err
	}

	s.invalidateOptionsCache(ctx)

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return NewDetailResponse(empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeDetailResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}

	return NewDetailResponse(empl), nil
}

// GetByKGID resolves by the business key instead of the row id. KGIDs are what
// the paper records carry, so lookups from scanned files come through here.
func (s *service) GetByKGID(ctx context.Context, kgid string) (EmployeeDetailResponse, error) {
	empl, err := s.repo.FindByKGID(ctx, kgid)
	if err != nil {
		return EmployeeDetailResponse{}, mapRepositoryError(err)
	}
	return NewDetailResponse(empl), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]EmployeeResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	employees, total, err := s.repo.List(ctx, filter)
	if err != nil {
		// A cancelled context is the caller superseding this request with a
		// newer one; it is not a server fault.
		if ctx.Err() != nil {
			return nil, 0, ctx.Err()
		}
		s.logger.Error("list employees failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		res[i] = mapToResponse(&e)
	}
	return res, total, nil
}

func (s *service) GetOptions(ctx context.Context) ([]OptionResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []OptionResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		employees, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := make([]OptionResponse, len(employees))
		for i, e := range employees {
			resp[i] = OptionResponse{
				ID:       e.ID.String(),
				KGID:     e.KGID,
				FullName: e.FullName,
			}
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, OptionsCacheKey, jsonData, time.Hour)
			}
		}

		return resp, nil
	})

	if err != nil {
		return nil, err
	}

	return v.([]OptionResponse), nil
}

func (s *service) invalidateOptionsCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

// buildEmployee validates and converts a request into an entity. Tenure on
// each service entry is recomputed from its dates here, never trusted from
// the client.
func buildEmployee(id uuid.UUID, req CreateEmployeeRequest) (*Employee, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	doj, err := time.Parse(dateLayout, req.DateOfJoining)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}
	since, err := time.Parse(dateLayout, req.CurrentPositionSince)
	if err != nil {
		return nil, employeeerrors.ErrInvalidDate
	}

	services := make([]PastService, len(req.PastServices))
	for i, ps := range req.PastServices {
		from, err := time.Parse(dateLayout, ps.FromDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}
		to, err := time.Parse(dateLayout, ps.ToDate)
		if err != nil {
			return nil, employeeerrors.ErrInvalidDate
		}

		kind := ps.Kind
		if kind == "" {
			kind = ServiceKindPast
		}

		services[i] = PastService{
			ID:           uuid.New(),
			EmployeeID:   id,
			Seq:          i,
			PostHeld:     ps.PostHeld,
			PostGroup:    ps.PostGroup,
			PostSubGroup: ps.PostSubGroup,
			Institution:  ps.Institution,
			District:     ps.District,
			Taluk:        ps.Taluk,
			City:         ps.City,
			FromDate:     from,
			ToDate:       to,
			Tenure:       tenure.Between(from, to),
			Kind:         kind,
		}
	}

	return &Employee{
		ID:                   id,
		KGID:                 req.KGID,
		FullName:             req.FullName,
		Gender:               req.Gender,
		DateOfBirth:          dob,
		DateOfJoining:        doj,
		Designation:          req.Designation,
		DesignationGroup:     req.DesignationGroup,
		DesignationSubGroup:  req.DesignationSubGroup,
		PersonalEmail:        req.PersonalEmail,
		PersonalPhone:        req.PersonalPhone,
		PersonalAddress:      req.PersonalAddress,
		PersonalPinCode:      req.PersonalPinCode,
		OfficeEmail:          req.OfficeEmail,
		OfficePhone:          req.OfficePhone,
		OfficeAddress:        req.OfficeAddress,
		OfficePinCode:        req.OfficePinCode,
		CurrentInstitution:   req.CurrentInstitution,
		CurrentDistrict:      req.CurrentDistrict,
		CurrentTaluk:         req.CurrentTaluk,
		CurrentCity:          req.CurrentCity,
		CurrentPositionSince: since,
		SpecialConditions:    req.SpecialConditions,
		PastServices:         services,
	}, nil
}

func mapToResponse(e *Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                 e.ID.String(),
		KGID:               e.KGID,
		FullName:           e.FullName,
		Designation:        e.Designation,
		DesignationGroup:   e.DesignationGroup,
		CurrentInstitution: e.CurrentInstitution,
		CurrentDistrict:    e.CurrentDistrict,
		CurrentCity:        e.CurrentCity,
	}
}

func NewDetailResponse(e *Employee) EmployeeDetailResponse {
	services := make([]PastServiceResponse, len(e.PastServices))
	for i, ps := range e.PastServices {
		services[i] = PastServiceResponse{
			PostHeld:     ps.PostHeld,
			PostGroup:    ps.PostGroup,
			PostSubGroup: ps.PostSubGroup,
			Institution:  ps.Institution,
			District:     ps.District,
			Taluk:        ps.Taluk,
			City:         ps.City,
			FromDate:     ps.FromDate.Format(dateLayout),
			ToDate:       ps.ToDate.Format(dateLayout),
			Tenure:       ps.Tenure,
			Kind:         ps.Kind,
		}
	}

	return EmployeeDetailResponse{
		EmployeeResponse:     mapToResponse(e),
		Gender:               e.Gender,
		DateOfBirth:          e.DateOfBirth.Format(dateLayout),
		DateOfJoining:        e.DateOfJoining.Format(dateLayout),
		DesignationSubGroup:  e.DesignationSubGroup,
		PersonalEmail:        e.PersonalEmail,
		PersonalPhone:        e.PersonalPhone,
		PersonalAddress:      e.PersonalAddress,
		PersonalPinCode:      e.PersonalPinCode,
		OfficeEmail:          e.OfficeEmail,
		OfficePhone:          e.OfficePhone,
		OfficeAddress:        e.OfficeAddress,
		OfficePinCode:        e.OfficePinCode,
		CurrentTaluk:         e.CurrentTaluk,
		CurrentPositionSince: e.CurrentPositionSince.Format(dateLayout),
		SpecialConditions:    e.SpecialConditions,
		PastServices:         services,
		WorkHistory:          BuildWorkHistory(e),
	}
}
