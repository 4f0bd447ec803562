package transfer

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"transferdesk/internal/employee"
	"transferdesk/internal/events"
	"transferdesk/internal/messaging/kafka"
	"transferdesk/internal/shared/contextutil"
	"transferdesk/internal/shared/counter"
	"transferdesk/internal/shared/tenure"
	transfererrors "transferdesk/internal/transfer/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	counterType = "transfer_order"
	dateLayout  = "2006-01-02"
)

// TransferSummaryCacheKey is shared with the reports layer; recording a
// transfer drops the cached summary so the next report rebuild sees it.
const TransferSummaryCacheKey = "reports:transfer_summary"

// TransferResult pairs the recorded order with the employee as updated by
// it.
type TransferResult struct {
	Transfer TransferResponse                `json:"transfer"`
	Employee employee.EmployeeDetailResponse `json:"employee"`
}

//go:generate mockgen -source=transfer_service.go -destination=mock/transfer_service_mock.go -package=mock
type Service interface {
	Transfer(ctx context.Context, employeeID string, req TransferRequest) (TransferResult, error)
	GetByID(ctx context.Context, id string) (TransferResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]TransferResponse, error)
	List(ctx context.Context, filter ListFilter) ([]TransferResponse, int64, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("transfer.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("transfer.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		counter:   counterRepo,
		outbox:    outboxRepo,
		rdb:       rdb,
		logger:    l,
	}
}

// Transfer folds the employee's current posting into service history,
// installs the new posting and records the order, all in one transaction.
func (s *service) Transfer(ctx context.Context, employeeID string, req TransferRequest) (TransferResult, error) {
	rid := contextutil.GetRequestID(ctx)

	effectiveFrom, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return TransferResult{}, transfererrors.ErrInvalidEffectiveDate
	}

	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		return TransferResult{}, mapEmployeeLookupError(err)
	}

	samePlace := req.ToInstitution == empl.CurrentInstitution && req.ToCity == empl.CurrentCity
	samePosition := req.ToPosition == "" || req.ToPosition == empl.Designation
	if samePlace && samePosition {
		return TransferResult{}, transfererrors.ErrSameCityAndPosition
	}

	// Sequence gaps on a rolled-back transfer are acceptable; order numbers
	// only need to be unique, not dense.
	seq, err := s.counter.GetNextValue(ctx, counterType)
	if err != nil {
		s.logger.Error("transfer order number allocation failed", zap.Error(err))
		return TransferResult{}, err
	}
	orderNumber := fmt.Sprintf("TRF-%06d", seq)

	record := &Transfer{
		ID:              uuid.New(),
		OrderNumber:     orderNumber,
		EmployeeID:      empl.ID,
		FromInstitution: empl.CurrentInstitution,
		FromDistrict:    empl.CurrentDistrict,
		FromTaluk:       empl.CurrentTaluk,
		FromCity:        empl.CurrentCity,
		FromPosition:    empl.Designation,
		ToInstitution:   req.ToInstitution,
		ToDistrict:      req.ToDistrict,
		ToTaluk:         req.ToTaluk,
		ToCity:          req.ToCity,
		ToPosition:      req.ToPosition,
		EffectiveFrom:   effectiveFrom,
	}

	closedPosting := employee.PastService{
		ID:           uuid.New(),
		EmployeeID:   empl.ID,
		Seq:          len(empl.PastServices),
		PostHeld:     empl.Designation,
		PostGroup:    empl.DesignationGroup,
		PostSubGroup: empl.DesignationSubGroup,
		Institution:  empl.CurrentInstitution,
		District:     empl.CurrentDistrict,
		Taluk:        empl.CurrentTaluk,
		City:         empl.CurrentCity,
		FromDate:     empl.CurrentPositionSince,
		ToDate:       effectiveFrom,
		Tenure:       tenure.Between(empl.CurrentPositionSince, effectiveFrom),
		Kind:         employee.ServiceKindPast,
	}
	history := append(append([]employee.PastService{}, empl.PastServices...), closedPosting)

	empl.CurrentInstitution = req.ToInstitution
	empl.CurrentDistrict = req.ToDistrict
	empl.CurrentTaluk = req.ToTaluk
	empl.CurrentCity = req.ToCity
	empl.CurrentPositionSince = effectiveFrom
	if req.ToPosition != "" {
		empl.Designation = req.ToPosition
	}
	empl.PastServices = history

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transfer begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TransferResult{}, err
	}
	defer tx.Rollback()

	emplTx := s.employees.WithTx(tx)
	if err := emplTx.ReplacePastServices(ctx, empl, history); err != nil {
		s.logger.Error("transfer history fold failed", zap.Error(err))
		return TransferResult{}, err
	}
	if err := emplTx.Update(ctx, empl); err != nil {
		s.logger.Error("transfer posting update failed", zap.Error(err))
		return TransferResult{}, err
	}

	if err := s.repo.WithTx(tx).Create(ctx, record); err != nil {
		s.logger.Error("transfer order persist failed", zap.Error(err))
		return TransferResult{}, err
	}

	if s.outbox != nil {
		event := events.TransferRecordedEvent{
			EventType:   "transfer_recorded",
			RequestID:   rid,
			TransferID:  record.ID.String(),
			OrderNumber: orderNumber,
			EmployeeID:  empl.ID.String(),
			FromCity:    record.FromCity,
			ToCity:      record.ToCity,
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return TransferResult{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "transfer",
			AggregateID:   record.ID.String(),
			EventType:     event.EventType,
			Topic:         events.TransferLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("transfer outbox persist failed", zap.Error(err))
			return TransferResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transfer commit failed", zap.String("request_id", rid), zap.Error(err))
		return TransferResult{}, err
	}

	s.invalidateSummaryCache(ctx)

	s.logger.Info("transfer recorded",
		zap.String("request_id", rid),
		zap.String("order_number", orderNumber),
		zap.String("employee_id", empl.ID.String()),
		zap.String("from_city", record.FromCity),
		zap.String("to_city", record.ToCity),
	)

	return TransferResult{
		Transfer: mapToResponse(record),
		Employee: employee.NewDetailResponse(empl),
	}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (TransferResponse, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return TransferResponse{}, mapTransferLookupError(err)
	}
	return mapToResponse(record), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]TransferResponse, error) {
	records, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list transfers by employee failed", zap.Error(err))
		return nil, err
	}
	return mapToResponses(records), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]TransferResponse, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}

	records, total, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error("list transfers failed", zap.Error(err))
		return nil, 0, err
	}
	return mapToResponses(records), total, nil
}

func (s *service) invalidateSummaryCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, TransferSummaryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate transfer summary cache", zap.Error(err))
	}
}

func mapToResponse(t *Transfer) TransferResponse {
	return TransferResponse{
		ID:              t.ID.String(),
		OrderNumber:     t.OrderNumber,
		EmployeeID:      t.EmployeeID.String(),
		FromInstitution: t.FromInstitution,
		FromDistrict:    t.FromDistrict,
		FromTaluk:       t.FromTaluk,
		FromCity:        t.FromCity,
		FromPosition:    t.FromPosition,
		ToInstitution:   t.ToInstitution,
		ToDistrict:      t.ToDistrict,
		ToTaluk:         t.ToTaluk,
		ToCity:          t.ToCity,
		ToPosition:      t.ToPosition,
		EffectiveFrom:   t.EffectiveFrom.Format(dateLayout),
		CreatedAt:       t.CreatedAt.Format(time.RFC3339),
	}
}

func mapToResponses(records []Transfer) []TransferResponse {
	res := make([]TransferResponse, len(records))
	for i := range records {
		res[i] = mapToResponse(&records[i])
	}
	return res
}
