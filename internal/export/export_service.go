package export

import (
	"context"
	"io"

	"transferdesk/internal/analytics"
	"transferdesk/internal/employee"
	"transferdesk/internal/transfer"

	"go.uber.org/zap"
)

//go:generate mockgen -source=export_service.go -destination=mock/export_service_mock.go -package=mock
type Service interface {
	EmployeesCSV(ctx context.Context, w io.Writer) error
	EmployeesExcel(ctx context.Context, w io.Writer) error
	EmployeesPDF(ctx context.Context, w io.Writer) error
	TransfersCSV(ctx context.Context, w io.Writer) error
	PromotionsCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	employees employee.Repository
	transfers transfer.Repository
	cmp       analytics.RankComparator
	logger    *zap.Logger
}

func NewService(
	employees employee.Repository,
	transfers transfer.Repository,
	cmp analytics.RankComparator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("export.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("export.service")
	}
	if cmp == nil {
		cmp = analytics.NewRankComparator()
	}
	return &service{employees: employees, transfers: transfers, cmp: cmp, logger: l}
}

func (s *service) EmployeesCSV(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.FindAllWithHistory(ctx)
	if err != nil {
		s.logger.Error("employee export load failed", zap.Error(err))
		return err
	}
	return WriteEmployeesCSV(w, employees)
}

func (s *service) EmployeesExcel(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.FindAllWithHistory(ctx)
	if err != nil {
		s.logger.Error("employee export load failed", zap.Error(err))
		return err
	}
	transfers, err := s.transfers.FindAll(ctx)
	if err != nil {
		s.logger.Error("transfer export load failed", zap.Error(err))
		return err
	}

	f, err := BuildWorkbook(employees, transfers)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

func (s *service) EmployeesPDF(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.FindAllWithHistory(ctx)
	if err != nil {
		s.logger.Error("employee export load failed", zap.Error(err))
		return err
	}
	return WriteEmployeesPDF(w, employees)
}

func (s *service) TransfersCSV(ctx context.Context, w io.Writer) error {
	transfers, err := s.transfers.FindAll(ctx)
	if err != nil {
		s.logger.Error("transfer export load failed", zap.Error(err))
		return err
	}
	return WriteTransfersCSV(w, transfers)
}

func (s *service) PromotionsCSV(ctx context.Context, w io.Writer) error {
	employees, err := s.employees.FindAllWithHistory(ctx)
	if err != nil {
		s.logger.Error("employee export load failed", zap.Error(err))
		return err
	}

	histories := make([]analytics.EmployeeHistory, len(employees))
	for i := range employees {
		e := &employees[i]
		histories[i] = analytics.EmployeeHistory{
			ID:       e.ID.String(),
			KGID:     e.KGID,
			FullName: e.FullName,
			History:  employee.BuildWorkHistory(e),
		}
	}

	promotions := analytics.ExtractPromotions(analytics.Dedupe(histories), s.cmp)
	return WritePromotionsCSV(w, promotions)
}
