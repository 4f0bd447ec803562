package analytics

import (
	"context"
	"encoding/json"
	"time"

	"transferdesk/internal/employee"
	"transferdesk/internal/transfer"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// The transfer flow owns invalidation of this key; reports only rebuild it.
	transferReportCacheKey  = transfer.TransferSummaryCacheKey
	promotionReportCacheKey = "reports:promotion_summary"

	reportCacheTTL = 10 * time.Minute

	topCityCount  = 5
	recentRecords = 10
)

type TransferReport struct {
	Summary   Summary          `json:"summary"`
	Transfers []TransferRecord `json:"transfers"`
}

type PromotionReport struct {
	TotalPromotions int              `json:"total_promotions"`
	YearBuckets     []YearBucket     `json:"year_buckets"`
	Promotions      []TransferRecord `json:"promotions"`
}

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	TransferReport(ctx context.Context) (TransferReport, error)
	PromotionReport(ctx context.Context) (PromotionReport, error)
	WarmCaches(ctx context.Context) error
}

type service struct {
	employees employee.Repository
	cmp       RankComparator
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(employees employee.Repository, cmp RankComparator, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	if cmp == nil {
		cmp = NewRankComparator()
	}
	return &service{
		employees: employees,
		cmp:       cmp,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

func (s *service) TransferReport(ctx context.Context) (TransferReport, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, transferReportCacheKey).Result(); err == nil {
			var report TransferReport
			if json.Unmarshal([]byte(cached), &report) == nil {
				return report, nil
			}
		}
	}

	v, err, _ := s.sf.Do(transferReportCacheKey, func() (interface{}, error) {
		report, err := s.buildTransferReport(ctx)
		if err != nil {
			return nil, err
		}
		s.cache(ctx, transferReportCacheKey, report)
		return report, nil
	})
	if err != nil {
		return TransferReport{}, err
	}
	return v.(TransferReport), nil
}

func (s *service) PromotionReport(ctx context.Context) (PromotionReport, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, promotionReportCacheKey).Result(); err == nil {
			var report PromotionReport
			if json.Unmarshal([]byte(cached), &report) == nil {
				return report, nil
			}
		}
	}

	v, err, _ := s.sf.Do(promotionReportCacheKey, func() (interface{}, error) {
		report, err := s.buildPromotionReport(ctx)
		if err != nil {
			return nil, err
		}
		s.cache(ctx, promotionReportCacheKey, report)
		return report, nil
	})
	if err != nil {
		return PromotionReport{}, err
	}
	return v.(PromotionReport), nil
}

// WarmCaches rebuilds both report caches. The lifecycle consumer calls this
// after a transfer or registration event so the next report read is warm.
func (s *service) WarmCaches(ctx context.Context) error {
	transferReport, err := s.buildTransferReport(ctx)
	if err != nil {
		return err
	}
	s.cache(ctx, transferReportCacheKey, transferReport)

	promotionReport, err := s.buildPromotionReport(ctx)
	if err != nil {
		return err
	}
	s.cache(ctx, promotionReportCacheKey, promotionReport)

	s.logger.Debug("report caches warmed",
		zap.Int("transfers", transferReport.Summary.TotalTransfers),
		zap.Int("promotions", promotionReport.TotalPromotions),
	)
	return nil
}

func (s *service) buildTransferReport(ctx context.Context) (TransferReport, error) {
	histories, err := s.loadHistories(ctx)
	if err != nil {
		return TransferReport{}, err
	}

	transfers := ExtractTransfers(histories, s.cmp)
	return TransferReport{
		Summary:   ComputeSummary(transfers, topCityCount, recentRecords),
		Transfers: transfers,
	}, nil
}

func (s *service) buildPromotionReport(ctx context.Context) (PromotionReport, error) {
	histories, err := s.loadHistories(ctx)
	if err != nil {
		return PromotionReport{}, err
	}

	promotions := ExtractPromotions(histories, s.cmp)
	summary := ComputeSummary(promotions, topCityCount, recentRecords)
	return PromotionReport{
		TotalPromotions: len(promotions),
		YearBuckets:     summary.YearBuckets,
		Promotions:      promotions,
	}, nil
}

func (s *service) loadHistories(ctx context.Context) ([]EmployeeHistory, error) {
	employees, err := s.employees.FindAllWithHistory(ctx)
	if err != nil {
		s.logger.Error("load work histories failed", zap.Error(err))
		return nil, err
	}

	histories := make([]EmployeeHistory, len(employees))
	for i := range employees {
		e := &employees[i]
		histories[i] = EmployeeHistory{
			ID:       e.ID.String(),
			KGID:     e.KGID,
			FullName: e.FullName,
			History:  employee.BuildWorkHistory(e),
		}
	}
	return Dedupe(histories), nil
}

func (s *service) cache(ctx context.Context, key string, report any) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, raw, reportCacheTTL).Err(); err != nil {
		s.logger.Error("report cache write failed", zap.String("key", key), zap.Error(err))
	}
}
