package designation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	designationerrors "transferdesk/internal/designation/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const OptionsCacheKey = "designations:options"

//go:generate mockgen -source=designation_service.go -destination=mock/designation_service_mock.go -package=mock
type Service interface {
	GetOptions(ctx context.Context) ([]DesignationResponse, error)
	GetGroups(ctx context.Context) ([]GroupResponse, error)
	GetByID(ctx context.Context, id string) (DesignationResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("designation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("designation.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetOptions serves the full taxonomy for form dropdowns. The list is master
// data, so it is cached in redis and concurrent rebuilds are collapsed with
// singleflight.
func (s *service) GetOptions(ctx context.Context) ([]DesignationResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var resp []DesignationResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (interface{}, error) {
		designations, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("load designation options failed", zap.Error(err))
			return nil, err
		}

		resp := mapToListResponse(designations)

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

	return v.([]DesignationResponse), nil
}

func (s *service) GetGroups(ctx context.Context) ([]GroupResponse, error) {
	designations, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("load designation groups failed", zap.Error(err))
		return nil, err
	}

	order := make([]string, 0)
	subGroups := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	for _, d := range designations {
		if _, ok := seen[d.Group]; !ok {
			order = append(order, d.Group)
			seen[d.Group] = make(map[string]bool)
		}
		if d.SubGroup != "" && !seen[d.Group][d.SubGroup] {
			seen[d.Group][d.SubGroup] = true
			subGroups[d.Group] = append(subGroups[d.Group], d.SubGroup)
		}
	}

	resp := make([]GroupResponse, 0, len(order))
	for _, g := range order {
		resp = append(resp, GroupResponse{Group: g, SubGroups: subGroups[g]})
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (DesignationResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DesignationResponse{}, designationerrors.ErrDesignationNotFound
		}
		return DesignationResponse{}, err
	}
	return mapToResponse(*d), nil
}

func mapToResponse(d Designation) DesignationResponse {
	return DesignationResponse{
		ID:       d.ID.String(),
		Name:     d.Name,
		Group:    d.Group,
		SubGroup: d.SubGroup,
		Rank:     d.Rank,
	}
}

func mapToListResponse(designations []Designation) []DesignationResponse {
	res := make([]DesignationResponse, len(designations))
	for i, d := range designations {
		res[i] = mapToResponse(d)
	}
	return res
}
