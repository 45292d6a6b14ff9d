package service

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/model"
	"DepositRank/internal/pkg/broker"
	"context"
	"strings"
)

type DepositService interface {
	List(ctx context.Context, q *dto.ListDepositsQuery) (*broker.DepositPage, error)
}

type depositServiceImpl struct {
	fetcher broker.Fetcher
}

func NewDepositService(fetcher broker.Fetcher) DepositService {
	return &depositServiceImpl{
		fetcher: fetcher,
	}
}

// List 透传单页查询，search 在本地过滤，count 同步为过滤后的条数
func (s *depositServiceImpl) List(ctx context.Context, q *dto.ListDepositsQuery) (*broker.DepositPage, error) {
	page, err := s.fetcher.FetchPage(ctx, broker.ListQuery{
		Page:           q.Page,
		PageSize:       q.PageSize,
		IsInfluencer:   q.IsInfluencer,
		StartDate:      q.StartDate,
		EndDate:        q.EndDate,
		OrderBy:        q.OrderBy,
		OrderDirection: q.OrderDirection,
		Status:         q.Status,
	})
	if err != nil {
		return nil, err
	}

	if q.Search != "" {
		page.Data = filterDeposits(page.Data, q.Search)
		page.Count = len(page.Data)
	}
	return page, nil
}

// filterDeposits 保留任一字段命中搜索词的记录，大小写不敏感
func filterDeposits(records []model.DepositRecord, search string) []model.DepositRecord {
	term := strings.ToLower(search)
	filtered := make([]model.DepositRecord, 0, len(records))
	for _, r := range records {
		if matchDeposit(&r, term) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchDeposit(r *model.DepositRecord, term string) bool {
	if r.User != nil {
		if strings.Contains(strings.ToLower(r.User.Name), term) ||
			strings.Contains(strings.ToLower(r.User.Email), term) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(r.Method), term) ||
		strings.Contains(strings.ToLower(r.Provider), term)
}
