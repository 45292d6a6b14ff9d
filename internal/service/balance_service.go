package service

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/model"
	"DepositRank/internal/pkg/broker"
	"context"
	"sort"
	"strings"
)

type BalanceService interface {
	ListBalances(ctx context.Context, q *dto.BalanceQuery) (*dto.BalancePageDTO, error)
}

type balanceServiceImpl struct {
	fetcher broker.Fetcher
}

func NewBalanceService(fetcher broker.Fetcher) BalanceService {
	return &balanceServiceImpl{
		fetcher: fetcher,
	}
}

// ListBalances 全量拉取充值记录，按用户归并余额后本地过滤、排序、分页
func (s *balanceServiceImpl) ListBalances(ctx context.Context, q *dto.BalanceQuery) (*dto.BalancePageDTO, error) {
	records, err := s.fetcher.FetchAll(ctx, broker.RangeQuery{})
	if err != nil {
		return nil, err
	}

	users := collateBalances(records)

	if q.Search != "" {
		users = filterBalances(users, q.Search)
	}
	sortBalances(users, q.OrderBy, q.OrderDirection)

	total := len(users)
	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return &dto.BalancePageDTO{
		Data:        users[start:end],
		CurrentPage: q.Page,
		LastPage:    (total + q.PageSize - 1) / q.PageSize,
		Count:       total,
	}, nil
}

// collateBalances 按用户归并充值记录
// 用户资料取首次出现的记录；余额取首个非空的 REAL 钱包余额，之后不再覆盖
func collateBalances(records []model.DepositRecord) []*dto.UserBalanceDTO {
	seen := make(map[string]*dto.UserBalanceDTO)
	var users []*dto.UserBalanceDTO

	for _, r := range records {
		if r.User == nil || r.User.ID == "" {
			continue
		}
		balance := r.User.RealBalance()

		existing, ok := seen[r.User.ID]
		if !ok {
			u := &dto.UserBalanceDTO{
				ID:          r.User.ID,
				Name:        r.User.Name,
				Email:       r.User.Email,
				Nickname:    r.User.Nickname,
				Phone:       r.User.Phone,
				Country:     r.User.Country,
				LastLoginAt: r.User.LastLoginAt,
				Balance:     balance,
			}
			seen[r.User.ID] = u
			users = append(users, u)
			continue
		}
		if existing.Balance == nil && balance != nil {
			existing.Balance = balance
		}
	}
	return users
}

func filterBalances(users []*dto.UserBalanceDTO, search string) []*dto.UserBalanceDTO {
	term := strings.ToLower(search)
	filtered := make([]*dto.UserBalanceDTO, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.Name), term) ||
			strings.Contains(strings.ToLower(u.Email), term) ||
			strings.Contains(strings.ToLower(u.Nickname), term) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// sortBalances 按指定列排序，余额为空的用户无论方向都排在最后
func sortBalances(users []*dto.UserBalanceDTO, orderBy, direction string) {
	desc := strings.EqualFold(direction, "DESC")

	switch orderBy {
	case "name":
		sort.SliceStable(users, func(i, j int) bool {
			a, b := strings.ToLower(users[i].Name), strings.ToLower(users[j].Name)
			if desc {
				return a > b
			}
			return a < b
		})
	case "lastLoginAt":
		sort.SliceStable(users, func(i, j int) bool {
			if desc {
				return users[i].LastLoginAt > users[j].LastLoginAt
			}
			return users[i].LastLoginAt < users[j].LastLoginAt
		})
	default: // balance / user.balance
		sort.SliceStable(users, func(i, j int) bool {
			a, b := users[i].Balance, users[j].Balance
			if a == nil {
				return false
			}
			if b == nil {
				return true
			}
			if desc {
				return *a > *b
			}
			return *a < *b
		})
	}
}
