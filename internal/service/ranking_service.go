package service

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/model"
	"DepositRank/internal/pkg/broker"
	"context"
	"fmt"
	log "log/slog"
	"sort"
	"time"
)

// RankingLimit 排行榜响应最多返回的用户数，统计口径不受其影响
const RankingLimit = 50

type RankingService interface {
	BuildRanking(ctx context.Context, q *dto.RankingQuery) (*dto.RankingResponseDTO, error)
}

type rankingServiceImpl struct {
	fetcher broker.Fetcher
}

func NewRankingService(fetcher broker.Fetcher) RankingService {
	return &rankingServiceImpl{
		fetcher: fetcher,
	}
}

// BuildRanking 拉取时间范围内全部充值记录，按用户聚合后生成排行榜
func (s *rankingServiceImpl) BuildRanking(ctx context.Context, q *dto.RankingQuery) (*dto.RankingResponseDTO, error) {
	if q.StartDate == "" || q.EndDate == "" {
		return nil, ErrMissingDateRange
	}

	records, err := s.fetcher.FetchAll(ctx, broker.RangeQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
	})
	if err != nil {
		return nil, err
	}

	entries, parseFailures := aggregateByUser(records, q.Type)
	if parseFailures > 0 {
		// 时间戳异常的记录仍计入总额，但无法进入时间分桶，上游数据质量问题需要暴露
		log.WarnContext(ctx, "Deposits with unparsable timestamps excluded from period buckets",
			"count", parseFailures)
	}

	// 按总额降序，稳定排序保持上游相对顺序，随后补 1 起始的名次
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalAmount > entries[j].TotalAmount
	})
	for i, e := range entries {
		e.Position = i + 1
	}

	stats := &dto.RankingStatsDTO{
		PeriodStart: q.StartDate,
		PeriodEnd:   q.EndDate,
	}
	for _, e := range entries {
		stats.TotalAmount += e.TotalAmount
		stats.TotalDeposits += e.TotalDeposits
	}
	stats.TotalUsers = len(entries)
	if stats.TotalUsers > 0 {
		stats.AveragePerUser = stats.TotalAmount / float64(stats.TotalUsers)
	}

	top := entries
	if len(top) > RankingLimit {
		top = top[:RankingLimit]
	}

	log.InfoContext(ctx, "Ranking built",
		"users", stats.TotalUsers, "deposits", stats.TotalDeposits, "type", q.Type)

	return &dto.RankingResponseDTO{
		Ranking: top,
		Stats:   stats,
		Success: true,
	}, nil
}

// aggregateByUser 按用户累计金额与次数，并按所选粒度分桶
// 金额为 0 或缺少用户 ID 的记录跳过；用户资料取最后处理到的记录
// 返回值第二项为时间戳解析失败的记录数
func aggregateByUser(records []model.DepositRecord, rankingType string) ([]*dto.RankingEntryDTO, int) {
	byUser := make(map[string]*dto.RankingEntryDTO)
	var order []*dto.RankingEntryDTO
	parseFailures := 0

	for _, r := range records {
		if r.User == nil || r.User.ID == "" || r.Amount == 0 {
			continue
		}

		entry, ok := byUser[r.User.ID]
		if !ok {
			entry = &dto.RankingEntryDTO{
				UserID:           r.User.ID,
				DepositsByPeriod: make(map[string]float64),
			}
			byUser[r.User.ID] = entry
			order = append(order, entry)
		}
		entry.TotalAmount += r.Amount
		entry.TotalDeposits++
		entry.Name = displayField(r.User.Name)
		entry.Email = displayField(r.User.Email)
		entry.AverageDeposit = entry.TotalAmount / float64(entry.TotalDeposits)

		key, ok := periodKey(bucketTimestamp(&r), rankingType)
		if !ok {
			parseFailures++
			continue
		}
		entry.DepositsByPeriod[key] += r.Amount
	}

	return order, parseFailures
}

// bucketTimestamp 分桶用的时间戳：优先审批时间，缺失时退回创建时间
func bucketTimestamp(r *model.DepositRecord) string {
	if r.ApprovedAt != "" {
		return r.ApprovedAt
	}
	return r.CreatedAt
}

// periodKey 将时间戳按粒度转成分桶 key
func periodKey(ts, rankingType string) (string, bool) {
	t, err := parseTimestamp(ts)
	if err != nil {
		return "", false
	}
	switch rankingType {
	case dto.RankingTypeWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%d-W%02d", year, week), true
	case dto.RankingTypeMonthly:
		return t.Format("2006-01"), true
	default:
		return t.Format("2006-01-02"), true
	}
}

// timestampLayouts 上游同时存在带毫秒与整秒两种格式
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
}

func parseTimestamp(ts string) (time.Time, error) {
	var firstErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, ts)
		if err == nil {
			return t.UTC(), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, firstErr
}

func displayField(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
