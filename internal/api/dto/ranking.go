package dto

// 排行榜的时间粒度
const (
	RankingTypeDaily   = "daily"
	RankingTypeWeekly  = "weekly"
	RankingTypeMonthly = "monthly"
)

// RankingQuery 排行榜查询参数，起止日期是否缺失由服务层校验
type RankingQuery struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Type      string `form:"type,default=daily" binding:"oneof=daily weekly monthly"`
}

// RankingReportQuery 渲染版报表的查询参数（下划线风格）
type RankingReportQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Type      string `form:"type,default=daily" binding:"oneof=daily weekly monthly"`
}

// RankingEntryDTO 排行榜单个用户条目
type RankingEntryDTO struct {
	UserID         string  `json:"user_id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	TotalAmount    float64 `json:"total_amount"`
	TotalDeposits  int     `json:"total_deposits"`
	AverageDeposit float64 `json:"average_deposit"`
	// DepositsByPeriod 按所选粒度分桶的充值金额，key 如 2026-08-01 / 2026-W31 / 2026-08
	DepositsByPeriod map[string]float64 `json:"deposits_by_period"`
	Position         int                `json:"position"`
}

// RankingStatsDTO 全量排行集合上的汇总统计（不受 Top50 截断影响）
type RankingStatsDTO struct {
	TotalAmount    float64 `json:"total_amount"`
	TotalDeposits  int     `json:"total_deposits"`
	TotalUsers     int     `json:"total_users"`
	AveragePerUser float64 `json:"average_per_user"`
	PeriodStart    string  `json:"period_start"`
	PeriodEnd      string  `json:"period_end"`
}

// RankingResponseDTO 排行榜接口返回包装
type RankingResponseDTO struct {
	Ranking []*RankingEntryDTO `json:"ranking"`
	Stats   *RankingStatsDTO   `json:"stats"`
	Success bool               `json:"success"`
}
