package api

import "DepositRank/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	DepositHandler *handler.DepositHandler
	BalanceHandler *handler.BalanceHandler
	RankingHandler *handler.RankingHandler
}
