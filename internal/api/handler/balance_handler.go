package handler

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/pkg/response"
	"DepositRank/internal/service"

	"github.com/gin-gonic/gin"
)

type BalanceHandler struct {
	balanceSvc service.BalanceService
}

func NewBalanceHandler(balanceSvc service.BalanceService) *BalanceHandler {
	return &BalanceHandler{
		balanceSvc: balanceSvc,
	}
}

// ListBalances 按用户归并后的余额列表
func (s *BalanceHandler) ListBalances(c *gin.Context) {
	var q dto.BalanceQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.balanceSvc.ListBalances(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
