package handler

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/pkg/response"
	"DepositRank/internal/service"

	"github.com/gin-gonic/gin"
)

type DepositHandler struct {
	depositSvc service.DepositService
}

func NewDepositHandler(depositSvc service.DepositService) *DepositHandler {
	return &DepositHandler{
		depositSvc: depositSvc,
	}
}

// List 存款列表透传查询
func (s *DepositHandler) List(c *gin.Context) {
	var q dto.ListDepositsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	page, err := s.depositSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, page)
}
