package handler

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/pkg/response"
	"DepositRank/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

type RankingHandler struct {
	rankingSvc service.RankingService
}

func NewRankingHandler(rankingSvc service.RankingService) *RankingHandler {
	return &RankingHandler{
		rankingSvc: rankingSvc,
	}
}

// GetRanking 排行榜 JSON 接口
func (s *RankingHandler) GetRanking(c *gin.Context) {
	var q dto.RankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.rankingSvc.BuildRanking(c.Request.Context(), &q)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Report 排行榜报表页，服务端渲染
func (s *RankingHandler) Report(c *gin.Context) {
	var q dto.RankingReportQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, err)
		return
	}

	result, err := s.rankingSvc.BuildRanking(c.Request.Context(), &dto.RankingQuery{
		StartDate: q.StartDate,
		EndDate:   q.EndDate,
		Type:      q.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.HTML(http.StatusOK, "ranking.html", gin.H{
		"Type":    q.Type,
		"Ranking": result.Ranking,
		"Stats":   result.Stats,
	})
}
