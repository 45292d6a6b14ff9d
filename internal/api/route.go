package api

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/api/middleware"
	"DepositRank/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.LoadHTMLGlob("templates/*")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "healthy",
			Message: "Deposit ranking app is running",
		})
	})

	r.GET("/ranking/report", group.RankingHandler.Report)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		apiGroup.GET("/deposits", group.DepositHandler.List)
		apiGroup.GET("/user-balances", group.BalanceHandler.ListBalances)
		apiGroup.GET("/ranking", group.RankingHandler.GetRanking)
	}

	return r
}
