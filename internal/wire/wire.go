package wire

import (
	"DepositRank/internal/api"
	"DepositRank/internal/api/config"
	"DepositRank/internal/api/handler"
	"DepositRank/internal/pkg/broker"
	"DepositRank/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router *gin.Engine
}

func BuildApplication(cfg *config.Config) (*ApplicationContainer, error) {
	fetcher := broker.NewClient(cfg.Upstream)

	depositService := service.NewDepositService(fetcher)
	balanceService := service.NewBalanceService(fetcher)
	rankingService := service.NewRankingService(fetcher)

	handlers := &api.HandlersGroup{
		DepositHandler: handler.NewDepositHandler(depositService),
		BalanceHandler: handler.NewBalanceHandler(balanceService),
		RankingHandler: handler.NewRankingHandler(rankingService),
	}

	router := api.SetupRouter(handlers)

	return &ApplicationContainer{
		Router: router,
	}, nil
}
