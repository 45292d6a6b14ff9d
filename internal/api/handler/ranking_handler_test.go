package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"DepositRank/internal/api/dto"
	"DepositRank/internal/pkg/broker"
	"DepositRank/internal/service"

	"github.com/gin-gonic/gin"
)

type fakeRankingService struct {
	result *dto.RankingResponseDTO
	err    error
	calls  int
}

func (f *fakeRankingService) BuildRanking(ctx context.Context, q *dto.RankingQuery) (*dto.RankingResponseDTO, error) {
	f.calls++
	if q.StartDate == "" || q.EndDate == "" {
		return nil, service.ErrMissingDateRange
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func rankingRouter(svc *fakeRankingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewRankingHandler(svc)
	r.GET("/api/ranking", h.GetRanking)
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestGetRankingMissingDatesReturns400(t *testing.T) {
	svc := &fakeRankingService{}
	w := doGet(t, rankingRouter(svc), "/api/ranking")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body not JSON: %v", err)
	}
	if body.Error == "" {
		t.Error("error body missing error field")
	}
}

func TestGetRankingUpstreamTimeoutReturns504(t *testing.T) {
	svc := &fakeRankingService{err: broker.ErrUpstreamTimeout}
	w := doGet(t, rankingRouter(svc), "/api/ranking?startDate=2025-08-01&endDate=2025-08-31")

	if w.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", w.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("error body not JSON: %v", err)
	}
	if body.Error == "" {
		t.Error("error body missing error field")
	}
}

func TestGetRankingSuccess(t *testing.T) {
	svc := &fakeRankingService{result: &dto.RankingResponseDTO{
		Ranking: []*dto.RankingEntryDTO{{UserID: "A", TotalAmount: 300, Position: 1}},
		Stats:   &dto.RankingStatsDTO{TotalAmount: 300, TotalUsers: 1, AveragePerUser: 300},
		Success: true,
	}}
	w := doGet(t, rankingRouter(svc), "/api/ranking?startDate=2025-08-01&endDate=2025-08-31&type=weekly")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body dto.RankingResponseDTO
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body not JSON: %v", err)
	}
	if !body.Success || len(body.Ranking) != 1 || body.Ranking[0].Position != 1 {
		t.Errorf("unexpected body: %+v", body)
	}
}

func TestGetRankingInvalidTypeReturns400(t *testing.T) {
	svc := &fakeRankingService{}
	w := doGet(t, rankingRouter(svc), "/api/ranking?startDate=2025-08-01&endDate=2025-08-31&type=hourly")

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if svc.calls != 0 {
		t.Errorf("service called %d times for invalid type", svc.calls)
	}
}
