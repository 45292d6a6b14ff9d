package broker

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"DepositRank/internal/api/config"

	"github.com/pkg/errors"
)

func testConfig(url string) config.UpstreamConfig {
	return config.UpstreamConfig{
		BaseURL:        url,
		APIToken:       "test-token",
		PageSize:       2,
		MaxPages:       50,
		FetchTimeout:   5,
		CollateTimeout: 5,
	}
}

func pageBody(count int, records ...string) string {
	body := `{"count":` + strconv.Itoa(count) + `,"data":[`
	for i, r := range records {
		if i > 0 {
			body += ","
		}
		body += r
	}
	return body + `]}`
}

func depositJSON(id string, amount float64) string {
	return fmt.Sprintf(`{"id":%q,"amount":%v,"status":"APPROVED","user":{"id":"u-%s"}}`, id, amount, id)
}

func TestFetchPageForwardsQueryAndToken(t *testing.T) {
	var gotToken string
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken = r.Header.Get("api-token")
		gotQuery = map[string]string{}
		for k := range r.URL.Query() {
			gotQuery[k] = r.URL.Query().Get(k)
		}
		fmt.Fprint(w, pageBody(1, depositJSON("d1", 100)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	page, err := c.FetchPage(context.Background(), ListQuery{
		Page: 3, PageSize: 25, IsInfluencer: true,
		StartDate: "2025-08-01", EndDate: "2025-08-31",
		OrderBy: "amount", OrderDirection: "DESC", Status: "APPROVED",
	})
	if err != nil {
		t.Fatalf("FetchPage: %v", err)
	}

	if gotToken != "test-token" {
		t.Errorf("api-token header = %q", gotToken)
	}
	want := map[string]string{
		"page": "3", "pageSize": "25", "isInfluencer": "true",
		"startDate": "2025-08-01", "endDate": "2025-08-31",
		"orderBy": "amount", "orderDirection": "DESC", "status": "APPROVED",
	}
	for k, v := range want {
		if gotQuery[k] != v {
			t.Errorf("query %s = %q, want %q", k, gotQuery[k], v)
		}
	}
	if page.Count != 1 || len(page.Data) != 1 || page.Data[0].Amount != 100 {
		t.Errorf("unexpected page: %+v", page)
	}
}

func TestFetchAllStopsWhenCountReached(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		page := r.URL.Query().Get("page")
		fmt.Fprint(w, pageBody(4, depositJSON("p"+page+"-1", 10), depositJSON("p"+page+"-2", 20)))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	records, err := c.FetchAll(context.Background(), RangeQuery{StartDate: "2025-08-01", EndDate: "2025-08-31"})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 4 {
		t.Errorf("records = %d, want 4", len(records))
	}
	if requests != 2 {
		t.Errorf("requests = %d, want 2", requests)
	}
}

func TestFetchAllStopsOnEmptyPage(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			fmt.Fprint(w, pageBody(0, depositJSON("d1", 10)))
			return
		}
		fmt.Fprint(w, pageBody(0))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	records, err := c.FetchAll(context.Background(), RangeQuery{})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(records) != 1 || requests != 2 {
		t.Errorf("records = %d, requests = %d", len(records), requests)
	}
}

// 上游 count 一直为 0 且每页都有数据时，安全页数上限保证循环终止并返回已取部分
func TestFetchAllSafetyCeilingReturnsPartial(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, pageBody(0, depositJSON("d", 10), depositJSON("e", 20)))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxPages = 3
	c := NewClient(cfg)

	records, err := c.FetchAll(context.Background(), RangeQuery{})
	if err != nil {
		t.Fatalf("ceiling must not be an error: %v", err)
	}
	if requests != 3 {
		t.Errorf("requests = %d, want 3", requests)
	}
	if len(records) != 6 {
		t.Errorf("records = %d, want 6", len(records))
	}
}

func TestFetchPageNon2xxBecomesRequestError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		fmt.Fprint(w, `{"message":"upstream exploded"}`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.FetchPage(context.Background(), ListQuery{Page: 1, PageSize: 25})

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.StatusCode != http.StatusBadGateway {
		t.Errorf("status = %d", reqErr.StatusCode)
	}
	if reqErr.Body == "" {
		t.Error("body should be carried for diagnostics")
	}
}

func TestFetchPageTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(1500 * time.Millisecond)
		fmt.Fprint(w, pageBody(0))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.FetchTimeout = 1
	c := NewClient(cfg)

	_, err := c.FetchPage(context.Background(), ListQuery{Page: 1, PageSize: 25})
	if !errors.Is(err, ErrUpstreamTimeout) {
		t.Fatalf("expected ErrUpstreamTimeout, got %v", err)
	}
}

func TestFetchPageConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(testConfig(url))
	_, err := c.FetchPage(context.Background(), ListQuery{Page: 1, PageSize: 25})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestFetchPageMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": "oops"`)
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL))
	_, err := c.FetchPage(context.Background(), ListQuery{Page: 1, PageSize: 25})
	if err == nil {
		t.Fatal("expected decode error")
	}
}

var _ Fetcher = (*Client)(nil)
