package broker

import (
	"DepositRank/internal/api/config"
	"DepositRank/internal/model"
	"DepositRank/internal/pkg/logger"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// ListQuery 透传分页查询的参数，原样转发给上游
type ListQuery struct {
	Page           int
	PageSize       int
	IsInfluencer   bool
	StartDate      string
	EndDate        string
	OrderBy        string
	OrderDirection string
	Status         string
}

// RangeQuery 全量拉取时的时间范围，两端可为空
type RangeQuery struct {
	StartDate string
	EndDate   string
}

// DepositPage 上游接口的响应包装
type DepositPage struct {
	Data  []model.DepositRecord `json:"data"`
	Count int                   `json:"count"`
}

// Fetcher 上游存款数据源
type Fetcher interface {
	FetchPage(ctx context.Context, q ListQuery) (*DepositPage, error)
	FetchAll(ctx context.Context, q RangeQuery) ([]model.DepositRecord, error)
}

// Client 上游存款接口客户端
type Client struct {
	http           *resty.Client
	pageSize       int
	maxPages       int
	fetchTimeout   time.Duration
	collateTimeout time.Duration
}

func NewClient(cfg config.UpstreamConfig) *Client {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("api-token", cfg.APIToken).
		SetTransport(&logger.UpstreamTransport{})

	return &Client{
		http:           client,
		pageSize:       cfg.PageSize,
		maxPages:       cfg.MaxPages,
		fetchTimeout:   time.Duration(cfg.FetchTimeout) * time.Second,
		collateTimeout: time.Duration(cfg.CollateTimeout) * time.Second,
	}
}

// FetchPage 单页透传查询，使用较短的超时
func (c *Client) FetchPage(ctx context.Context, q ListQuery) (*DepositPage, error) {
	ctx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	params := map[string]string{
		"page":           strconv.Itoa(q.Page),
		"pageSize":       strconv.Itoa(q.PageSize),
		"isInfluencer":   strconv.FormatBool(q.IsInfluencer),
		"orderBy":        q.OrderBy,
		"orderDirection": q.OrderDirection,
		"status":         q.Status,
	}
	if q.StartDate != "" {
		params["startDate"] = q.StartDate
	}
	if q.EndDate != "" {
		params["endDate"] = q.EndDate
	}

	return c.getPage(ctx, params)
}

// FetchAll 逐页拉取时间范围内的全部记录，直到取完或触发安全页数上限
// 终止条件按优先级：空页、累计条数达到上游 count、页数超过上限（仅告警，返回已取部分）
func (c *Client) FetchAll(ctx context.Context, q RangeQuery) ([]model.DepositRecord, error) {
	var records []model.DepositRecord
	fetched := 0

	for page := 1; ; page++ {
		if page > c.maxPages {
			log.WarnContext(ctx, "Upstream page limit reached, returning partial results",
				"max_pages", c.maxPages, "fetched", fetched)
			break
		}

		params := map[string]string{
			"page":           strconv.Itoa(page),
			"pageSize":       strconv.Itoa(c.pageSize),
			"status":         "APPROVED",
			"orderBy":        "createdAt",
			"orderDirection": "DESC",
		}
		if q.StartDate != "" {
			params["startDate"] = q.StartDate
		}
		if q.EndDate != "" {
			params["endDate"] = q.EndDate
		}

		pageCtx, cancel := context.WithTimeout(ctx, c.collateTimeout)
		result, err := c.getPage(pageCtx, params)
		cancel()
		if err != nil {
			return nil, err
		}

		log.InfoContext(ctx, "Fetched deposits page",
			"page", page, "records", len(result.Data), "upstream_count", result.Count)

		if len(result.Data) == 0 {
			break
		}
		records = append(records, result.Data...)
		fetched += len(result.Data)

		if result.Count > 0 && fetched >= result.Count {
			break
		}
	}

	return records, nil
}

func (c *Client) getPage(ctx context.Context, params map[string]string) (*DepositPage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get("")
	if err != nil {
		return nil, classifyTransportError(err)
	}
	if resp.IsError() {
		return nil, &RequestError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}

	var page DepositPage
	if err := json.Unmarshal(resp.Body(), &page); err != nil {
		return nil, errors.Wrap(err, "decode upstream response")
	}
	return &page, nil
}
