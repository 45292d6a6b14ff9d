package broker

import (
	"context"
	"fmt"
	"net"

	"github.com/pkg/errors"
)

var (
	// ErrUpstreamTimeout 上游接口超时
	ErrUpstreamTimeout = errors.New("upstream deposits API timed out")
	// ErrUpstreamUnavailable 上游接口无法连接
	ErrUpstreamUnavailable = errors.New("could not connect to the upstream deposits API")
)

// RequestError 上游返回非 2xx 时的错误，保留状态码与响应体便于排查
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("upstream deposits API request failed: status %d", e.StatusCode)
}

// classifyTransportError 将传输层错误归入错误分类
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUpstreamTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrUpstreamTimeout
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrUpstreamUnavailable
	}
	return errors.Wrap(err, "upstream request")
}
