package logger

import (
	"bytes"
	"io"
	log "log/slog"
	"net/http"
	"time"
)

// UpstreamTransport 挂在上游 HTTP 客户端上，记录每次出站请求
type UpstreamTransport struct {
	Transport http.RoundTripper
}

func (t *UpstreamTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	resp, err := transport.RoundTrip(req)
	elapsed := time.Since(start)

	fields := []any{
		log.String("method", req.Method),
		log.String("url", req.URL.String()),
		log.Duration("latency", elapsed),
	}

	if err != nil {
		log.ErrorContext(req.Context(), "UPSTREAM_ERROR", append(fields, log.Any("err", err))...)
		return nil, err
	}

	var resBody []byte
	if resp.Body != nil {
		resBody, _ = io.ReadAll(resp.Body)
		resp.Body = io.NopCloser(bytes.NewBuffer(resBody))
	}

	limit := 1000
	resStr := string(resBody)
	if len(resStr) > limit {
		resStr = resStr[:limit] + "...[truncated]"
	}
	fields = append(fields, log.Int("status", resp.StatusCode), log.String("res_body", resStr))

	if elapsed > 500*time.Millisecond {
		log.WarnContext(req.Context(), "UPSTREAM_SLOW", fields...)
	} else {
		log.InfoContext(req.Context(), "UPSTREAM_CALL", fields...)
	}

	return resp, nil
}
