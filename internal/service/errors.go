package service

import (
	"errors"
	"net/http"
)

var (
	ErrParamInvalid     = errors.New("invalid request parameters")
	ErrMissingDateRange = errors.New("start and end dates are required")
	UnExpectedError     = errors.New("an unexpected server error occurred")
)

// StatusMap 业务哨兵错误到 HTTP 状态码的映射
// 上游传输类错误（超时/不可达/非 2xx）在 response 包中单独翻译
var StatusMap = map[error]int{
	ErrParamInvalid:     http.StatusBadRequest,
	ErrMissingDateRange: http.StatusBadRequest,
	UnExpectedError:     http.StatusInternalServerError,
}
