package response

import (
	"DepositRank/internal/api/dto"
	"DepositRank/internal/pkg/broker"
	"DepositRank/internal/service"
	"errors"
	log "log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Fail 失败返回封装
func Fail(c *gin.Context, status int, message string, details string) {
	c.JSON(status, dto.ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// Error 在接口边界统一翻译错误，客户端永远不会看到原始堆栈
func Error(c *gin.Context, err error) {
	ctx := c.Request.Context()

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), ve.Error())
		return
	}
	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), unmarshalTypeError.Error())
		return
	}
	// page=abc 这类无法转换的查询参数，gin 绑定时返回 strconv 错误
	var numError *strconv.NumError
	if errors.As(err, &numError) {
		Fail(c, http.StatusBadRequest, service.ErrParamInvalid.Error(), numError.Error())
		return
	}

	switch {
	case errors.Is(err, broker.ErrUpstreamTimeout):
		log.ErrorContext(ctx, "Upstream timeout", "err", err)
		Fail(c, http.StatusGatewayTimeout, err.Error(), "")
		return
	case errors.Is(err, broker.ErrUpstreamUnavailable):
		log.ErrorContext(ctx, "Upstream unavailable", "err", err)
		Fail(c, http.StatusServiceUnavailable, err.Error(), "")
		return
	}

	var reqErr *broker.RequestError
	if errors.As(err, &reqErr) {
		log.ErrorContext(ctx, "Upstream request failed",
			"status", reqErr.StatusCode, "body", reqErr.Body)
		details := reqErr.Error()
		if reqErr.Body != "" {
			details = reqErr.Body
		}
		Fail(c, http.StatusInternalServerError, "failed to fetch data from the upstream API", details)
		return
	}

	if status, ok := service.StatusMap[err]; ok {
		Fail(c, status, err.Error(), "")
		return
	}

	// 未识别的错误只记录在服务端，对外返回通用提示
	log.ErrorContext(ctx, "Unexpected error", "err", err)
	Fail(c, http.StatusInternalServerError, service.UnExpectedError.Error(), "")
}
