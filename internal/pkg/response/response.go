package response

import (
	"FitSphere/internal/service"
	"errors"
	log "log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success 成功返回封装；移动端直接消费原始 JSON，不再包信封
func Success(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusOK, data)
}

// Created 201 返回封装
func Created(ctx *gin.Context, data interface{}) {
	ctx.JSON(http.StatusCreated, data)
}

// Fail 失败返回封装，形如 {"error": "..."}
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// Error 处理错误：业务错误映射到 HTTP 状态码，未知错误记日志返回 500
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "invalid parameters")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "malformed json body")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "unexpected error", "err", err)
		Fail(c, status, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
