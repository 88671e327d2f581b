package response

import (
	"errors"
	"net/http"

	"tms/apperr"
	"tms/logutils"

	"github.com/gin-gonic/gin"
)

// Used by swagger to generate documentation
type Response[T any] struct {
	Code  ErrorCode      `json:"code"`
	Data  T              `json:"data"`
	Msg   string         `json:"msg"`
	Extra map[string]any `json:"extra,omitempty"`
}

// wrapResponse wraps the response data and sends it back to the client.
func wrapResponse(c *gin.Context, httpCode int, msg string, data any, code ErrorCode, extra map[string]any) {
	body := gin.H{
		"code": code,
		"data": data,
		"msg":  msg,
	}
	if len(extra) > 0 {
		body["extra"] = extra
	}
	c.JSON(httpCode, body)
}

// Success sends a successful response to the client with the provided data.
func Success(c *gin.Context, data any) {
	wrapResponse(c, http.StatusOK, "", data, OK, nil)
}

// Created sends a successful response with a 201 status.
func Created(c *gin.Context, data any) {
	wrapResponse(c, http.StatusCreated, "", data, OK, nil)
}

// HTTPError sends an HTTP error response with the specified HTTP code, error message, and error code.
func HTTPError(c *gin.Context, httpCode int, msg string, errorCode ErrorCode) {
	wrapResponse(c, httpCode, msg, nil, errorCode, nil)
}

// Used when Gin ShouldBindJSON, ShouldBindUri etc. fail to bind parameters
func BadRequestError(c *gin.Context, msg string) {
	HTTPError(c, http.StatusBadRequest, msg, InvalidRequest)
}

// DomainError maps an error coming out of the store to an HTTP status
// and error code. Unknown errors become a 500 without leaking detail.
func DomainError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		logutils.Log.Error(err)
		HTTPError(c, http.StatusInternalServerError, "internal error", NotSpecified)
		return
	}

	switch appErr.Kind {
	case apperr.KindValidation:
		wrapResponse(c, http.StatusBadRequest, appErr.Message, nil, ValidationFailed, appErr.Extra)
	case apperr.KindNotFound:
		wrapResponse(c, http.StatusNotFound, appErr.Message, nil, NotFound, appErr.Extra)
	case apperr.KindConflict:
		wrapResponse(c, http.StatusConflict, appErr.Message, nil, Conflict, appErr.Extra)
	case apperr.KindProject, apperr.KindTranslation:
		wrapResponse(c, http.StatusUnprocessableEntity, appErr.Message, nil, BusinessRule, appErr.Extra)
	default:
		logutils.Log.Error(err)
		HTTPError(c, http.StatusInternalServerError, "internal error", NotSpecified)
	}
}
