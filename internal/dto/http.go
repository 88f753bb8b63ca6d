package dto

import "net/http"

// BaseResponse is the envelope for every error and message-bearing body the
// API returns. Resource payloads (analyses, articles, cache entries) are
// returned unwrapped.
type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewErrorResponse(code int, message string) *BaseResponse {
	return NewBaseResponse(code, message, nil)
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewErrorResponse(http.StatusBadRequest, message)
}

func NewSuccessResponse(message string, data interface{}) *BaseResponse {
	return NewBaseResponse(http.StatusOK, message, data)
}
