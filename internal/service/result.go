package service

import "net/http"

// Result 是引擎对外的统一返回结构：HTTP 层拿到之后原样转发，
// 不做二次加工。
type Result struct {
	Status     string `json:"status"` // success / error
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode,omitempty"`
	Data       any    `json:"data,omitempty"`
}

// FieldError 描述某个表单字段的校验失败：Path 指向字段，
// Message 给开发者看，NotifMessage 给用户看。
type FieldError struct {
	Path         string `json:"path"`
	Message      string `json:"message"`
	NotifMessage string `json:"notifMessage"`
}

func success(message string, data any) Result {
	return Result{
		Status:     "success",
		Message:    message,
		StatusCode: http.StatusOK,
		Data:       data,
	}
}

func failure(statusCode int, message string) Result {
	return Result{
		Status:     "error",
		Message:    message,
		StatusCode: statusCode,
	}
}

// invalid 把字段校验错误打包成 422 返回，第一条错误作为主消息。
func invalid(errs []FieldError) Result {
	return Result{
		Status:     "error",
		Message:    errs[0].NotifMessage,
		StatusCode: http.StatusUnprocessableEntity,
		Data:       errs,
	}
}
