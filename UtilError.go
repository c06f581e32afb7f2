package gobitflyer

import "fmt"

type Error interface {
	error
	Code() int
}

type apiError struct {
	code    int
	message string
}

func (this *apiError) Error() string {
	return this.message
}

func (this *apiError) Code() int {
	return this.code
}

// New creates a new API error with a code and a message
func NewError(code int, message string, args ...interface{}) Error {
	if len(args) > 0 {
		return &apiError{code, fmt.Sprintf(message, args...)}
	}
	return &apiError{code, message}
}

/*
AsExchangeError recognises the error payload bitflyer returns with 4xx/5xx:

	{"status": -208, "error_message": "Order is not accepted", "data": null}

The client never raises on it; callers opt in here.
*/
func AsExchangeError(v JsonValue) (Error, bool) {
	obj, ok := v.(map[string]interface{})
	if !ok {
		return nil, false
	}
	rawStatus, exist := obj["status"]
	if !exist {
		return nil, false
	}
	status := ToInt(rawStatus)
	if status >= 0 {
		return nil, false
	}
	message, _ := obj["error_message"].(string)
	return NewError(status, message), true
}
