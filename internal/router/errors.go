package router

import "errors"

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrEmptyParameter = errors.New("required parameter is empty")
	ErrEmptyText      = errors.New("selected text is empty")
)
