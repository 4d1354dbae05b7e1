package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrClientNotFound  = errors.New("client not found")
)
