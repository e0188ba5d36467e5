package domain

import (
	"errors"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

var (
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedParseID        = "invalid id"

	ErrParseUUID = errors.New("failed to parse UUID")
)

type (
	PaginationQuery struct {
		Page  int `query:"page" validate:"min=1"`
		Limit int `query:"limit" validate:"min=1,max=100"`
	}
)
