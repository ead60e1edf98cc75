package entity

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrContactNotFound     = errors.New("contact not found")
	ErrInteractionNotFound = errors.New("interaction not found")
)
