package utils

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrDatabaseError          = errors.New("database error")
	ErrRetrievalFailed        = errors.New("place retrieval failed")
	ErrSessionStore           = errors.New("session store error")
	ErrUnexpectedBehaviorOfAI = errors.New("unexpected behavior of AI provider")
)
