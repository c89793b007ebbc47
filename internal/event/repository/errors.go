package repository

import "errors"

var (
	ErrNotFound     = errors.New("no stored event for key")
	ErrKeyCollision = errors.New("storage key already exists")
)
