package models

import "errors"

var (
	// ErrNotFound - запись не найдена в хранилище
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput - данные не прошли проверку в бизнес-логике
	ErrInvalidInput = errors.New("invalid input")
)
