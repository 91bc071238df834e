package repository

import "errors"

// Store-level sentinel errors. Implementations translate driver errors
// (pgx.ErrNoRows, unique/foreign-key violations) into these so services and
// handlers can match with errors.Is without importing pgx.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrForeignKey = errors.New("referenced row missing or still referenced")
)
