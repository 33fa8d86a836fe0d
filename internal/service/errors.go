package service

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrRecipeNotFound signals that no recipe has the requested id
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrConstraintViolation wraps uniqueness and integrity failures on insert
	ErrConstraintViolation = errors.New("recipe violates a database constraint")
)

// isConstraintError reports whether err is one of the integrity errors GORM
// translates driver errors into.
func isConstraintError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		errors.Is(err, gorm.ErrForeignKeyViolated) ||
		errors.Is(err, gorm.ErrCheckConstraintViolated)
}
