package repository

import (
	"errors"
	"fmt"

	"github.com/inkwell/pkg/gorm"
)

var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicated      = errors.New("record already exists")
	ErrInvalidParent   = errors.New("invalid parent category")
	ErrUnknownAuthor   = errors.New("author does not exist")
	ErrUnknownCategory = errors.New("category does not exist")
)

// DuplicateError names the unique field a write collided on.
type DuplicateError struct {
	Entity string
	Field  string
	Value  string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with %s [%s] already exists", e.Entity, e.Field, e.Value)
}

func (e *DuplicateError) Is(target error) bool {
	return target == ErrDuplicated
}

// translate maps driver level failures onto the repository sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case gorm.IsNotFound(err):
		return ErrNotFound
	case gorm.IsDuplicate(err):
		return fmt.Errorf("%w: %v", ErrDuplicated, err)
	default:
		return err
	}
}
