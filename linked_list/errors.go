package linked_list

import "github.com/sirkon/errors"

const (
	// ErrEmptyList is returned by every operation except AddHead when the
	// list holds no elements.
	ErrEmptyList errors.Const = "linked list is empty"

	// ErrValueNotFound is returned when the value to remove or to insert
	// after is not in the list. Returned errors wrap it, check with errors.Is.
	ErrValueNotFound errors.Const = "value not found"
)

// Describe renders an operation outcome the way it is shown to people.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyList):
		return emptyText
	case errors.Is(err, ErrValueNotFound):
		return "Value not found"
	default:
		return err.Error()
	}
}
