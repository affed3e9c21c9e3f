package customerr

import (
	"github.com/pkg/errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateName    = errors.New("duplicate name")
	ErrInUse            = errors.New("category is in use")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidName      = errors.New("invalid name")
	ErrParse            = errors.New("malformed payload")
	ErrInvalidDateRange = errors.New("end date is before start date")
	ErrRepeatedCategory = errors.New("category listed more than once")
)

const unexpectedMessage = "Sorry, something went wrong. Try again later"

var userMessages = []struct {
	err error
	msg string
}{
	{ErrNotFound, "Nothing found with that id or name"},
	{ErrDuplicateName, "A category with this name already exists"},
	{ErrInUse, "The category is used by expenses. Reassign or delete them first"},
	{ErrInvalidAmount, "Amount must be a number greater than zero (budgets may be zero)"},
	{ErrInvalidName, "Name cannot be empty"},
	{ErrParse, "The import file is not valid JSON"},
	{ErrInvalidDateRange, "End date cannot be before start date"},
	{ErrRepeatedCategory, "Each category can be listed only once"},
}

// UserMessage maps an error returned by the ledger to a message
// that can be shown to the owner as-is.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return unexpectedMessage
}

// Known reports whether err is one of the errors above, i.e. a mistake in
// user input rather than a failure of the system.
func Known(err error) bool {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return true
		}
	}
	return false
}
