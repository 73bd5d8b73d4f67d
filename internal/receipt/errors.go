package receipt

import (
	"errors"
	"fmt"
)

// Repository errors.
var (
	// ErrNotFound - no entry exists for the requested receipt id
	ErrNotFound = errors.New("receipt not found")
	// ErrDuplicateID - Save was called with an id already present. The id
	// generator makes this unreachable in practice; the store still refuses
	// the write rather than overwrite a score.
	ErrDuplicateID = errors.New("receipt id already exists")
)

// ValidationError - a receipt was rejected by one of the validation rules.
// The message is part of the API contract and is returned to the client
// verbatim.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

func errMissingField(name string) *ValidationError {
	return validationErrorf("Error: missing %s in receipt", name)
}

func errInvalidFieldFormat(name string) *ValidationError {
	return validationErrorf("Error: invalid %s format", name)
}

func errInvalidItemsListFormat() *ValidationError {
	return validationErrorf("Error: invalid receipt items list format")
}

func errEmptyItemsList() *ValidationError {
	return validationErrorf("Error: receipt items list is empty")
}

func errInvalidItemFormat() *ValidationError {
	return validationErrorf("Error: invalid receipt item format")
}

func errInvalidRetailerName(value string) *ValidationError {
	return validationErrorf("Error: invalid receipt retailer name (%s)", value)
}

func errInvalidTotal(value string) *ValidationError {
	return validationErrorf("Error: invalid receipt total (%s)", value)
}

func errInvalidItemDescription(value string) *ValidationError {
	return validationErrorf("Error: invalid item description (%s)", value)
}

func errInvalidItemPrice(value string) *ValidationError {
	return validationErrorf("Error: invalid item price (%s)", value)
}

func errInvalidPurchaseDate(value string) *ValidationError {
	return validationErrorf("Error: invalid receipt purchase date (%s)", value)
}

func errInvalidPurchaseTime(value string) *ValidationError {
	return validationErrorf("Error: invalid receipt purchase time (%s)", value)
}
