package engine

import (
	"fmt"
	"strings"
)

// ErrorCode identifies a single failed playground check
type ErrorCode int

const (
	CodeXAboveWidth  ErrorCode = 1
	CodeYAboveHeight ErrorCode = 2
	CodeXNegative    ErrorCode = 5
	CodeYNegative    ErrorCode = 6
	CodeXOnBoundary  ErrorCode = 11
	CodeYOnBoundary  ErrorCode = 12
)

// ValidationError is one coded reason a position was refused
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("(%d):%s", e.Code, e.Message)
}

// ValidationResult is the outcome of checking a position against a playground
type ValidationResult struct {
	Valid  bool              `json:"valid"`
	Errors []ValidationError `json:"errors"`
}

// Err joins the accumulated errors, or returns nil when the position is valid
func (r ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Error())
	}
	return fmt.Errorf("invalid position: %s", strings.Join(parts, "; "))
}

// Has reports whether the result contains the given code
func (r ValidationResult) Has(code ErrorCode) bool {
	for _, e := range r.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}

// Validate checks pos against the playground envelope.
// Every check runs; errors accumulate in a fixed order (1, 5, 11, 2, 6, 12).
// Facing and CollisionsDetected are not consulted.
func Validate(pos Position, pg Playground) ValidationResult {
	errs := []ValidationError{}

	if pos.X > pg.Width {
		errs = append(errs, ValidationError{
			Code:    CodeXAboveWidth,
			Message: fmt.Sprintf("Value X is greater than the playground limit of %d.", pg.Width),
		})
	}
	if pos.X < 0 {
		errs = append(errs, ValidationError{
			Code:    CodeXNegative,
			Message: "Value X is smaller than 0, negative coordinates are not allowed.",
		})
	}
	if pos.X == pg.Width && !pg.AllowBoundaries {
		errs = append(errs, ValidationError{
			Code:    CodeXOnBoundary,
			Message: fmt.Sprintf("Boundaries are not allowed and value X is equal to the playground limit of %d.", pg.Width),
		})
	}
	if pos.Y > pg.Height {
		errs = append(errs, ValidationError{
			Code:    CodeYAboveHeight,
			Message: fmt.Sprintf("Value Y is greater than the playground limit of %d.", pg.Height),
		})
	}
	if pos.Y < 0 {
		errs = append(errs, ValidationError{
			Code:    CodeYNegative,
			Message: "Value Y is smaller than 0 and negative coordinates are not allowed.",
		})
	}
	if pos.Y == pg.Height && !pg.AllowBoundaries {
		errs = append(errs, ValidationError{
			Code:    CodeYOnBoundary,
			Message: fmt.Sprintf("Boundaries are not allowed and value Y is equal to the playground limit of %d.", pg.Height),
		})
	}

	return ValidationResult{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}
