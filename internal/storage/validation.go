package storage

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/calebhart/fintrack/internal/model"
)

// Validation errors. A wrapped ErrInvalidTransaction or ErrInvalidGoal
// means the requested mutation was rejected with no state change and no
// persistence write.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrInvalidTransaction = errors.New("invalid transaction")
	ErrInvalidGoal        = errors.New("invalid goal")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateTransaction checks the invariants every stored transaction must
// satisfy: a non-empty description, a positive finite amount, a known
// type, and a usable date.
func validateTransaction(txn model.Transaction) error {
	if strings.TrimSpace(txn.Description) == "" {
		return fmt.Errorf("%w: description is empty", ErrInvalidTransaction)
	}
	if txn.Amount <= 0 || math.IsNaN(txn.Amount) || math.IsInf(txn.Amount, 0) {
		return fmt.Errorf("%w: amount must be a positive finite number, got %v", ErrInvalidTransaction, txn.Amount)
	}
	if !txn.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidTransaction, txn.Type)
	}
	if txn.Date.IsZero() {
		return fmt.Errorf("%w: missing date", ErrInvalidTransaction)
	}
	return nil
}

// validateGoal checks that a goal amount is non-negative and finite.
// Zero is allowed and means "no goal configured".
func validateGoal(amount float64) error {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return fmt.Errorf("%w: amount must be a non-negative finite number, got %v", ErrInvalidGoal, amount)
	}
	return nil
}
