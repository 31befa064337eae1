package domain

import "fmt"

//region ValidationError

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func (e *ValidationError) Is(target error) bool {
	_, ok := target.(*ValidationError)
	return ok
}

//endregion

//region UnauthorizedError

type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string {
	return e.Msg
}

func (e *UnauthorizedError) Is(target error) bool {
	_, ok := target.(*UnauthorizedError)
	return ok
}

//endregion

//region PaymentDeclinedError

type PaymentDeclinedError struct {
	Reason string
}

func (e *PaymentDeclinedError) Error() string {
	if e.Reason == "" {
		return "payment declined"
	}

	return fmt.Sprintf("payment declined: %s", e.Reason)
}

func (e *PaymentDeclinedError) Is(target error) bool {
	_, ok := target.(*PaymentDeclinedError)
	return ok
}

//endregion

//region PaymentGatewayUnavailableError

type PaymentGatewayUnavailableError struct {
	Err error
}

func (e *PaymentGatewayUnavailableError) Error() string {
	if e.Err == nil {
		return "payment gateway unavailable"
	}

	return fmt.Sprintf("payment gateway unavailable: %v", e.Err)
}

func (e *PaymentGatewayUnavailableError) Unwrap() error {
	return e.Err
}

func (e *PaymentGatewayUnavailableError) Is(target error) bool {
	_, ok := target.(*PaymentGatewayUnavailableError)
	return ok
}

//endregion

//region IdempotencyConflictError

type IdempotencyConflictError struct {
	Key string
}

func (e *IdempotencyConflictError) Error() string {
	return "idempotency key was already used with a different request"
}

func (e *IdempotencyConflictError) Is(target error) bool {
	_, ok := target.(*IdempotencyConflictError)
	return ok
}

//endregion

//region DuplicateOrderError

// DuplicateOrderError is returned by a ledger when an order with the same
// user and idempotency key has already been committed.
type DuplicateOrderError struct {
	Key string
}

func (e *DuplicateOrderError) Error() string {
	return fmt.Sprintf("order with idempotency key %q already exists", e.Key)
}

func (e *DuplicateOrderError) Is(target error) bool {
	_, ok := target.(*DuplicateOrderError)
	return ok
}

//endregion

//region OrderNotFoundError

type OrderNotFoundError struct {
	OrderID string
}

func (e *OrderNotFoundError) Error() string {
	return "order not found"
}

func (e *OrderNotFoundError) Is(target error) bool {
	_, ok := target.(*OrderNotFoundError)
	return ok
}

//endregion
