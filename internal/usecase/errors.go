package usecase

import (
	"errors"
	"fmt"

	"outfitter_billing/internal/usecase/interfaces"
)

// Error kinds. Every error leaving a use case matches exactly one of these
// with errors.Is, and keeps its concrete cause reachable as well.
var (
	ErrValidation    = errors.New("validation error")
	ErrAuthorization = errors.New("authorization error")
	ErrState         = errors.New("state error")
	ErrCollaborator  = errors.New("collaborator error")
)

var (
	// ErrNotYours covers both missing records and records owned by someone
	// else, so callers cannot probe other tenants.
	ErrNotYours  = authorization(errors.New("not found"))
	ErrStaffOnly = authorization(errors.New("action requires outfitter staff"))

	ErrInvalidHuntID        = validation(errors.New("invalid hunt_id"))
	ErrInvalidContractID    = validation(errors.New("invalid contract_id"))
	ErrInvalidPaymentItemID = validation(errors.New("invalid payment item id"))
	ErrPlanNotSelected      = errors.New("a guide-fee plan must be selected")
	ErrPlanNotOffered       = errors.New("selected plan is not offered for this hunt")
	ErrPlanUnavailable      = errors.New("contracted plan is no longer in the catalog")
	ErrMissingCompletion    = errors.New("contract has no client completion data")

	ErrContractNotFullyExecuted = errors.New("contract not fully executed")
	ErrHuntAlreadyExecuted      = errors.New("hunt dates are locked by a fully executed contract")
	ErrPaymentPlanExists        = errors.New("a payment plan already exists for this contract")
	ErrAlreadyPaid              = errors.New("guide fee already has payments recorded")
	ErrPaymentItemNotPending    = errors.New("payment item is not pending")
	ErrSignatureNotSent         = errors.New("contract has not been sent for signature")
	ErrClientCannotCancel       = errors.New("clients can only cancel before admin approval")
	ErrUnknownContractStatus    = errors.New("contract has an unrecognised status")
)

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string { return e.err.Error() }

func (e *kindError) Unwrap() []error { return []error{e.kind, e.err} }

func validation(err error) error { return &kindError{kind: ErrValidation, err: err} }
func authorization(err error) error { return &kindError{kind: ErrAuthorization, err: err} }
func stateErr(err error) error { return &kindError{kind: ErrState, err: err} }

// collaborator wraps a persistence or provider failure. Compare-and-set
// conflicts are state errors: the caller should re-fetch and retry.
func collaborator(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, interfaces.ErrConflict) {
		return stateErr(fmt.Errorf("%s: %w", op, err))
	}
	return &kindError{kind: ErrCollaborator, err: fmt.Errorf("%s: %w", op, err)}
}

// KindOf returns the kind sentinel an error belongs to, or nil.
func KindOf(err error) error {
	for _, k := range []error{ErrValidation, ErrAuthorization, ErrState, ErrCollaborator} {
		if errors.Is(err, k) {
			return k
		}
	}
	return nil
}
