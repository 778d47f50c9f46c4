// Package lifecycle is the hunt contract state machine. Transition is the only
// place that decides whether a contract may move from one status to another.
package lifecycle

import (
	"errors"
	"fmt"
	"strings"

	"outfitter_billing/internal/domain/entities"
)

type Event string

const (
	EventSendToClient      Event = "send_to_client"
	EventBookingCompleted  Event = "booking_completed"
	EventClientSubmit      Event = "client_submit"
	EventApprove           Event = "approve"
	EventReject            Event = "reject"
	EventSendForSignature  Event = "send_for_signature"
	EventClientSigned      Event = "client_signed"
	EventCounterpartSigned Event = "counterpart_signed"
	EventCancel            Event = "cancel"
)

var (
	ErrIllegalTransition = errors.New("illegal contract transition")
	ErrGuardFailed       = errors.New("contract transition precondition not met")
)

// Facts are the observations guards need. Callers fill them from the
// contract and its hunt; the machine itself does no I/O.
type Facts struct {
	TemplateAttached  bool
	HuntLinked        bool
	SelectionComplete bool
}

type guard func(Facts) string

type edge struct {
	to    entities.ContractStatus
	guard guard
}

var table = map[entities.ContractStatus]map[Event]edge{
	entities.ContractStatusDraft: {
		EventSendToClient:     {to: entities.ContractStatusPendingClientCompletion, guard: requireTemplateAndHunt},
		EventBookingCompleted: {to: entities.ContractStatusPendingAdminReview, guard: requireHuntAndSelection},
	},
	entities.ContractStatusPendingClientCompletion: {
		EventClientSubmit: {to: entities.ContractStatusPendingAdminReview, guard: requireSelection},
	},
	entities.ContractStatusPendingAdminReview: {
		EventApprove: {to: entities.ContractStatusReadyForSignature},
		EventReject:  {to: entities.ContractStatusPendingClientCompletion},
	},
	entities.ContractStatusReadyForSignature: {
		EventSendForSignature: {to: entities.ContractStatusSentToSignatureService},
	},
	entities.ContractStatusSentToSignatureService: {
		EventClientSigned: {to: entities.ContractStatusClientSigned},
	},
	entities.ContractStatusClientSigned: {
		EventCounterpartSigned: {to: entities.ContractStatusFullyExecuted},
	},
}

// eventOrder keeps Allowed deterministic.
var eventOrder = []Event{
	EventSendToClient, EventBookingCompleted, EventClientSubmit, EventApprove, EventReject,
	EventSendForSignature, EventClientSigned, EventCounterpartSigned, EventCancel,
}

// TransitionError reports an event that is not legal in the current status,
// together with the events that are.
type TransitionError struct {
	From    entities.ContractStatus
	Event   Event
	Allowed []Event
}

func (e *TransitionError) Error() string {
	allowed := "none"
	if len(e.Allowed) > 0 {
		parts := make([]string, len(e.Allowed))
		for i, a := range e.Allowed {
			parts[i] = string(a)
		}
		allowed = strings.Join(parts, ", ")
	}
	return fmt.Sprintf("%v: cannot %s a contract in status %s (allowed: %s)", ErrIllegalTransition, e.Event, e.From, allowed)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }

// GuardError reports a legal event whose precondition is not satisfied.
type GuardError struct {
	From   entities.ContractStatus
	Event  Event
	Reason string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%v: %s from %s requires %s", ErrGuardFailed, e.Event, e.From, e.Reason)
}

func (e *GuardError) Unwrap() error { return ErrGuardFailed }

// Transition returns the status reached by applying ev in status from.
// Cancel is legal from every status except cancelled itself.
func Transition(from entities.ContractStatus, ev Event, facts Facts) (entities.ContractStatus, error) {
	if ev == EventCancel {
		if from == entities.ContractStatusCancelled {
			return from, &TransitionError{From: from, Event: ev, Allowed: Allowed(from)}
		}
		return entities.ContractStatusCancelled, nil
	}

	e, ok := table[from][ev]
	if !ok {
		return from, &TransitionError{From: from, Event: ev, Allowed: Allowed(from)}
	}
	if e.guard != nil {
		if reason := e.guard(facts); reason != "" {
			return from, &GuardError{From: from, Event: ev, Reason: reason}
		}
	}
	return e.to, nil
}

// Allowed lists the events accepted in a status.
func Allowed(from entities.ContractStatus) []Event {
	var out []Event
	for _, ev := range eventOrder {
		if ev == EventCancel {
			if from != entities.ContractStatusCancelled {
				out = append(out, ev)
			}
			continue
		}
		if _, ok := table[from][ev]; ok {
			out = append(out, ev)
		}
	}
	return out
}

// Known reports whether s is one of the contract statuses.
func Known(s entities.ContractStatus) bool {
	if s == entities.ContractStatusCancelled || s == entities.ContractStatusFullyExecuted {
		return true
	}
	_, ok := table[s]
	return ok
}

func requireTemplateAndHunt(f Facts) string {
	switch {
	case !f.TemplateAttached && !f.HuntLinked:
		return "a contract template and a linked hunt"
	case !f.TemplateAttached:
		return "a contract template"
	case !f.HuntLinked:
		return "a linked hunt"
	}
	return ""
}

func requireHuntAndSelection(f Facts) string {
	if !f.HuntLinked {
		return "a linked hunt"
	}
	return requireSelection(f)
}

func requireSelection(f Facts) string {
	if !f.SelectionComplete {
		return "a selected guide-fee plan and validated hunt dates"
	}
	return ""
}
