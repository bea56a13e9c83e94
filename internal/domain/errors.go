package domain

import "errors"

var (
	// ErrNotFound indicates resource not found
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidRequest indicates invalid request
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnauthorized indicates unauthorized access
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSessionBusy indicates a send was attempted while another send for
	// the same session was still in flight
	ErrSessionBusy = errors.New("session has a send in flight")
	// ErrPlanLimit indicates the subscription tier cap was reached
	ErrPlanLimit = errors.New("plan limit reached")
)
