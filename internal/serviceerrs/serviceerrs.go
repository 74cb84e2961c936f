package serviceerrs

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrNotEnrolled        = fmt.Errorf("user not enrolled in any active loyalty program: %w", ErrNotFound)
	ErrProgramNotFound    = fmt.Errorf("loyalty program not found or inactive: %w", ErrNotFound)
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrAlreadyEnrolled    = errors.New("user already enrolled in an active loyalty program")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTokenExpired       = errors.New("token expired")
	ErrUnexpected         = errors.New("unexpected error")
)

type InsufficientPointsError struct {
	Available int64
	Requested int64
}

func (e *InsufficientPointsError) Error() string {
	return fmt.Sprintf("insufficient points. Available: %d, Requested: %d",
		e.Available, e.Requested)
}

func (e *InsufficientPointsError) Is(target error) bool {
	return target == ErrInsufficientPoints
}

type TooManyRequestsError struct {
	RetryAfter time.Duration
	Limit      int64
}

func (e *TooManyRequestsError) Error() string {
	return "too many requests"
}
