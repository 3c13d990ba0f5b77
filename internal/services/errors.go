package services

import "errors"

var (
	ErrDuplicateIdentity   = errors.New("account ID already exists")
	ErrInvalidCredentials  = errors.New("invalid account ID or password")
	ErrInsufficientBalance = errors.New("insufficient points")
	ErrInvalidAmount       = errors.New("points must be greater than zero")
	ErrUserNotFound        = errors.New("user not found")
	ErrTargetNotFound      = errors.New("target user not found")
	ErrSelfRequest         = errors.New("cannot add yourself")
	ErrRelationExists      = errors.New("request already sent or already family")
	ErrRequestHandled      = errors.New("request has already been handled")
	ErrNotFound            = errors.New("record not found")
	ErrInvalidDate         = errors.New("invalid date, expected YYYY-MM-DD")
	ErrOptimisticLock      = errors.New("data has been modified by another request, please refresh and try again")
)

// IsDomainError reports whether err is one of the failures above, which
// handlers surface to the caller as a 400.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrDuplicateIdentity, ErrInvalidCredentials, ErrInsufficientBalance, ErrInvalidAmount,
		ErrUserNotFound, ErrTargetNotFound, ErrSelfRequest, ErrRelationExists, ErrRequestHandled,
		ErrNotFound, ErrInvalidDate, ErrOptimisticLock,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
