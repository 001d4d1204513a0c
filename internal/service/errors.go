package service

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// listings
	ErrListingLimit   = errors.New("listing limit reached")
	ErrDraftInvalid   = errors.New("draft failed validation")
	ErrSubmitInFlight = errors.New("submission already in progress")

	// verifications
	ErrRecordBusy        = errors.New("action already in progress for this record")
	ErrVerificationsLoad = errors.New("failed to load email verifications")
	ErrResendFailed      = errors.New("failed to resend verification email")
	ErrVerifyFailed      = errors.New("failed to verify email")

	// rates
	ErrRatesUnavailable = errors.New("exchange rates unavailable")
)
