package handlers

import "errors"

var (
	// common error code
	ErrInternalServer = errors.New("INTERNAL_SERVER_ERROR")
	ErrInvalidRequest = errors.New("VALIDATION_FAILED")
	ErrInvalidJson    = errors.New("INVALID_JSON_FORMAT")
	ErrMissingParam   = errors.New("MISSING_PARAM")
	ErrDb             = errors.New("DB_ERROR")

	// auth error code
	ErrAuthFailed   = errors.New("AUTH_FAILED")
	ErrMissingToken = errors.New("MISSING_TOKEN")
	ErrInvalidToken = errors.New("INVALID_TOKEN")
	ErrForbidden    = errors.New("FORBIDDEN")

	// draft error code
	ErrDraftNotFound  = errors.New("DRAFT_NOT_FOUND")
	ErrDraftField     = errors.New("INVALID_DRAFT_FIELD")
	ErrPhotosRequired = errors.New("PHOTOS_REQUIRED")
	ErrDraftStep      = errors.New("STEP_NOT_ALLOWED")
	ErrListingLimit   = errors.New("LISTING_LIMIT_REACHED")
	ErrSubmitFailed   = errors.New("LISTING_CREATE_FAILED")

	// file error code
	ErrInvalidForm  = errors.New("INVALID_FORM")
	ErrMissingFiles = errors.New("MISSING_FILES")
	ErrFileRead     = errors.New("FILE_READ_ERROR")
	ErrUploadFailed = errors.New("UPLOAD_FAILED")

	// verification error code
	ErrVerificationsLoad = errors.New("VERIFICATIONS_LOAD_FAILED")
	ErrRecordBusy        = errors.New("RECORD_BUSY")
	ErrResendFailed      = errors.New("RESEND_FAILED")
	ErrVerifyFailed      = errors.New("VERIFY_FAILED")

	// rates error code
	ErrRatesUnavailable = errors.New("RATES_UNAVAILABLE")
)
