package banner

import "errors"

var (
	// ErrSessionNotFound is returned when a session id is unknown or expired.
	ErrSessionNotFound = errors.New("banner: session not found")
	// ErrDialogClosed is returned when a closed dialog is edited or applied.
	ErrDialogClosed = errors.New("banner: dialog is closed")
	// ErrInvalidOption is returned when a select value is not in its catalog.
	ErrInvalidOption = errors.New("banner: value is not a valid option")
	// ErrUnknownField is returned when a form field name is not recognized.
	ErrUnknownField = errors.New("banner: unknown field")
	// ErrUnknownRecipe is returned when a recipe is not listed for the session variant.
	ErrUnknownRecipe = errors.New("banner: unknown recipe")
	// ErrInvalidConfiguration is returned when the saved configuration fails the schema.
	ErrInvalidConfiguration = errors.New("banner: configuration failed validation")

	errMissingStore     = errors.New("banner: session store not configured")
	errInvalidSessionID = errors.New("banner: session id is required")
)
