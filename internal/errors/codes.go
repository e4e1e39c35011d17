package errors

// ErrorCode represents a standardized error code used throughout the app core
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthCredentialRejected   ErrorCode = "AUTH_001"
	AuthBiometricUnavailable ErrorCode = "AUTH_002"
	AuthBiometricDenied      ErrorCode = "AUTH_003"
	AuthAlreadyLoggedIn      ErrorCode = "AUTH_004"
)

// Navigation error codes (NAV_*)
const (
	NavInvalidNavigation ErrorCode = "NAV_001"
	NavAccountNotFound   ErrorCode = "NAV_002"
	NavUnknownScreen     ErrorCode = "NAV_003"
)

// Transfer error codes (TRANSFER_*)
const (
	TransferInvalidAmount ErrorCode = "TRANSFER_001"
	TransferNoPending     ErrorCode = "TRANSFER_002"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationInvalidLanguage ErrorCode = "VALIDATION_002"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthCredentialRejected:   "Invalid Credentials",
	AuthBiometricUnavailable: "Your device does not support biometric authentication or it is not set up.",
	AuthBiometricDenied:      "Could not authenticate with biometrics.",
	AuthAlreadyLoggedIn:      "You are already logged in",

	// Navigation errors
	NavInvalidNavigation: "That screen is not reachable right now",
	NavAccountNotFound:   "Account not found",
	NavUnknownScreen:     "Unknown screen",

	// Transfer errors
	TransferInvalidAmount: "Please enter a valid amount to transfer.",
	TransferNoPending:     "There is no transfer waiting for confirmation",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationInvalidLanguage: "Unsupported speech language code",
}

// noticeTitles maps error codes to the title of the modal notice raised for
// them. Codes without an entry fall back to a generic title.
var noticeTitles = map[ErrorCode]string{
	AuthCredentialRejected:   "Invalid Credentials",
	AuthBiometricUnavailable: "Biometric authentication not available",
	AuthBiometricDenied:      "Authentication failed",
	TransferInvalidAmount:    "Invalid Amount",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// GetNoticeTitle returns the modal title for a given error code
func GetNoticeTitle(code ErrorCode) string {
	if title, ok := noticeTitles[code]; ok {
		return title
	}
	return "Error"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
