package errors

import (
	"errors"
	"fmt"
)

// CodedError is an error carrying one of the registered error codes. Services
// declare their sentinel errors as coded errors so the presentation layer can
// turn any failure into the right user notice.
type CodedError struct {
	Code    ErrorCode
	Message string
}

func (e *CodedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// New creates a coded error with the default message for the code.
func New(code ErrorCode) *CodedError {
	return &CodedError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
}

// CodeOf extracts the error code from err, unwrapping as needed.
func CodeOf(err error) (ErrorCode, bool) {
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code, true
	}
	return "", false
}

// Notice is a blocking, user-visible modal describing a rejected operation.
// Every failure surfaces exactly one notice and leaves state unchanged; there
// is no retry logic anywhere in the core.
type Notice struct {
	Code    string   `json:"code"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// NoticeOption is a functional option for configuring notices
type NoticeOption func(*Notice)

// WithDetails adds detail lines to the notice
func WithDetails(details ...string) NoticeOption {
	return func(n *Notice) {
		n.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) NoticeOption {
	return func(n *Notice) {
		n.Message = message
	}
}

// NewNotice creates a notice for the given error code with its default title
// and message. Optional details can be added using functional options.
func NewNotice(code ErrorCode, opts ...NoticeOption) *Notice {
	notice := &Notice{
		Code:    string(code),
		Title:   GetNoticeTitle(code),
		Message: GetErrorMessage(code),
	}

	for _, opt := range opts {
		opt(notice)
	}

	return notice
}

// NoticeFromError builds the notice for a failed operation. Errors without a
// registered code collapse to a generic notice so nothing crashes the UI.
func NoticeFromError(err error) *Notice {
	if code, ok := CodeOf(err); ok {
		return NewNotice(code)
	}
	return &Notice{
		Code:    string(ValidationGeneral),
		Title:   "Error",
		Message: "An error occurred",
	}
}
