package util

import (
	"errors"
	"fmt"
)

// Stable error codes for the reporting pipeline. Only source and
// configuration failures are fatal to a run; everything else is absorbed
// and reflected as reduced content or a downgraded formatting mode.
const (
	CodeSourceRead    = "SOURCE_READ_FAILED"
	CodeEnrichment    = "ENRICHMENT_FAILED"
	CodeFormatting    = "FORMATTING_FAILED"
	CodeLLMResponse   = "LLM_BAD_RESPONSE"
	CodeConfiguration = "CONFIGURATION_INVALID"
	CodeInternal      = "INTERNAL_ERROR"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{Code: code, Message: message, Err: err}
}

func NewSourceReadError(source string, err error) error {
	return NewDomainError(CodeSourceRead, fmt.Sprintf("outage source %s unreadable", source), err)
}

func NewEnrichmentError(ref string, err error) error {
	return NewDomainError(CodeEnrichment, fmt.Sprintf("ticket lookup failed for %s", ref), err)
}

func NewFormattingError(err error) error {
	return NewDomainError(CodeFormatting, "AI formatting unavailable", err)
}

func NewLLMResponseError(message string) error {
	return NewDomainError(CodeLLMResponse, message, nil)
}

func NewConfigurationError(message string, err error) error {
	return NewDomainError(CodeConfiguration, message, err)
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return &DomainError{Code: CodeInternal, Message: "internal error", Err: err}
}

// IsFatal reports whether err must abort the run with a non-zero exit.
func IsFatal(err error) bool {
	de := ToDomainError(err)
	if de == nil {
		return false
	}
	switch de.Code {
	case CodeSourceRead, CodeConfiguration:
		return true
	}
	return false
}
