// Package errors provides error types, handling utilities, and logging for acommit.
package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrorCode represents the category of an error.
type ErrorCode int

const (
	// Configuration errors (Exit Code 1)
	ErrInvalidConfig ErrorCode = iota + 100
	ErrUnknownProvider
	ErrUnknownArgument
	ErrMissingAPIKey

	// Version control errors (Exit Code 2)
	ErrGitCommandFailed ErrorCode = iota + 200
	ErrNotARepository
	ErrFileSystemError

	// Transport errors (Exit Code 3)
	ErrProviderFailed ErrorCode = iota + 300
	ErrNetworkError
	ErrTimeout
	ErrAuthenticationFailed
)

// ExitCode returns the appropriate process exit code for an error code.
func (c ErrorCode) ExitCode() int {
	switch {
	case c >= 100 && c < 200:
		return 1 // Configuration errors
	case c >= 200 && c < 300:
		return 2 // Version control errors
	case c >= 300:
		return 3 // Transport errors
	default:
		return 1
	}
}

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrUnknownProvider:
		return "UnknownProvider"
	case ErrUnknownArgument:
		return "UnknownArgument"
	case ErrMissingAPIKey:
		return "MissingAPIKey"
	case ErrGitCommandFailed:
		return "GitCommandFailed"
	case ErrNotARepository:
		return "NotARepository"
	case ErrFileSystemError:
		return "FileSystemError"
	case ErrProviderFailed:
		return "ProviderFailed"
	case ErrNetworkError:
		return "NetworkError"
	case ErrTimeout:
		return "Timeout"
	case ErrAuthenticationFailed:
		return "AuthenticationFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application error with context.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Suggestion string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithSuggestion adds a suggestion to the error.
func (e *AppError) WithSuggestion(suggestion string) *AppError {
	e.Suggestion = suggestion
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with context.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// GetAppError extracts an AppError from an error chain.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetExitCode returns the appropriate exit code for an error.
func GetExitCode(err error) int {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code.ExitCode()
	}
	return 1
}

// Common error constructors with suggestions

// NewUnknownArgumentError creates an error for an unrecognized CLI flag.
func NewUnknownArgumentError(arg string) *AppError {
	return &AppError{
		Code:       ErrUnknownArgument,
		Message:    fmt.Sprintf("unknown argument: %s", arg),
		Suggestion: "Run 'acommit --help' to see the supported flags",
	}
}

// NewUnknownProviderError creates an error for an unsupported provider name.
func NewUnknownProviderError(name string) *AppError {
	return &AppError{
		Code:       ErrUnknownProvider,
		Message:    fmt.Sprintf("unknown provider: %q", name),
		Suggestion: "Supported providers are gemini, ollama, and openai",
	}
}

// NewConfigFileError creates an error for an unreadable or malformed config file.
func NewConfigFileError(path string, err error) *AppError {
	return &AppError{
		Code:       ErrInvalidConfig,
		Message:    fmt.Sprintf("failed to load config file %s", path),
		Cause:      err,
		Suggestion: "Run 'acommit --example-config' to see the expected format",
	}
}

// NewMissingAPIKeyError creates an error for a provider that requires a key.
func NewMissingAPIKeyError(provider string) *AppError {
	return &AppError{
		Code:       ErrMissingAPIKey,
		Message:    fmt.Sprintf("API key is required for the %s provider", provider),
		Suggestion: "Pass the key on the command line, add it to acommit.json, or set the provider's environment variable",
	}
}

// NewGitError creates an error for git command failures.
func NewGitError(err error, output string) *AppError {
	appErr := &AppError{
		Code:    ErrGitCommandFailed,
		Message: "git command failed",
		Cause:   err,
	}
	if out := strings.TrimSpace(output); out != "" {
		appErr.Message = fmt.Sprintf("git command failed: %s", out)
	}
	return appErr
}

// NewNotARepositoryError creates an error for running outside a git repository.
func NewNotARepositoryError(err error) *AppError {
	return &AppError{
		Code:       ErrNotARepository,
		Message:    "not a git repository (or git not found)",
		Cause:      err,
		Suggestion: "Run acommit from inside a git working tree",
	}
}

// NewNetworkError creates an error for network failures.
func NewNetworkError(err error) *AppError {
	return &AppError{
		Code:       ErrNetworkError,
		Message:    "network error occurred",
		Cause:      err,
		Suggestion: "Please check your network connection and that the backend is reachable",
	}
}

// NewTimeoutError creates an error for timeouts.
func NewTimeoutError(err error) *AppError {
	return &AppError{
		Code:       ErrTimeout,
		Message:    "request timed out",
		Cause:      err,
		Suggestion: "Please check your network connection or try again later",
	}
}

// NewAuthenticationError creates an error for authentication failures.
func NewAuthenticationError(provider string) *AppError {
	return &AppError{
		Code:       ErrAuthenticationFailed,
		Message:    fmt.Sprintf("authentication failed with %s", provider),
		Suggestion: "Please check your API key is valid and has not expired",
	}
}

// NewProviderError creates an error for backend failures.
func NewProviderError(provider string, err error) *AppError {
	return &AppError{
		Code:    ErrProviderFailed,
		Message: fmt.Sprintf("%s provider error", provider),
		Cause:   err,
	}
}

// FormatError formats an error for user display.
// API keys and other sensitive data are automatically masked.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder

	appErr := GetAppError(err)
	if appErr != nil {
		sb.WriteString("Error: ")
		sb.WriteString(SanitizeErrorMessage(appErr.Message))

		if appErr.Cause != nil {
			sb.WriteString("\n  Cause: ")
			sb.WriteString(SanitizeErrorMessage(appErr.Cause.Error()))
		}

		if appErr.Suggestion != "" {
			sb.WriteString("\n  Suggestion: ")
			sb.WriteString(appErr.Suggestion)
		}
	} else {
		sb.WriteString("Error: ")
		sb.WriteString(SanitizeErrorMessage(err.Error()))
	}

	return sb.String()
}

// SanitizeErrorMessage masks any API keys or sensitive data in error messages.
func SanitizeErrorMessage(msg string) string {
	return apiKeyPattern.ReplaceAllStringFunc(msg, func(match string) string {
		if len(match) <= 4 {
			return "****"
		}
		return strings.Repeat("*", len(match)-4) + match[len(match)-4:]
	})
}

// apiKeyPattern matches common API key patterns.
var apiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9]{20,}|AIza[a-zA-Z0-9_-]{20,}`)
