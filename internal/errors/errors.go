package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string // user-facing text, optional
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this email"
	Message string // user-facing text, optional
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError is a 409 carrying a machine readable code next to the message
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict (%s): %s", e.Code, e.Message)
}

// Is matches conflicts by code
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// RateLimitError is returned when a caller exceeds a throttle window
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// Conflict codes
const (
	CodeInOtherTeam     = "IN_OTHER_TEAM"
	CodeAlreadyMember   = "ALREADY_MEMBER"
	CodeDuplicateEmail  = "DUPLICATE_EMAIL"
	CodeAlreadyReviewed = "ALREADY_REVIEWED"
	CodeHasSubmissions  = "HAS_SUBMISSIONS"
)

// Entity Not Found Errors
var (
	ErrTeamNotFound         = &NotFoundError{Entity: "team", Message: "Takım bulunamadı"}
	ErrUserNotFound         = &NotFoundError{Entity: "user", Message: "Kullanıcı bulunamadı"}
	ErrMemberNotFound       = &NotFoundError{Entity: "member", Message: "Üye bulunamadı"}
	ErrApplicationNotFound  = &NotFoundError{Entity: "application", Message: "Başvuru bulunamadı"}
	ErrMessageNotFound      = &NotFoundError{Entity: "message", Message: "Mesaj bulunamadı"}
	ErrSubmissionNotFound   = &NotFoundError{Entity: "submission", Message: "Proje bulunamadı"}
	ErrAnnouncementNotFound = &NotFoundError{Entity: "announcement", Message: "Duyuru bulunamadı"}
)

// Already Exists Errors
var (
	ErrUserExists        = &AlreadyExistsError{Entity: "user", Context: "with this email", Message: "Bu e-posta ile kayıtlı bir kullanıcı var"}
	ErrApplicationExists = &AlreadyExistsError{Entity: "application", Context: "with this email", Message: "Bu e-posta ile bekleyen bir başvuru var"}
)

// Roster Errors
var (
	ErrTeamFull          = &ValidationError{Field: "members", Message: "Maksimum 4 kişi"}
	ErrNotTeamMode       = &ValidationError{Field: "type", Message: "Üye eklemek için takım moduna geçin"}
	ErrDuplicateInRoster = &ConflictError{Code: CodeDuplicateEmail, Message: "Bu e-posta zaten listede"}
	ErrAlreadyInTeam     = &ConflictError{Code: CodeAlreadyMember, Message: "Bu kullanıcı zaten takımınızda"}
	ErrInOtherTeam       = &ConflictError{Code: CodeInOtherTeam, Message: "Bu kullanıcı başka bir takımda kayıtlı"}
	ErrInvalidAction     = &ValidationError{Field: "action", Message: "Geçersiz işlem"}
	ErrEmailRequired     = &ValidationError{Field: "email", Message: "E-posta gerekli"}
)

// Business Logic Errors
var (
	ErrAlreadyReviewed         = &ConflictError{Code: CodeAlreadyReviewed, Message: "Başvuru zaten değerlendirildi"}
	ErrTeamHasSubmissions      = &ConflictError{Code: CodeHasSubmissions, Message: "Projesi olan takım silinemez"}
	ErrSubmissionLocked        = &ConflictError{Code: CodeAlreadyReviewed, Message: "Değerlendirilen proje değiştirilemez"}
	ErrNoRecipients            = &ValidationError{Field: "recipients", Message: "Alıcı bulunamadı"}
	ErrInvalidTeamType         = &ValidationError{Field: "type", Message: "Geçersiz takım tipi"}
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrInvalidResetToken       = &ValidationError{Field: "token", Message: "Bağlantı geçersiz veya süresi dolmuş"}
	ErrWeakPassword            = &ValidationError{Field: "password", Message: "Şifre en az 8 karakter olmalı"}
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "E-posta veya şifre hatalı"}
	ErrLoginDisabled      = &AuthenticationError{Message: "Hesabınız henüz etkinleştirilmedi"}
	ErrInvalidToken       = &AuthenticationError{Message: "Oturum geçersiz"}
	ErrUnauthenticated    = &AuthenticationError{Message: "Giriş yapmanız gerekiyor"}
	ErrAdminRequired      = &AuthorizationError{Message: "Bu işlem için yetkiniz yok"}
	ErrNotTeamLeader      = &AuthorizationError{Message: "Bu işlemi yalnızca takım lideri yapabilir"}
	ErrTooManyRequests    = &RateLimitError{Message: "Çok fazla deneme yaptınız, lütfen daha sonra tekrar deneyin"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsRateLimited checks if an error is a RateLimitError
func IsRateLimited(err error) bool {
	var rlErr *RateLimitError
	return errors.As(err, &rlErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// ConflictCode returns the machine readable code of a ConflictError, or ""
func ConflictCode(err error) string {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr.Code
	}
	return ""
}

// PublicMessage returns the text that may be shown to the end user
func PublicMessage(err error) string {
	var (
		validationErr *ValidationError
		conflictErr   *ConflictError
		notFoundErr   *NotFoundError
		existsErr     *AlreadyExistsError
		authErr       *AuthenticationError
		authzErr      *AuthorizationError
		rlErr         *RateLimitError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &conflictErr):
		return conflictErr.Message
	case errors.As(err, &notFoundErr):
		if notFoundErr.Message != "" {
			return notFoundErr.Message
		}
		return notFoundErr.Error()
	case errors.As(err, &existsErr):
		if existsErr.Message != "" {
			return existsErr.Message
		}
		return existsErr.Error()
	case errors.As(err, &authErr):
		return authErr.Message
	case errors.As(err, &authzErr):
		return authzErr.Message
	case errors.As(err, &rlErr):
		return rlErr.Message
	}
	return "Beklenmeyen bir hata oluştu"
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(code, message string) error {
	return &ConflictError{Code: code, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
