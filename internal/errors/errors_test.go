package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "team"}
		assert.Equal(t, "team not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "team"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "team"}
		err2 := &NotFoundError{Entity: "member"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrMemberNotFound, ErrMemberNotFound))
		assert.False(t, errors.Is(ErrTeamNotFound, ErrMemberNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrTeamNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", ErrUserNotFound)))
		assert.False(t, IsNotFound(ErrInOtherTeam))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrTeamNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(ErrTeamFull))
		assert.False(t, IsValidation(ErrTeamNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("errors.Is matches by code", func(t *testing.T) {
		err := NewConflictError(CodeInOtherTeam, "başka mesaj")
		assert.True(t, errors.Is(err, ErrInOtherTeam))
		assert.False(t, errors.Is(err, ErrAlreadyInTeam))
	})

	t.Run("ConflictCode extracts the code through wrapping", func(t *testing.T) {
		err := fmt.Errorf("add member: %w", ErrInOtherTeam)
		assert.Equal(t, "IN_OTHER_TEAM", ConflictCode(err))
		assert.Equal(t, "", ConflictCode(ErrTeamFull))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrDuplicateInRoster))
		assert.False(t, IsConflict(ErrMemberNotFound))
	})
}

func TestPublicMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", ErrTeamFull, "Maksimum 4 kişi"},
		{"not found", ErrMemberNotFound, "Üye bulunamadı"},
		{"not found without message", NewNotFoundError("widget"), "widget not found"},
		{"conflict", ErrInOtherTeam, "Bu kullanıcı başka bir takımda kayıtlı"},
		{"wrapped", fmt.Errorf("x: %w", ErrInvalidCredentials), "E-posta veya şifre hatalı"},
		{"rate limited", ErrTooManyRequests, ErrTooManyRequests.Message},
		{"unknown", errors.New("pq: connection refused"), "Beklenmeyen bir hata oluştu"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, PublicMessage(tc.err))
		})
	}
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrLoginDisabled))
	assert.True(t, IsAuthorization(ErrAdminRequired))
	assert.True(t, IsRateLimited(ErrTooManyRequests))
	assert.False(t, IsAuthentication(ErrAdminRequired))
}
