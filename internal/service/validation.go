package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"gamejam-portal-backend/internal/database/models"
	apperrors "gamejam-portal-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9]{10,14}$`)
)

// fieldMessages holds the user-facing message for each validated json field
var fieldMessages = map[string]string{
	"name":        "İsim en az 3 karakter olmalı",
	"email":       "Geçerli bir e-posta girin",
	"phone":       "Geçerli bir telefon numarası girin",
	"age":         "Yaş en az 14 olmalı",
	"role":        "Geçersiz rol",
	"profileRole": "Geçersiz rol",
	"mode":        "Geçersiz katılım tipi",
	"teamName":    "Takım adı en fazla 64 karakter olabilir",
	"teammates":   "En fazla 3 takım arkadaşı eklenebilir",
	"title":       "Başlık 3-120 karakter olmalı",
	"repoUrl":     "Geçerli bir bağlantı girin",
	"buildUrl":    "Geçerli bir bağlantı girin",
	"videoUrl":    "Geçerli bir bağlantı girin",
	"tags":        "En fazla 8 etiket eklenebilir",
	"subject":     "Konu gerekli",
	"body":        "Mesaj gerekli",
	"audience":    "Geçersiz alıcı grubu",
	"score":       "Puan 0 ile 100 arasında olmalı",
}

// NewValidator returns a validator with the portal's custom tags registered.
// Field names in errors follow the json tags.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("jamemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation("jamphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation("jamrole", func(fl validator.FieldLevel) bool {
		return models.ProfileRole(fl.Field().String()).IsValid()
	})
	return v
}

// validateStruct runs the validator and converts the first failure into a ValidationError
func validateStruct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperrors.NewValidationError("request", "Geçersiz istek")
	}
	field := verrs[0].Field()
	if msg, ok := fieldMessages[field]; ok {
		return apperrors.NewValidationError(field, msg)
	}
	return apperrors.NewValidationError(field, "Geçersiz değer: "+field)
}
