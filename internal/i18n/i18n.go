// Package i18n translates user-facing API messages. Operators work in
// Spanish; English is the default.
package i18n

import (
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

const (
	// DefaultLocale is used when the client states no supported language.
	DefaultLocale = "en"
	// AcceptLanguageHeader carries the client's language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator looks up API messages by key and locale.
type Translator struct {
	messages map[string]map[string]string
	locales  []string
	matcher  language.Matcher
}

// NewTranslator creates a translator for the built-in message set.
func NewTranslator() *Translator {
	messages := getDefaultMessages()

	// The default locale comes first so it wins when nothing matches.
	locales := []string{DefaultLocale}
	tags := []language.Tag{language.Make(DefaultLocale)}
	for locale := range messages {
		if locale != DefaultLocale {
			locales = append(locales, locale)
			tags = append(tags, language.Make(locale))
		}
	}

	return &Translator{
		messages: messages,
		locales:  locales,
		matcher:  language.NewMatcher(tags),
	}
}

// GetTranslator returns the shared translator.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale, falling back to the
// default locale and then to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Match picks the supported locale that best fits an Accept-Language value.
func (t *Translator) Match(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	desired, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(desired) == 0 {
		return DefaultLocale
	}
	_, idx, conf := t.matcher.Match(desired...)
	if conf == language.No {
		return DefaultLocale
	}
	return t.locales[idx]
}

// GetLocale returns the request's locale from its Accept-Language header.
func GetLocale(c *gin.Context) string {
	return GetTranslator().Match(c.GetHeader(AcceptLanguageHeader))
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":      "Invalid request",
			"error.invalid_request_body": "Invalid request body",
			"error.internal_error":       "An unexpected error occurred",
			"error.api_key_required":     "API key is required",
			"error.invalid_api_key":      "Invalid API key",
			"error.not_found":            "Not found",
			"error.rate_limit_exceeded":  "Too many requests, please try again later",
			"error.invalid_token":        "Invalid or expired token",
			"error.token_required":       "Authentication token is required",
			"error.timeout":              "The request took too long",
			"error.idempotency_mismatch": "This Idempotency-Key was already used for a different request",
			"error.service_unavailable":  "Plan storage is unavailable",
			"error.plan_not_found":       "Plan not found",
			"error.entity_not_found":     "Referenced catalog entry not found",
			"error.unknown_field":        "This field cannot be edited",
			"error.invalid_value":        "Invalid value for this field",
			"error.invalid_id":           "Invalid identifier",
			"error.invalid_date":         "Invalid date, expected YYYY-MM-DD",
			"error.import_file":          "The file is not a readable .xlsx workbook",
			"error.import_too_large":     "The uploaded file is too large",

			"success.plan_saved":   "Plan saved",
			"success.plan_deleted": "Plan deleted",
		},
		"es": {
			"error.invalid_request":      "Petición no válida",
			"error.invalid_request_body": "Cuerpo de la petición no válido",
			"error.internal_error":       "Se ha producido un error inesperado",
			"error.api_key_required":     "Se requiere una clave de API",
			"error.invalid_api_key":      "Clave de API no válida",
			"error.not_found":            "No encontrado",
			"error.rate_limit_exceeded":  "Demasiadas peticiones, inténtelo más tarde",
			"error.invalid_token":        "Token no válido o caducado",
			"error.token_required":       "Se requiere un token de autenticación",
			"error.timeout":              "La petición ha tardado demasiado",
			"error.idempotency_mismatch": "Esta Idempotency-Key ya se usó con otra petición",
			"error.service_unavailable":  "El almacenamiento de planificación no está disponible",
			"error.plan_not_found":       "Planificación no encontrada",
			"error.entity_not_found":     "No se encuentra el elemento del catálogo",
			"error.unknown_field":        "Este campo no se puede editar",
			"error.invalid_value":        "Valor no válido para este campo",
			"error.invalid_id":           "Identificador no válido",
			"error.invalid_date":         "Fecha no válida, formato AAAA-MM-DD",
			"error.import_file":          "El fichero no es un libro .xlsx legible",
			"error.import_too_large":     "El fichero es demasiado grande",

			"success.plan_saved":   "Planificación guardada",
			"success.plan_deleted": "Planificación eliminada",
		},
	}
}
