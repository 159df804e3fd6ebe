// Package i18n provides translation of user-facing error and validation
// messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header carrying language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator resolves message keys to localized text.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a translator with the bundled messages.
func NewTranslator() *Translator {
	return &Translator{messages: defaultMessages()}
}

// GetTranslator returns the singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in the given locale, falling back
// to English and finally to the key itself.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	msgs, ok := t.messages[locale]
	if !ok {
		msgs = t.messages[DefaultLocale]
	}
	if msg, ok := msgs[key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// GetLocale extracts the preferred supported locale from the request,
// defaulting to English.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}
	first := strings.TrimSpace(strings.Split(header, ",")[0])
	lang := strings.ToLower(strings.Split(first, ";")[0])
	if idx := strings.Index(lang, "-"); idx > 0 {
		lang = lang[:idx]
	}
	if _, ok := defaultMessages()[lang]; ok {
		return lang
	}
	return DefaultLocale
}

func defaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			ErrKeyInvalidRequest:     "Invalid request",
			ErrKeyInternalError:      "An unexpected error occurred",
			ErrKeyNotFound:           "Not found",
			ErrKeyRateLimit:          "Too many requests, please try again later",
			ErrKeyPackSum:            "Set pack must equal the sum of the size distribution",
			ErrKeyRevertNotConfirmed: "Reverting to the default rule requires confirmation",
			ErrKeyNotOverride:        "Default rules have no override to revert",
			ErrKeyTimeout:            "Request timed out",
		},
		"pt": {
			ErrKeyInvalidRequest:     "Requisição inválida",
			ErrKeyInternalError:      "Ocorreu um erro inesperado",
			ErrKeyNotFound:           "Não encontrado",
			ErrKeyRateLimit:          "Muitas requisições, tente novamente mais tarde",
			ErrKeyPackSum:            "O pack deve ser igual à soma da distribuição de tamanhos",
			ErrKeyRevertNotConfirmed: "Reverter para a regra padrão requer confirmação",
			ErrKeyNotOverride:        "Regras padrão não têm substituição para reverter",
			ErrKeyTimeout:            "Tempo de requisição esgotado",
		},
	}
}
