// Package format renders prices and dates for the stock and tracking views.
package format

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/locales"
	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/id"
	"golang.org/x/text/language"
)

const (
	// DefaultSeparator groups thousands the way Indonesian rupiah amounts are written.
	DefaultSeparator = "."
	// DefaultLocale is used for long dates when no locale is configured.
	DefaultLocale = "id-ID"

	isoDateLayout   = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
)

var (
	supportedLocales = []language.Tag{language.Indonesian, language.English}
	localeMatcher    = language.NewMatcher(supportedLocales)

	dateTranslators = map[language.Tag]locales.Translator{
		language.Indonesian: id.New(),
		language.English:    en.New(),
	}
)

// Price renders an integral amount with thousands grouped by sep.
func Price(amount int64, sep string) string {
	if sep == "" {
		sep = DefaultSeparator
	}
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// Date renders an ISO calendar date (YYYY-MM-DD) in the long CLDR form of the
// given locale. Inputs that do not parse are returned unchanged.
func Date(iso string, locale string) string {
	day, err := time.Parse(isoDateLayout, strings.TrimSpace(iso))
	if err != nil {
		return iso
	}
	return dateTranslators[MatchLocale(locale)].FmtDateLong(day)
}

// MatchLocale resolves a BCP 47 locale string to one of the supported date
// locales, falling back to Indonesian.
func MatchLocale(locale string) language.Tag {
	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}
	requested, err := language.Parse(locale)
	if err != nil {
		return language.Indonesian
	}
	_, index, confidence := localeMatcher.Match(requested)
	if confidence == language.No {
		return language.Indonesian
	}
	return supportedLocales[index]
}

// ISODate renders t as YYYY-MM-DD.
func ISODate(t time.Time) string {
	return t.Format(isoDateLayout)
}

// Timestamp renders t as YYYY-MM-DD HH:MM:SS, the layout used by tracking events.
func Timestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// IsISODate reports whether value is a valid YYYY-MM-DD calendar date.
func IsISODate(value string) bool {
	_, err := time.Parse(isoDateLayout, value)
	return err == nil
}

// Display carries the locale settings used to render prices and dates in
// responses.
type Display struct {
	Separator string
	Locale    string
}

func (d Display) Price(amount int64) string {
	return Price(amount, d.Separator)
}

func (d Display) Date(iso string) string {
	return Date(iso, d.Locale)
}
