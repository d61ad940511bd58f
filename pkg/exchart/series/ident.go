package series

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/ukaji3/exchart-go/pkg/exchart/models"
	"golang.org/x/text/unicode/norm"
)

// UnknownID is the identifier used when a row has no usable one.
const UnknownID = "unknown"

// SanitizeID converts a row identifier into a non-empty string made of
// letters, digits, underscores and hyphens, safe to embed in a file name.
func SanitizeID(c models.Cell) string {
	switch c.Kind {
	case models.KindInteger:
		return keepSafe(strconv.FormatInt(c.Int, 10))
	case models.KindFloat:
		return sanitizeFloat(c.Float)
	case models.KindText:
		return sanitizeText(c.Text)
	case models.KindDateTime:
		return sanitizeText(c.Time.Format(time.DateTime))
	}
	return UnknownID
}

func sanitizeFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return UnknownID
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == math.Trunc(v):
		return keepSafe(strconv.FormatFloat(v, 'f', 0, 64))
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return keepSafe(strings.ReplaceAll(s, ".", "_"))
}

func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return UnknownID
	}
	s = strings.ReplaceAll(norm.NFC.String(s), " ", "_")
	return keepSafe(s)
}

// keepSafe drops every rune that is not a letter, digit, '_' or '-'.
func keepSafe(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '-' {
			return r
		}
		return -1
	}, s)
	if s == "" {
		return UnknownID
	}
	return s
}
