package common

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"naebak/content-service/internal/constants"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const slugBaseMaxLen = 290

var (
	reNonAlnum      = regexp.MustCompile(`[^a-z0-9]+`)
	reSpaceOrHyphen = regexp.MustCompile(`[\s-]+`)
)

// SlugifyASCII transliterates to [a-z0-9-]: diacritics are dropped and
// anything outside ASCII disappears.
func SlugifyASCII(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKD.String(strings.ToLower(strings.TrimSpace(s))) {
		if unicode.Is(unicode.Mn, r) || r > unicode.MaxASCII {
			continue
		}
		b.WriteRune(r)
	}
	out := reNonAlnum.ReplaceAllString(b.String(), "-")
	return truncateSlug(strings.Trim(out, "-"))
}

// SlugifyUnicode keeps letters and digits of any script, so Arabic names
// produce Arabic slugs.
func SlugifyUnicode(s string) string {
	var b strings.Builder
	for _, r := range norm.NFKC.String(strings.ToLower(strings.TrimSpace(s))) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.IsMark(r):
			b.WriteRune(r)
		case unicode.IsSpace(r), r == '-', r == '_':
			b.WriteRune('-')
		}
	}
	out := reSpaceOrHyphen.ReplaceAllString(b.String(), "-")
	return truncateSlug(strings.Trim(out, "-"))
}

// RepresentativeSlug prefers the English name and falls back to the Arabic one.
func RepresentativeSlug(name, nameEn string) string {
	if strings.TrimSpace(nameEn) != "" {
		if s := SlugifyASCII(nameEn); s != "" {
			return s
		}
	}
	if s := SlugifyUnicode(name); s != "" {
		return s
	}
	return constants.FallbackSlug
}

// WithRandomSuffix appends "-" and six hex characters.
func WithRandomSuffix(slug string) string {
	return slug + "-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
}

func truncateSlug(s string) string {
	if utf8.RuneCountInString(s) <= slugBaseMaxLen {
		return s
	}
	return strings.Trim(string([]rune(s)[:slugBaseMaxLen]), "-")
}
