package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxLength is the maximum length of a sanitized title in runes
const MaxLength = 120

// ReservedChars are stripped because Windows refuses them in file names
const ReservedChars = `<>:"/\|?*`

// Separator replaces a vertical bar between title parts
const Separator = " - "

// minPasses is the floor of the fixed-point loop bound in Title
const minPasses = 8

var junkPhrases = []string{
	"official video", "lyric video", "lyrics",
	"video song", "audio song", "full song",
	"hd", "4k", "8k", "remastered",
	"promo", "teaser", "trailer",
	"movie version", "song version",
}

var (
	barPattern        = regexp.MustCompile(`[\s\v\x{85}\p{Z}]*\|[\s\v\x{85}\p{Z}]*`)
	whitespacePattern = regexp.MustCompile(`[\s\v\x{85}\p{Z}]{2,}`)
)

// JunkPhrases returns the promotional phrases removed from titles
func JunkPhrases() []string {
	out := make([]string, len(junkPhrases))
	copy(out, junkPhrases)
	return out
}

// Title returns a filesystem-safe track name for raw. The cleaning pass is
// repeated until the result stops changing, so the output never contains a
// junk phrase or reserved character and Title(Title(x)) == Title(x).
// The result may be empty.
func Title(raw string) string {
	name := clean(raw)
	limit := utf8.RuneCountInString(name) + minPasses
	for i := 0; i < limit; i++ {
		next := clean(name)
		if next == name {
			break
		}
		name = next
	}
	return name
}

func clean(name string) string {
	name = removeSymbols(name)
	name = strings.ToLower(name)

	for _, junk := range junkPhrases {
		name = strings.ReplaceAll(name, junk, "")
	}

	name = barPattern.ReplaceAllString(name, Separator)
	name = whitespacePattern.ReplaceAllString(name, " ")
	name = trimDanglingSeparators(name)

	// cases.Caser keeps state, so a fresh one per call
	name = cases.Title(language.Und).String(name)

	name = stripReserved(name)
	name = truncate(name, MaxLength)

	return strings.TrimSpace(name)
}

// removeSymbols drops runes in the Unicode "Symbol, Other" category (emoji,
// pictographs, decorative glyphs).
func removeSymbols(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.So, r) {
			return -1
		}
		return r
	}, s)
}

// trimDanglingSeparators trims surrounding whitespace and any " - " left at
// either end after junk removal emptied one side of a separator.
func trimDanglingSeparators(s string) string {
	for {
		s = strings.TrimSpace(s)
		switch {
		case s == "-":
			return ""
		case strings.HasPrefix(s, "- "):
			s = s[2:]
		case strings.HasSuffix(s, " -"):
			s = s[:len(s)-2]
		default:
			return s
		}
	}
}

func stripReserved(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ReservedChars, r) {
			return -1
		}
		return r
	}, s)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRightFunc(string(runes[:max]), unicode.IsSpace)
}
