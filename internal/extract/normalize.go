package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"
)

// EncodingError is the only fatal error the pipeline surfaces. Everything
// else becomes a ValidationIssue inside a normally returned result.
type EncodingError struct {
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Reason)
}

var (
	reCRLF       = regexp.MustCompile(`\r\n?`)
	reTabs       = regexp.MustCompile(`\t+`)
	reMultiSpace = regexp.MustCompile(` {2,}`)
	reMultiBlank = regexp.MustCompile(`\n{3,}`)

	// boilerplate noise: separator rules and page footers
	reBoxNoise  = regexp.MustCompile(`(?m)^\s*[_\-=*]{3,}\s*$`)
	rePageNoise = regexp.MustCompile(`(?mi)^\s*page\s+\d+(\s+of\s+\d+)?\s*$`)
)

var (
	reISODate     = regexp.MustCompile(`\b(19|20)\d{2}-(0[1-9]|1[0-2])-(0[1-9]|[12]\d|3[01])\b`)
	reNumericDate = regexp.MustCompile(`\b(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})\b`)
	reMonthDate   = regexp.MustCompile(`(?i)\b(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember|t)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{4})\b`)
	reDayMonth    = regexp.MustCompile(`(?i)\b(\d{1,2})(?:st|nd|rd|th)?\.?\s+(Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:tember|t)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)\.?,?\s+(\d{4})\b`)
)

var monthAbbrev = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// Normalize canonicalizes one raw text into a Document. Conservative: line
// boundaries survive so layout heuristics keep working, and unparseable
// tokens pass through unchanged. The only failure mode is an *EncodingError
// for input that cannot be decoded as text.
func Normalize(raw string, loc Locale) (*Document, error) {
	if !utf8.ValidString(raw) {
		return nil, &EncodingError{Reason: "input is not valid UTF-8"}
	}
	if strings.TrimSpace(raw) == "" {
		return nil, &EncodingError{Reason: "input is empty"}
	}

	s := strings.Map(normalizeRune, raw)
	s = reCRLF.ReplaceAllString(s, "\n")
	s = reTabs.ReplaceAllString(s, " ")
	s = reMultiSpace.ReplaceAllString(s, " ")
	s = reBoxNoise.ReplaceAllString(s, "")
	s = rePageNoise.ReplaceAllString(s, "")
	s = reMultiBlank.ReplaceAllString(s, "\n\n")

	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	s = strings.TrimSpace(strings.Join(lines, "\n"))
	if s == "" {
		return nil, &EncodingError{Reason: "input is empty after normalization"}
	}

	lines = strings.Split(s, "\n")
	starts := make([]int, len(lines))
	off := 0
	for i, ln := range lines {
		starts[i] = off
		off += len(ln) + 1
	}

	doc := &Document{
		Raw:        raw,
		Text:       s,
		Lines:      lines,
		Locale:     loc,
		lineStarts: starts,
	}
	doc.Dates = annotateDates(s, loc)
	return doc, nil
}

// normalizeRune maps Unicode digit and punctuation variants onto their ASCII
// counterparts; everything unrecognized passes through unchanged.
func normalizeRune(r rune) rune {
	switch {
	case r >= 0xFF01 && r <= 0xFF5E: // fullwidth ASCII block
		return r - 0xFEE0
	case r >= 0x0660 && r <= 0x0669: // Arabic-Indic digits
		return '0' + (r - 0x0660)
	case r >= 0x06F0 && r <= 0x06F9: // extended Arabic-Indic digits
		return '0' + (r - 0x06F0)
	}
	switch r {
	case ' ', ' ', ' ': // non-breaking spaces
		return ' '
	case '‘', '’', '‚':
		return '\''
	case '“', '”', '„':
		return '"'
	case '‐', '‑', '‒', '–', '—', '−':
		return '-'
	}
	return r
}

// annotateDates scans the normalized text and records every token that reads
// as a calendar date, with its ISO form. Overlapping readings keep the first
// (most specific) interpretation: ISO, then textual, then numeric.
func annotateDates(text string, loc Locale) []DateAnnotation {
	var anns []DateAnnotation
	taken := func(span Span) bool {
		for _, a := range anns {
			if span.Start < a.Span.End && a.Span.Start < span.End {
				return true
			}
		}
		return false
	}
	add := func(span Span, y int, m time.Month, d int) {
		if taken(span) || !validDate(y, m, d) {
			return
		}
		anns = append(anns, DateAnnotation{
			Span: span,
			ISO:  fmt.Sprintf("%04d-%02d-%02d", y, m, d),
		})
	}

	for _, ix := range reISODate.FindAllStringIndex(text, -1) {
		span := Span{Start: ix[0], End: ix[1]}
		tok := text[ix[0]:ix[1]]
		var y, m, d int
		fmt.Sscanf(tok, "%d-%d-%d", &y, &m, &d)
		add(span, y, time.Month(m), d)
	}
	for _, ix := range reMonthDate.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: ix[0], End: ix[1]}
		m, ok := monthAbbrev[strings.ToLower(text[ix[2]:ix[2]+3])]
		if !ok {
			continue
		}
		d := atoi(text[ix[4]:ix[5]])
		y := atoi(text[ix[6]:ix[7]])
		add(span, y, m, d)
	}
	for _, ix := range reDayMonth.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: ix[0], End: ix[1]}
		d := atoi(text[ix[2]:ix[3]])
		m, ok := monthAbbrev[strings.ToLower(text[ix[4]:ix[4]+3])]
		if !ok {
			continue
		}
		y := atoi(text[ix[6]:ix[7]])
		add(span, y, m, d)
	}
	for _, ix := range reNumericDate.FindAllStringSubmatchIndex(text, -1) {
		span := Span{Start: ix[0], End: ix[1]}
		a := atoi(text[ix[2]:ix[3]])
		b := atoi(text[ix[4]:ix[5]])
		y := atoi(text[ix[6]:ix[7]])
		if ix[7]-ix[6] == 2 {
			if y < 70 {
				y += 2000
			} else {
				y += 1900
			}
		}
		var d, m int
		switch {
		case a > 12 && b <= 12:
			d, m = a, b
		case b > 12 && a <= 12:
			m, d = a, b
		case loc.DayFirst:
			d, m = a, b
		default:
			m, d = a, b
		}
		add(span, y, time.Month(m), d)
	}

	sort.Slice(anns, func(i, j int) bool { return anns[i].Span.Start < anns[j].Span.Start })
	return anns
}

func validDate(y int, m time.Month, d int) bool {
	if y < 1900 || y > 2199 || m < time.January || m > time.December || d < 1 || d > 31 {
		return false
	}
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return t.Year() == y && t.Month() == m && t.Day() == d
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return -1
		}
		n = n*10 + int(r-'0')
	}
	return n
}
