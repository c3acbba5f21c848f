// Package dateutil formats dates from strftime-style patterns.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultDateFormat is used when a document does not set date-format.
const DefaultDateFormat = "%d-%m-%Y"

// directives maps strftime conversion characters to Go layouts.
var directives = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'e': "_2",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'Z': "MST",
	'z': "-0700",
	'F': "2006-01-02",
	'D': "01/02/06",
	'T': "15:04:05",
	'R': "15:04",
}

// DatePresets provides named shortcuts for common date formats.
var DatePresets = map[string]string{
	"iso":      "%Y-%m-%d",
	"european": "%d/%m/%Y",
	"us":       "%m/%d/%Y",
	"long":     "%B %-d, %Y",
}

// ResolvePreset returns the pattern for a preset name (case-insensitive),
// or pattern unchanged when it is not a preset.
func ResolvePreset(pattern string) string {
	if preset, ok := DatePresets[strings.ToLower(pattern)]; ok {
		return preset
	}
	return pattern
}

// Validate reports whether pattern is usable by Format.
func Validate(pattern string) error {
	_, err := Format(pattern, time.Time{})
	return err
}

// Format renders t using a strftime-style pattern.
// Supported directives: %Y %y %m %d %e %B %b %h %A %a %H %I %M %S %p %Z %z
// %F %D %T %R %j %u %w %%, plus the "-" flag (%-d) for unpadded numbers.
// Characters outside directives are copied literally, so digits in the
// pattern are never reinterpreted as layout fields.
func Format(pattern string, t time.Time) (string, error) {
	if pattern == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(pattern) > MaxDateFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			b.WriteByte(c)
			continue
		}

		i++
		if i >= len(pattern) {
			return "", fmt.Errorf("%w: dangling %% at end of %q", ErrInvalidDateFormat, pattern)
		}

		pad := true
		if pattern[i] == '-' {
			pad = false
			i++
			if i >= len(pattern) {
				return "", fmt.Errorf("%w: dangling %%- at end of %q", ErrInvalidDateFormat, pattern)
			}
		}

		verb := pattern[i]
		s, err := formatDirective(verb, pad, t)
		if err != nil {
			return "", fmt.Errorf("%w: %v in %q", ErrInvalidDateFormat, err, pattern)
		}
		b.WriteString(s)
	}

	return b.String(), nil
}

func formatDirective(verb byte, pad bool, t time.Time) (string, error) {
	switch verb {
	case '%':
		return "%", nil
	case 'j':
		if pad {
			return fmt.Sprintf("%03d", t.YearDay()), nil
		}
		return strconv.Itoa(t.YearDay()), nil
	case 'u':
		wd := int(t.Weekday())
		if wd == 0 {
			wd = 7
		}
		return strconv.Itoa(wd), nil
	case 'w':
		return strconv.Itoa(int(t.Weekday())), nil
	}

	if !pad {
		n, ok := unpaddedValue(verb, t)
		if !ok {
			return "", fmt.Errorf("flag \"-\" not supported for %%%c", verb)
		}
		return strconv.Itoa(n), nil
	}

	layout, ok := directives[verb]
	if !ok {
		return "", fmt.Errorf("unknown directive %%%c", verb)
	}
	return t.Format(layout), nil
}

func unpaddedValue(verb byte, t time.Time) (int, bool) {
	switch verb {
	case 'm':
		return int(t.Month()), true
	case 'd':
		return t.Day(), true
	case 'H':
		return t.Hour(), true
	case 'I':
		h := t.Hour() % 12
		if h == 0 {
			h = 12
		}
		return h, true
	case 'M':
		return t.Minute(), true
	case 'S':
		return t.Second(), true
	}
	return 0, false
}
