package properties

import (
	"fmt"
	"strconv"
	"strings"
)

// UnescapePath unescapes a path value written with escaped
// separators, as Gradle writes Windows paths into .properties files
// (e.g. `C\:\\keys\\my.jks`). Escaped backslashes and colons are
// collapsed first, then any remaining escape sequences are decoded
// best-effort: unknown sequences pass through unchanged, and if a
// sequence is malformed the value is returned undecoded.
func UnescapePath(value string) string {
	unescaped := strings.ReplaceAll(value, `\\`, `\`)
	unescaped = strings.ReplaceAll(unescaped, `\:`, `:`)

	decoded, err := decodeEscapes(unescaped)
	if err != nil {
		return unescaped
	}

	return decoded
}

func decodeEscapes(s string) (string, error) {
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}

	var sb strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			sb.WriteByte(c)
			continue
		}

		i++
		switch e := s[i]; e {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'f':
			sb.WriteByte('\f')
		case 'b':
			sb.WriteByte('\b')
		case '0':
			sb.WriteByte(0)
		case '\\', '\'', '"':
			sb.WriteByte(e)
		case 'x':
			if i+2 >= len(s) {
				return "", fmt.Errorf("truncated \\x escape")
			}

			b, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", fmt.Errorf("malformed \\x escape: %w", err)
			}

			sb.WriteByte(byte(b))
			i += 2
		case 'u':
			if i+4 >= len(s) {
				return "", fmt.Errorf("truncated \\u escape")
			}

			r, err := strconv.ParseUint(s[i+1:i+5], 16, 32)
			if err != nil {
				return "", fmt.Errorf("malformed \\u escape: %w", err)
			}

			sb.WriteRune(rune(r))
			i += 4
		default:
			// Unknown escapes pass through untouched.
			sb.WriteByte('\\')
			sb.WriteByte(e)
		}
	}

	return sb.String(), nil
}
