package placeholders

import (
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Decode converts file bytes to text without ever failing. A UTF-8 or
// UTF-16 byte order mark selects the encoding; otherwise UTF-8 is assumed.
// Invalid sequences become U+FFFD.
func Decode(data []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	out, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}
