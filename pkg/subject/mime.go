package subject

import (
	"mime"

	"github.com/emersion/go-message/charset"
)

// DecodeEncodedWords decodes RFC 2047 encoded-words in a raw Subject header
// value, covering the charsets go-message knows beyond UTF-8. Malformed
// input comes back unchanged; the pipeline itself never validates encoding.
func DecodeEncodedWords(s string) string {
	dec := mime.WordDecoder{CharsetReader: charset.Reader}
	decoded, err := dec.DecodeHeader(s)
	if err != nil {
		return s
	}
	return decoded
}
