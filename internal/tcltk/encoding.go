package tcltk

import (
	"os"
	"strings"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// systemEncodingName derives the host's preferred text encoding from the
// POSIX locale environment, e.g. "en_US.ISO8859-1" yields "ISO8859-1".
// Unset or charset-less locales default to UTF-8.
func systemEncodingName() string {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		locale := os.Getenv(key)
		if locale == "" {
			continue
		}
		if _, charset, found := strings.Cut(locale, "."); found {
			// Strip modifiers like "@euro"
			charset, _, _ = strings.Cut(charset, "@")
			return charset
		}
	}
	return "UTF-8"
}

// decodeSystemEncoding decodes data from the host's preferred encoding to
// UTF-8. Unknown encodings fall back to UTF-8 passthrough.
func decodeSystemEncoding(data []byte) (string, error) {
	name := systemEncodingName()

	enc, err := htmlindex.Get(name)
	if err != nil {
		enc = unicode.UTF8
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
