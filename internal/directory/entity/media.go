package entity

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ImageURL resolves the public address of a stored picture. Inline data wins
// over the image column; http links are upgraded to https and bare storage
// paths are joined onto base.
func ImageURL(image, data, mime *string, base string) *string {
	if data != nil && *data != "" && mime != nil && *mime != "" {
		u := "data:" + *mime + ";base64," + *data
		return &u
	}

	if image == nil || *image == "" {
		return nil
	}

	u := *image
	switch {
	case strings.HasPrefix(u, "https://"):
	case strings.HasPrefix(u, "http://"):
		u = "https://" + strings.TrimPrefix(u, "http://")
	default:
		u = strings.TrimRight(base, "/") + "/" + strings.TrimLeft(u, "/")
	}

	return &u
}

// IsRemote reports whether image points outside the bucket.
func IsRemote(image string) bool {
	return strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://")
}

var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify lowercases s, drops accents and joins alphanumeric runs with "-".
func Slugify(s string) string {
	folded, _, err := transform.String(foldAccents, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
