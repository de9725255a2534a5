// Package pathutil provides savepoint path hygiene for user-supplied input.
package pathutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/jobmill-project/jobmill/pkg/errclass"
)

// NormalizeSavepointPath cleans up a user-supplied savepoint location before
// it is handed to the recovery settings factories. The location itself is
// opaque (a URI or filesystem path owned by the snapshot storage backend);
// only input hygiene is enforced here:
//
//   - surrounding whitespace is stripped
//   - the string is NFC normalized
//   - empty or whitespace-only input is rejected
//   - control characters are rejected
func NormalizeSavepointPath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errclass.ErrPathInvalid.WithMessage("savepoint path must not be empty")
	}

	path = norm.NFC.String(path)

	for _, r := range path {
		if unicode.IsControl(r) {
			return "", errclass.ErrPathInvalid.WithMessagef("savepoint path must not contain control characters: %q", path)
		}
	}

	return path, nil
}
