package scaffold

import (
	"errors"
	"regexp"
	"strings"

	"github.com/opmodel/create-vite/internal/prompt"
)

// fallbackPackageName replaces a name with nothing usable left in it.
const fallbackPackageName = "vite-project"

// errInvalidPackageName is the message shown when a typed name is rejected.
var errInvalidPackageName = errors.New("Invalid package.json name") //nolint:staticcheck // shown verbatim to the user

var (
	// An optional @scope/ prefix followed by the bare name.
	packageNameRe = regexp.MustCompile(`^(?:@[a-z0-9\-*~][a-z0-9\-*._~]*/)?[a-z0-9\-~][a-z0-9\-._~]*$`)

	whitespaceRunRe = regexp.MustCompile(`\s+`)
	invalidRunRe    = regexp.MustCompile(`[^a-z0-9\-~]+`)
)

// IsValidPackageName reports whether name can be used as a package.json name.
func IsValidPackageName(name string) bool {
	return packageNameRe.MatchString(name)
}

// ToValidPackageName derives a valid package name from any string.
// The result always satisfies IsValidPackageName.
func ToValidPackageName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = whitespaceRunRe.ReplaceAllString(s, "-")
	if strings.HasPrefix(s, ".") || strings.HasPrefix(s, "_") {
		s = s[1:]
	}
	s = invalidRunRe.ReplaceAllString(s, "-")
	// A trailing hyphen is legal but only ever left over from punctuation.
	s = strings.TrimRight(s, "-")

	if s == "" {
		return fallbackPackageName
	}
	return s
}

// ValidatePackageName returns an error suitable for showing in a prompt
// when name is not a valid package name.
func ValidatePackageName(name string) error {
	if !IsValidPackageName(name) {
		return errInvalidPackageName
	}
	return nil
}

// ResolvePackageName returns name when it is already valid. Otherwise the
// user is asked for a package name, with a derived suggestion, until the
// answer is valid.
func ResolvePackageName(name string, p prompt.Prompter) (string, error) {
	if IsValidPackageName(name) {
		return name, nil
	}

	suggestion := ToValidPackageName(name)
	for {
		answer, err := p.Text(prompt.TextQuestion{
			Message:  "Package name:",
			Default:  suggestion,
			Validate: ValidatePackageName,
		})
		if err != nil {
			return "", promptErr(err)
		}
		if IsValidPackageName(answer) {
			return answer, nil
		}
	}
}
