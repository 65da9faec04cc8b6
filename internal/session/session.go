// Package session discovers the puzzle-service session credential from an
// environment listing.
//
// Credentials are read from variables named AOC_<YYYY>_SESSION_ID. The
// environment is passed in explicitly (os.Environ() in production) so that
// resolution is deterministic under test.
package session

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/colthorp/aocdata/internal/core"
)

// Credential is a (year, token) pair identifying a puzzle-service session.
type Credential struct {
	Year  string
	Token string
}

// String masks the token so credentials are safe to log.
func (c Credential) String() string {
	return fmt.Sprintf("%s (%s)", c.Year, core.MaskToken(c.Token))
}

var sessionEnvRegex = regexp.MustCompile(
	"^" + regexp.QuoteMeta(core.SessionEnvPrefix) + `([0-9]{4})` + regexp.QuoteMeta(core.SessionEnvSuffix) + "$")

// ParseYear extracts the four-digit year from a variable name matching
// AOC_<YYYY>_SESSION_ID.
func ParseYear(name string) (string, bool) {
	matches := sessionEnvRegex.FindStringSubmatch(name)
	if matches == nil {
		return "", false
	}
	return matches[1], true
}

// Candidates returns every non-empty credential in environ, sorted by year.
// environ uses the os.Environ() KEY=VALUE format.
func Candidates(environ []string) []Credential {
	found := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || value == "" {
			continue
		}
		if year, ok := ParseYear(name); ok {
			found[year] = value
		}
	}

	creds := make([]Credential, 0, len(found))
	for year, token := range found {
		creds = append(creds, Credential{Year: year, Token: token})
	}
	sort.Slice(creds, func(i, j int) bool { return creds[i].Year < creds[j].Year })
	return creds
}

// Resolve selects the session credential to use.
//
// With year set, the credential for that year is returned. Without it,
// exactly one credential must be present; several distinct years fail with
// ErrAmbiguousCredential rather than depending on environment order.
func Resolve(environ []string, year string) (Credential, error) {
	creds := Candidates(environ)

	if year != "" {
		for _, c := range creds {
			if c.Year == year {
				return c, nil
			}
		}
		return Credential{}, fmt.Errorf("%w: %s is not set", core.ErrNoCredentialFound, core.SessionEnvName(year))
	}

	switch len(creds) {
	case 0:
		return Credential{}, fmt.Errorf("%w: expected an environment variable like %s",
			core.ErrNoCredentialFound, core.SessionEnvExample)
	case 1:
		return creds[0], nil
	}

	years := make([]string, len(creds))
	for i, c := range creds {
		years[i] = c.Year
	}
	return Credential{}, fmt.Errorf("%w: sessions set for %s; choose one with --year",
		core.ErrAmbiguousCredential, strings.Join(years, ", "))
}

// FromMap converts a map into os.Environ() form.
func FromMap(vars map[string]string) []string {
	environ := make([]string, 0, len(vars))
	for k, v := range vars {
		environ = append(environ, k+"="+v)
	}
	return environ
}
