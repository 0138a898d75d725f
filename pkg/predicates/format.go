package predicates

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/rulekit"
)

// Registered names of the format predicates.
const (
	Email    = "email"
	URL      = "url"
	Hostname = "hostname"
	IP       = "ip"
	UUID     = "uuid"
	Slug     = "slug"
)

var (
	hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

// email validates the address with the RFC 5322 parser, then applies the
// stricter shape typical web forms expect: a single bare address whose
// domain has non-empty dot-separated parts.
func email(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// urlCheck requires an absolute URL with a scheme and host.
func urlCheck(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// hostname validates RFC 1123 hostnames: dot-separated alphanumeric labels
// of at most 63 characters, 253 characters overall.
func hostname(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	if !ok || s == "" || len(s) > 253 {
		return false
	}
	return hostnameRegex.MatchString(s)
}

func ipAddr(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && net.ParseIP(s) != nil
}

// uuidCheck validates canonical 36-character UUIDs, rejecting on shape
// before handing off to the parser.
func uuidCheck(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	if !ok || len(s) != 36 {
		return false
	}
	if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func slug(value any, _ rulekit.Params) bool {
	s, ok := value.(string)
	return ok && slugRegex.MatchString(s)
}
