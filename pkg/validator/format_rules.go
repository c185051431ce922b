package validator

import (
	"net"
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	alphanumericRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

	// #RGB or #RRGGBB, leading hash optional
	hexColorRegex = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// ValidEmail validates that the value is an email-shaped string using RFC 5322.
func ValidEmail(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && isEmail(s)
		},
		Error: newError(field, "isEmail", "validation.email", "must be a valid email address", nil),
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil {
		return false
	}
	// Display names ("John <j@x.io>") are not plain addresses.
	if addr.Address != value {
		return false
	}

	local, domain, found := strings.Cut(addr.Address, "@")
	if !found || local == "" {
		return false
	}

	// Domain must contain at least one dot and cannot start/end with dot
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for part := range strings.SplitSeq(domain, ".") {
		if part == "" {
			return false
		}
	}

	return true
}

// ValidURL validates that the value is an absolute URL with scheme and host.
func ValidURL(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			if !ok || strings.TrimSpace(s) == "" {
				return false
			}
			u, err := url.ParseRequestURI(s)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Error: newError(field, "isURL", "validation.url", "must be a valid URL", nil),
	}
}

// ValidIP validates that the value is an IPv4 or IPv6 address.
func ValidIP(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && net.ParseIP(strings.TrimSpace(s)) != nil
		},
		Error: newError(field, "isIP", "validation.ip", "must be a valid IP address", nil),
	}
}

func ValidAlphanumeric(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && alphanumericRegex.MatchString(s)
		},
		Error: newError(field, "isAlphanumeric", "validation.alphanumeric", "must contain only letters and numbers", nil),
	}
}

func ValidHexColor(field string, value any) Rule {
	return Rule{
		Check: func() bool {
			s, ok := AsString(value)
			return ok && hexColorRegex.MatchString(s)
		},
		Error: newError(field, "isHexColor", "validation.hex_color", "must be a hexadecimal color", nil),
	}
}
