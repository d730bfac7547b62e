package platform

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

// hostnamePattern accepts dotted domain labels ending in an alphabetic TLD
var hostnamePattern = regexp.MustCompile(`^(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,6}\.?$`)

// ValidateURL checks that the input is a well-formed http(s) URL with a valid
// host (domain, localhost, or IPv4 address) and an optional port and path.
// Malformed URLs are rejected before they ever reach platform resolution.
func ValidateURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return false
	}

	host := parsed.Hostname()
	if host == "" {
		return false
	}

	if port := parsed.Port(); parsed.Host != "" && strings.HasSuffix(parsed.Host, ":") && port == "" {
		return false
	}

	if strings.EqualFold(host, "localhost") {
		return true
	}

	if ip := net.ParseIP(host); ip != nil {
		return ip.To4() != nil
	}

	return hostnamePattern.MatchString(host)
}
