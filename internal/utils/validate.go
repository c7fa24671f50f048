// Package utils provides internal validation helpers.
package utils

import (
	"fmt"
	"net"
	"strings"
)

// ValidateIPv4 validates an IPv4 address.
func ValidateIPv4(ip string) error {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return fmt.Errorf("invalid IP address: %s", ip)
	}

	if parsed.To4() == nil {
		return fmt.Errorf("not an IPv4 address: %s", ip)
	}

	return nil
}

// ValidateUNCPath validates an SMB UNC path of the form \\server\share[\path].
// Lab Manager export and import operations hand these paths to the server
// verbatim, and the server reports malformed ones with an unhelpful generic
// fault, so they are checked client-side first.
func ValidateUNCPath(path string) error {
	if !strings.HasPrefix(path, `\\`) {
		return fmt.Errorf(`invalid UNC path %q: must start with \\`, path)
	}

	parts := strings.Split(strings.TrimPrefix(path, `\\`), `\`)
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf(`invalid UNC path %q: must name a server and a share`, path)
	}

	return nil
}
