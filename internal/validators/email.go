package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid probes the address's domain for an MX record, falling
// back to any A/AAAA record. It cannot prove the mailbox exists; it only
// catches obvious typos before a verification token is issued.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
