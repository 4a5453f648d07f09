package validators

import "regexp"

// Loose international pattern: 9 to 15 digits with an optional + prefix.
var phoneRegex = regexp.MustCompile(`^\+?\d{9,15}$`)

func IsPhoneValid(phone string) bool {
	return phoneRegex.MatchString(phone)
}
