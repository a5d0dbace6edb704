package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// EmailPattern is intentionally loose: the server is the authority on
// whether an address is deliverable, this only catches obvious typos.
var EmailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

const (
	// MinPasswordLen matches the server-side minimum
	MinPasswordLen = 6
	// MaxTitleLen limits auction titles
	MaxTitleLen = 200
)

// ValidateEmail checks that email looks like an address.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("invalid email address: %s", email)
	}

	return nil
}

// ValidateUsername checks the display name used at registration.
func ValidateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("username cannot be empty")
	}

	return nil
}

// ValidatePassword checks minimal password requirements.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateTitle checks an auction title.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("title cannot be empty")
	}

	if len(title) > MaxTitleLen {
		return fmt.Errorf("title must not exceed %d characters", MaxTitleLen)
	}

	return nil
}

// ValidateStartingPrice checks the opening price of a new auction.
func ValidateStartingPrice(price float64) error {
	if price <= 0 {
		return fmt.Errorf("starting price must be greater than 0")
	}

	return nil
}
