// internal/application/contact.go
package application

import "github.com/mahabubulhasibshawon/grpc-kiosk-cart/internal/domain"

// FormatContactMessage builds the display entry for a contact form
// submission. It touches no session or cart state.
func FormatContactMessage(name, message string) domain.DisplayEntry {
	return domain.DisplayEntry{
		Name:    name,
		Message: message,
		Text:    name + ": " + message,
	}
}
