package orders

import (
	"regexp"
	"strings"
	"unicode"
)

// PickupSlots are the discrete half-hour windows the counter hands orders out:
// the lunch service and the evening service.
var PickupSlots = []string{
	"11:30", "12:00", "12:30", "13:00", "13:30",
	"18:30", "19:00", "19:30", "20:00", "20:30", "21:00", "21:30",
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// SubmissionForm is what the customer fills in at checkout.
type SubmissionForm struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	PickupTime string `json:"pickupTime"`
}

// Validate checks every field independently and reports all failures together.
func (f SubmissionForm) Validate() *ValidationError {
	fields := make(map[string]string)

	if strings.TrimSpace(f.Name) == "" {
		fields["name"] = "Le prénom est requis"
	}

	phone := stripSpaces(f.Phone)
	if phone == "" {
		fields["phone"] = "Le numéro de téléphone est requis"
	} else if !phonePattern.MatchString(phone) {
		fields["phone"] = "Numéro de téléphone invalide"
	}

	if !validSlot(f.PickupTime) {
		fields["pickupTime"] = "L'heure de retrait est requise"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// stripSpaces drops every whitespace rune, tabs and no-break spaces included,
// so "06 12 34 56 78" pasted from a contact card still matches.
func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func validSlot(slot string) bool {
	for _, s := range PickupSlots {
		if s == slot {
			return true
		}
	}
	return false
}
