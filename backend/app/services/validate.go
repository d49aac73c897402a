package services

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

var validUnits = map[string]bool{
	"kg": true, "lbs": true, "km": true, "miles": true,
	"steps": true, "calories": true, "minutes": true, "other": true,
}

func validEmail(email string) bool { return emailRe.MatchString(email) }

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// parseDate accepts RFC3339 timestamps and bare dates, the two shapes the
// clients send.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
