package shifts

import (
	"errors"
	"time"
)

var ErrShiftNotFound = errors.New("shift not found")

type Type string

const (
	TypeDay   Type = "day"
	TypeNight Type = "night"
)

func (t Type) Valid() bool {
	return t == TypeDay || t == TypeNight
}

// Shift assigns an employee to a slot, i.e. a (date, type) pair.
// At most one shift exists per slot.
type Shift struct {
	ID         int    `json:"id"`
	Date       string `json:"date"` // YYYY-MM-DD
	Type       Type   `json:"shiftType"`
	EmployeeID int    `json:"employeeId"`
}

const dateLayout = "2006-01-02"

// ValidDate accepts zero-padded ISO dates only. The month listing relies on
// lexicographic date comparison, which is exact as long as nothing else ever
// reaches the store.
func ValidDate(date string) bool {
	if len(date) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, date)
	return err == nil
}
