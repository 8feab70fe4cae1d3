package shifts

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Repo is the in-memory shift store. Restart loses all assignments.
type Repo struct {
	mutex  sync.RWMutex
	shifts map[int]*Shift
	nextID int
}

func NewRepo() *Repo {
	return &Repo{
		shifts: make(map[int]*Shift),
		nextID: 1,
	}
}

// Assign puts an employee on the (date, shiftType) slot. An occupied slot
// gets its employee overwritten instead of creating a duplicate row, the
// returned bool tells which of the two happened.
func (r *Repo) Assign(_ context.Context, date string, shiftType Type, employeeID int) (*Shift, bool, error) {
	if !ValidDate(date) {
		return nil, false, fmt.Errorf("invalid shift date: %q", date)
	}
	if !shiftType.Valid() {
		return nil, false, fmt.Errorf("invalid shift type: %q", shiftType)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, shift := range r.shifts {
		if shift.Date == date && shift.Type == shiftType {
			shift.EmployeeID = employeeID
			updated := *shift
			return &updated, true, nil
		}
	}

	shift := &Shift{
		ID:         r.nextID,
		Date:       date,
		Type:       shiftType,
		EmployeeID: employeeID,
	}
	r.nextID++
	r.shifts[shift.ID] = shift

	created := *shift
	return &created, false, nil
}

func (r *Repo) Get(_ context.Context, id int) (*Shift, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	shift, ok := r.shifts[id]
	if !ok {
		return nil, ErrShiftNotFound
	}

	found := *shift
	return &found, nil
}

func (r *Repo) GetBySlot(_ context.Context, date string, shiftType Type) (*Shift, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, shift := range r.shifts {
		if shift.Date == date && shift.Type == shiftType {
			found := *shift
			return &found, nil
		}
	}
	return nil, ErrShiftNotFound
}

func (r *Repo) Delete(_ context.Context, id int) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, ok := r.shifts[id]; !ok {
		return ErrShiftNotFound
	}

	delete(r.shifts, id)
	return nil
}

// ListMonth filters by lexicographic date range, day "31" included even for
// shorter months (no such rows can exist, the write path validates dates)
func (r *Repo) ListMonth(_ context.Context, year, month int) ([]Shift, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("invalid month: %d", month)
	}

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var monthShifts []Shift
	for _, shift := range r.shifts {
		if shift.Date >= startDate && shift.Date <= endDate {
			monthShifts = append(monthShifts, *shift)
		}
	}

	sortShifts(monthShifts)
	return monthShifts, nil
}

func (r *Repo) ListDate(_ context.Context, date string) ([]Shift, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var dateShifts []Shift
	for _, shift := range r.shifts {
		if shift.Date == date {
			dateShifts = append(dateShifts, *shift)
		}
	}

	sortShifts(dateShifts)
	return dateShifts, nil
}

// day shift sorts before night shift within the same date
func sortShifts(shifts []Shift) {
	sort.Slice(shifts, func(i, j int) bool {
		if shifts[i].Date != shifts[j].Date {
			return shifts[i].Date < shifts[j].Date
		}
		return shifts[i].Type == TypeDay && shifts[j].Type == TypeNight
	})
}
