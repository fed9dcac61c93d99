package offline

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var (
	ErrMalformedData = errors.New("malformed offline data")
	ErrMissingID     = errors.New("offline record without id")
	ErrDuplicateID   = errors.New("duplicate offline record id")
)

// Data is the persisted aggregate. Collections keep insertion order, which is
// also the sync processing order.
type Data struct {
	Registrations []*Registration `json:"registrations"`
	MealScans     []*MealScan     `json:"mealScans"`
	LastSync      time.Time       `json:"lastSync"`
	PendingSync   int             `json:"pendingSync"`
}

func NewData(now time.Time) *Data {
	return &Data{
		Registrations: []*Registration{},
		MealScans:     []*MealScan{},
		LastSync:      now.UTC(),
		PendingSync:   0,
	}
}

func (d *Data) AddRegistration(r *Registration) {
	d.Registrations = append(d.Registrations, r)
	if !r.Synced {
		d.PendingSync++
	}
}

func (d *Data) AddMealScan(s *MealScan) {
	d.MealScans = append(d.MealScans, s)
	if !s.Synced {
		d.PendingSync++
	}
}

func (d *Data) PendingRegistrations() []*Registration {
	out := make([]*Registration, 0)
	for _, r := range d.Registrations {
		if !r.Synced {
			out = append(out, r)
		}
	}
	return out
}

func (d *Data) PendingMealScans() []*MealScan {
	out := make([]*MealScan, 0)
	for _, s := range d.MealScans {
		if !s.Synced {
			out = append(out, s)
		}
	}
	return out
}

// EligibleRegistrations returns sync candidates in insertion order.
func (d *Data) EligibleRegistrations(maxRetries int) []*Registration {
	out := make([]*Registration, 0)
	for _, r := range d.Registrations {
		if r.Eligible(maxRetries) {
			out = append(out, r)
		}
	}
	return out
}

func (d *Data) EligibleMealScans(maxRetries int) []*MealScan {
	out := make([]*MealScan, 0)
	for _, s := range d.MealScans {
		if s.Eligible(maxRetries) {
			out = append(out, s)
		}
	}
	return out
}

// CountPending is the value PendingSync must always hold.
func (d *Data) CountPending() int {
	return len(d.PendingRegistrations()) + len(d.PendingMealScans())
}

// RemoveSynced drops every synced record and reports how many were removed.
func (d *Data) RemoveSynced() int {
	removed := 0
	regs := d.Registrations[:0]
	for _, r := range d.Registrations {
		if r.Synced {
			removed++
			continue
		}
		regs = append(regs, r)
	}
	d.Registrations = regs

	scans := d.MealScans[:0]
	for _, s := range d.MealScans {
		if s.Synced {
			removed++
			continue
		}
		scans = append(scans, s)
	}
	d.MealScans = scans

	d.PendingSync = d.CountPending()
	return removed
}

func (d *Data) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

// UnmarshalData decodes and checks a persisted or imported document. The
// pending counter is recomputed so the aggregate invariant always holds.
func UnmarshalData(raw []byte) (*Data, error) {
	var d Data
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	if d.Registrations == nil {
		d.Registrations = []*Registration{}
	}
	if d.MealScans == nil {
		d.MealScans = []*MealScan{}
	}

	seen := make(map[string]struct{}, len(d.Registrations)+len(d.MealScans))
	for i, r := range d.Registrations {
		if r == nil || r.ID == "" {
			return nil, fmt.Errorf("%w: registrations[%d]", ErrMissingID, i)
		}
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	for i, s := range d.MealScans {
		if s == nil || s.ID == "" {
			return nil, fmt.Errorf("%w: mealScans[%d]", ErrMissingID, i)
		}
		if _, dup := seen[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, s.ID)
		}
		seen[s.ID] = struct{}{}
	}

	d.PendingSync = d.CountPending()
	return &d, nil
}
