// Package devices holds the practice appliances being onboarded to the
// manager. Registry is a value type: every operation returns the updated
// registry and leaves the receiver untouched, so earlier snapshots stay
// valid after later changes.
package devices

import "strings"

// State is the lifecycle position of a device. It only moves forward.
type State int

const (
	StatePending State = iota
	StateRegistered
	StateApproved
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "Pending"
	case StateRegistered:
		return "Registered"
	case StateApproved:
		return "Approved"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Record is one appliance undergoing onboarding.
type Record struct {
	Address         string
	RegistrationKey string
	Licenses        []string
	State           State
}

// Approved reports whether the record is frozen by approval.
func (r Record) Approved() bool { return r.State == StateApproved }

func (r Record) clone() Record {
	r.Licenses = append([]string(nil), r.Licenses...)
	return r
}

// DefaultLicenses returns the license set the "Assign Licenses" action applies.
func DefaultLicenses() []string {
	return []string{"Threat", "URL"}
}

// Registry is an ordered collection of records keyed by address. The zero
// value is an empty registry.
type Registry struct {
	records []Record
}

// Add appends a Pending record with no licenses. It is a no-op when the
// address or key is empty after trimming, or when the address exists.
func (r Registry) Add(address, key string) Registry {
	address = strings.TrimSpace(address)
	key = strings.TrimSpace(key)
	if address == "" || key == "" {
		return r
	}
	if _, ok := r.Lookup(address); ok {
		return r
	}

	next := make([]Record, len(r.records), len(r.records)+1)
	copy(next, r.records)
	next = append(next, Record{
		Address:         address,
		RegistrationKey: key,
		State:           StatePending,
	})
	return Registry{records: next}
}

// AssignLicenses gives every Pending or Registered record its own copy of
// set. Approved records keep their licenses.
func (r Registry) AssignLicenses(set []string) Registry {
	if len(r.records) == 0 {
		return r
	}

	next := make([]Record, len(r.records))
	for i, rec := range r.records {
		if !rec.Approved() {
			rec.Licenses = append([]string(nil), set...)
		}
		next[i] = rec
	}
	return Registry{records: next}
}

// Approve moves the record with the given address to Approved. Unknown or
// already approved addresses leave the registry unchanged.
func (r Registry) Approve(address string) Registry {
	address = strings.TrimSpace(address)
	idx := r.index(address)
	if idx < 0 || r.records[idx].Approved() {
		return r
	}

	next := make([]Record, len(r.records))
	copy(next, r.records)
	next[idx].State = StateApproved
	return Registry{records: next}
}

// Reset returns an empty registry.
func (r Registry) Reset() Registry {
	return Registry{}
}

// Lookup returns a copy of the record with the given address.
func (r Registry) Lookup(address string) (Record, bool) {
	idx := r.index(address)
	if idx < 0 {
		return Record{}, false
	}
	return r.records[idx].clone(), true
}

// Len returns the number of records.
func (r Registry) Len() int { return len(r.records) }

// Records returns a deep copy of the records in insertion order.
func (r Registry) Records() []Record {
	out := make([]Record, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.clone()
	}
	return out
}

func (r Registry) index(address string) int {
	for i, rec := range r.records {
		if rec.Address == address {
			return i
		}
	}
	return -1
}
