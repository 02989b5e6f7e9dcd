package devices

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	r := Registry{}.Add("10.0.0.1", "K1")

	require.Equal(t, 1, r.Len())
	rec, ok := r.Lookup("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "K1", rec.RegistrationKey)
	assert.Equal(t, StatePending, rec.State)
	assert.Empty(t, rec.Licenses)
}

func TestAddFirstWriteWins(t *testing.T) {
	r := Registry{}.Add("10.0.0.1", "K1").Add("10.0.0.1", "K2")

	require.Equal(t, 1, r.Len())
	rec, _ := r.Lookup("10.0.0.1")
	assert.Equal(t, "K1", rec.RegistrationKey)
}

func TestAddRejectsEmpty(t *testing.T) {
	tests := []struct {
		name    string
		address string
		key     string
	}{
		{name: "empty address", address: "", key: "K"},
		{name: "empty key", address: "10.0.0.1", key: ""},
		{name: "blank address", address: "   ", key: "K"},
		{name: "blank key", address: "10.0.0.1", key: "\t"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Registry{}.Add(tt.address, tt.key)
			assert.Equal(t, 0, r.Len())
		})
	}
}

func TestAddTrims(t *testing.T) {
	r := Registry{}.Add(" 10.0.0.1 ", " K1 ").Add("10.0.0.1", "K2")
	require.Equal(t, 1, r.Len())
	rec, ok := r.Lookup("10.0.0.1")
	require.True(t, ok)
	assert.Equal(t, "K1", rec.RegistrationKey)
}

func TestAddDoesNotMutateReceiver(t *testing.T) {
	base := Registry{}.Add("a", "k")
	_ = base.Add("b", "k")
	assert.Equal(t, 1, base.Len())
}

func TestAddIdempotentOnAddress(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	addresses := []string{"10.0.0.1", "10.0.0.2", "10.0.0.3", "", "10.0.0.1 "}

	for round := range 50 {
		r := Registry{}
		for range 30 {
			addr := addresses[rng.IntN(len(addresses))]
			r = r.Add(addr, fmt.Sprintf("K%d", round))
		}

		seen := map[string]int{}
		for _, rec := range r.Records() {
			seen[rec.Address]++
		}
		for addr, n := range seen {
			assert.Equal(t, 1, n, "address %q duplicated", addr)
		}
	}
}

func TestAssignLicenses(t *testing.T) {
	r := Registry{}.Add("a", "k").Add("b", "k").AssignLicenses(DefaultLicenses())

	for _, rec := range r.Records() {
		assert.Equal(t, []string{"Threat", "URL"}, rec.Licenses)
		assert.Equal(t, StatePending, rec.State, "license assignment does not advance state")
	}
}

func TestAssignLicensesSkipsApproved(t *testing.T) {
	r := Registry{}.Add("a", "k").Add("b", "k").Approve("a").AssignLicenses(DefaultLicenses())

	a, _ := r.Lookup("a")
	b, _ := r.Lookup("b")
	assert.Empty(t, a.Licenses)
	assert.Equal(t, DefaultLicenses(), b.Licenses)
}

func TestApproveFreezesConfiguration(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	addrs := []string{"a", "b", "c", "d"}

	for range 50 {
		r := Registry{}
		for _, a := range addrs {
			r = r.Add(a, "k")
			if rng.IntN(2) == 0 {
				r = r.AssignLicenses([]string{"Base"})
			}
		}
		target := addrs[rng.IntN(len(addrs))]
		r = r.Approve(target)
		before, _ := r.Lookup(target)

		r = r.AssignLicenses(DefaultLicenses())

		after, _ := r.Lookup(target)
		assert.Equal(t, before.Licenses, after.Licenses)
		for _, rec := range r.Records() {
			if rec.Address == target || rec.Approved() {
				continue
			}
			assert.Equal(t, DefaultLicenses(), rec.Licenses)
		}
	}
}

func TestAssignLicensesCopiesSet(t *testing.T) {
	set := []string{"Threat"}
	r := Registry{}.Add("a", "k").AssignLicenses(set)
	set[0] = "mutated"

	rec, _ := r.Lookup("a")
	assert.Equal(t, []string{"Threat"}, rec.Licenses)
}

func TestApprove(t *testing.T) {
	r := Registry{}.Add("a", "k").Add("b", "k").Approve("b")

	a, _ := r.Lookup("a")
	b, _ := r.Lookup("b")
	assert.Equal(t, StatePending, a.State)
	assert.Equal(t, StateApproved, b.State)
	assert.True(t, b.Approved())
}

func TestApproveNoop(t *testing.T) {
	base := Registry{}.Add("a", "k")

	assert.Equal(t, base, base.Approve("missing"))

	approved := base.Approve("a")
	assert.Equal(t, approved, approved.Approve("a"))
}

func TestApproveFromRegistered(t *testing.T) {
	r := Registry{records: []Record{{Address: "a", RegistrationKey: "k", State: StateRegistered}}}
	r = r.AssignLicenses(DefaultLicenses()).Approve("a")

	rec, _ := r.Lookup("a")
	assert.Equal(t, StateApproved, rec.State)
	assert.Equal(t, DefaultLicenses(), rec.Licenses)
}

func TestReset(t *testing.T) {
	r := Registry{}.Add("a", "k").Add("b", "k").Reset()
	assert.Equal(t, 0, r.Len())
	assert.Equal(t, Registry{}, r)
}

func TestRecordsIsDeepCopy(t *testing.T) {
	r := Registry{}.Add("a", "k").AssignLicenses(DefaultLicenses())
	recs := r.Records()
	recs[0].Licenses[0] = "mutated"
	recs[0].State = StateApproved

	rec, _ := r.Lookup("a")
	assert.Equal(t, "Threat", rec.Licenses[0])
	assert.Equal(t, StatePending, rec.State)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Pending", StatePending.String())
	assert.Equal(t, "Registered", StateRegistered.String())
	assert.Equal(t, "Approved", StateApproved.String())

	b, err := StateApproved.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Approved", string(b))
}
