package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewComplainNo(t *testing.T) {
	re := regexp.MustCompile(`^CPL-\d+-\d{4}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, NewComplainNo())
	}
}

func TestNewUserComplaintID(t *testing.T) {
	re := regexp.MustCompile(`^comp-user-\d{6}$`)
	for i := 0; i < 20; i++ {
		assert.Regexp(t, re, NewUserComplaintID())
	}
}

func TestNewConsumerID(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^CP-\d{13,}$`), NewConsumerID())
}

func TestNewConsumerPassword(t *testing.T) {
	re := regexp.MustCompile(`^[0-9a-f]{16}$`)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		p := NewConsumerPassword()
		assert.Regexp(t, re, p)
		seen[p] = true
	}
	assert.Greater(t, len(seen), 45, "passwords should be effectively unique")
}

func TestInventoryCategoryPoints(t *testing.T) {
	cases := []struct {
		name string
		inv  Inventory
		want int
	}{
		{"empty", Inventory{}, 0},
		{"chemical only", Inventory{Chemical: []string{"alum"}}, 1},
		{"two categories", Inventory{Chemical: []string{"alum"}, Filter: []string{"sand"}}, 2},
		{"all three", Inventory{Chemical: []string{"a"}, Filter: []string{"b"}, SpareParts: []string{"c"}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.inv.CategoryPoints())
		})
	}
}

func TestIsValidComplaintStatus(t *testing.T) {
	for _, s := range ValidComplaintStatuses {
		assert.True(t, IsValidComplaintStatus(s))
	}
	assert.False(t, IsValidComplaintStatus("pending"))
	assert.False(t, IsValidComplaintStatus("Done"))
	assert.False(t, IsValidComplaintStatus(""))
}
