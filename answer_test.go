package oido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vsariola/oido"
)

func TestEqualsSingleComparesOctave(t *testing.T) {
	assert.True(t, oido.EqualsSingle("E4", "E4"))
	assert.False(t, oido.EqualsSingle("C4", "C5"))
}

func TestEqualsSequence(t *testing.T) {
	target := []string{"D4", "F4", "A4"}
	cases := []struct {
		user []string
		want bool
	}{
		{[]string{"D4"}, true},
		{[]string{"D4", "F4"}, true},
		{[]string{"D4", "F4", "A4"}, true},
		{[]string{"D4", "F4", "C4"}, false},
		{[]string{"F4", "D4", "A4"}, false},
	}
	for _, c := range cases {
		got := oido.EqualsSequence(c.user, target[:len(c.user)])
		assert.Equal(t, c.want, got, "%v", c.user)
	}
	assert.False(t, oido.EqualsSequence([]string{"D4"}, target))
}

func TestEqualsSetIgnoresOrder(t *testing.T) {
	target := []string{"C4", "E4", "G4"}
	perms := [][]string{
		{"C4", "E4", "G4"}, {"C4", "G4", "E4"}, {"E4", "C4", "G4"},
		{"E4", "G4", "C4"}, {"G4", "C4", "E4"}, {"G4", "E4", "C4"},
	}
	for _, p := range perms {
		assert.True(t, oido.EqualsSet(p, target), "%v", p)
	}
}

func TestEqualsSetMembership(t *testing.T) {
	target := []string{"C4", "E4", "G4"}
	assert.False(t, oido.EqualsSet([]string{"C4", "E4"}, target))
	assert.False(t, oido.EqualsSet([]string{"C4", "E4", "G4", "B4"}, target))
	assert.False(t, oido.EqualsSet([]string{"C4", "E4", "A4"}, target))
	assert.False(t, oido.EqualsSet(nil, target))
	assert.True(t, oido.EqualsSet(nil, nil))
}
