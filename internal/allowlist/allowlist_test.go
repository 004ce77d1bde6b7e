package allowlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyListAllowsEveryone(t *testing.T) {
	l := Parse("")
	assert.True(t, l.Allowed("anyone@example.com"))
	assert.True(t, l.Allowed(""))
}

func TestNilListAllowsEveryone(t *testing.T) {
	var l *List
	assert.True(t, l.Allowed("anyone@example.com"))
}

func TestConfiguredListGatesEmails(t *testing.T) {
	l := Parse("mom@gmail.com, dad@gmail.com,sister@gmail.com")

	assert.True(t, l.Allowed("mom@gmail.com"))
	assert.True(t, l.Allowed("dad@gmail.com"))
	assert.False(t, l.Allowed("stranger@gmail.com"))
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	l := Parse("Mom@Gmail.com")

	assert.True(t, l.Allowed("mom@gmail.com"))
	assert.True(t, l.Allowed("MOM@GMAIL.COM"))
	assert.True(t, l.Allowed("  mom@gmail.com "))
}

func TestEmptyEntriesAreDropped(t *testing.T) {
	l := Parse(",, mom@gmail.com ,")

	assert.True(t, l.Allowed("mom@gmail.com"))
	assert.False(t, l.Allowed("dad@gmail.com"))
	assert.False(t, l.Allowed(""))
}
