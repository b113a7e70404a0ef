package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
	assert.Equal(t, "", NormalizeEmail("   "))
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("ana@example.com"))
	assert.True(t, IsEmail("a.b+c@sub.example.org"))

	assert.False(t, IsEmail("ana@example"))
	assert.False(t, IsEmail("ana example@x.com"))
	assert.False(t, IsEmail("@example.com"))
	assert.False(t, IsEmail(""))
}
