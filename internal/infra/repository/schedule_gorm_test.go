package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every booking guard for a date must contend on one advisory-lock
// key. If the key ever became slot-granular again, a staff create and
// a portal create for the same slot would stop serializing and both
// could pass their checks.
func TestDateLockKeyIsDateGranular(t *testing.T) {
	key := dateLockKey("2030-06-03")

	assert.Equal(t, "schedules:2030-06-03", key)

	// same date, any time of day: same key
	assert.Equal(t, key, dateLockKey("2030-06-03"))

	// different dates never contend
	assert.NotEqual(t, key, dateLockKey("2030-06-04"))
}
