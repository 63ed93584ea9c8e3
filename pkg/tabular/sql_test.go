package tabular

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// FromSQLRows itself needs a live driver and is covered by the service layer;
// the value normalization it relies on is testable in isolation.
func TestNormalizeSQLValue(t *testing.T) {
	now := time.Date(2021, 5, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "acme", normalizeSQLValue([]byte("acme")))
	assert.Equal(t, now, normalizeSQLValue(now))
	assert.Equal(t, "", normalizeSQLValue(nil))
	assert.Equal(t, int64(7), normalizeSQLValue(int64(7)))
	assert.Equal(t, 1.5, normalizeSQLValue(1.5))
}
