package office_test

import (
	"testing"

	"postal/internal/core/domain/model/kernel"
	"postal/internal/core/domain/model/office"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterIsEmpty(t *testing.T) {
	assert.True(t, office.Filter{}.IsEmpty())
	assert.False(t, office.Filter{City: "Springfield"}.IsEmpty())
}

func TestFilterMatches(t *testing.T) {
	o, err := office.NewOffice(kernel.NewUUID(), "Central Office", "Springfield", "12345", "1 Main St")
	require.NoError(t, err)

	t.Run("empty filter should match every office", func(t *testing.T) {
		assert.True(t, office.Filter{}.Matches(o))
	})

	t.Run("should never match nil office", func(t *testing.T) {
		assert.False(t, office.Filter{}.Matches(nil))
	})

	t.Run("should match substrings case-insensitively", func(t *testing.T) {
		assert.True(t, office.Filter{Name: "central"}.Matches(o))
		assert.True(t, office.Filter{City: "SPRING"}.Matches(o))
		assert.True(t, office.Filter{Postcode: "234"}.Matches(o))
		assert.True(t, office.Filter{Street: "main st"}.Matches(o))
	})

	t.Run("should combine present constraints with and", func(t *testing.T) {
		assert.True(t, office.Filter{Name: "office", City: "field"}.Matches(o))
		assert.False(t, office.Filter{Name: "office", City: "Shelbyville"}.Matches(o))
	})

	t.Run("blank constraint should not narrow the result", func(t *testing.T) {
		assert.True(t, office.Filter{Name: "  "}.Matches(o))
	})
}
