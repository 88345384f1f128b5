package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFieldKey(t *testing.T) {
	tests := []struct {
		column   string
		prefix   string
		property string
		ok       bool
	}{
		{"dc:subject", "dc", "subject", true},
		{"xmp:Rating", "xmp", "Rating", true},
		{"subject", "", "", false},
		{"dc:subject:extra", "", "", false},
		{":subject", "", "", false},
		{"dc:", "", "", false},
		{"", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			prefix, property, ok := SplitFieldKey(tt.column)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.prefix, prefix)
			assert.Equal(t, tt.property, property)
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"cat", "bird"}, SplitList("cat, bird"))
	assert.Equal(t, []string{"cat", "bird"}, SplitList("  cat ,bird  "))
	assert.Equal(t, []string{"cat", "", "bird"}, SplitList("cat,,bird"))
	assert.Equal(t, []string{"cat"}, SplitList("cat"))
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "cat, bird", JoinList([]string{"cat", "bird"}))
	assert.Equal(t, "", JoinList(nil))
}
