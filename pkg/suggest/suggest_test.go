package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosest(t *testing.T) {
	c, ok := Closest("Plyer", []string{"Item", "Player", "Stats"})
	assert.True(t, ok)
	assert.Equal(t, "Player", c)
	_, ok = Closest("Weapon", []string{"Item", "Player"})
	assert.False(t, ok)
	_, ok = Closest("Item", []string{"Item"})
	assert.False(t, ok)
	_, ok = Closest("Item", nil)
	assert.False(t, ok)
}

func TestHint(t *testing.T) {
	assert.Equal(t, ` (did you mean "c++"?)`, Hint("c+", []string{"c++", "cpp"}))
	assert.Equal(t, "", Hint("rust", []string{"c++", "cpp"}))
}
