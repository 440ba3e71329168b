package util

import (
	"strings"
	"testing"

	"agurk-server/internal/rng"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	orig := random
	defer func() { random = orig }()

	random = rng.NewSeeded(0)
	name := GetRandomName("Alice")
	again := GetRandomName("Alice")

	random = rng.NewSeeded(0)
	assert.Equal(t, name, GetRandomName("Alice"))
	assert.Equal(t, again, GetRandomName("Alice"))

	parts := strings.SplitN(name, " ", 2)
	assert.Equal(t, "Alice", parts[0])
	assert.Len(t, []rune(parts[1]), 2)
}

func TestRandomEmoji(t *testing.T) {
	for i := 0; i < 100; i++ {
		assert.Contains(t, emojis, RandomEmoji())
	}
}
