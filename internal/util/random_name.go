package util

import (
	"fmt"

	"agurk-server/internal/rng"
)

var emojis = []string{
	"🐶", "🐱", "🐭", "🐹", "🐰", "🦊", "🐻", "🐼", "🐨", "🐯", "🦁", "🐮", "🐷", "🐸", "🐵", "🐔",
	"🐧", "🐦", "🐤", "🦆", "🦅", "🦉", "🦇", "🐺", "🐗", "🐴", "🦄", "🐝", "🐛", "🦋", "🐌", "🐞",
	"🐢", "🐍", "🦎", "🐙", "🦑", "🦀", "🐡", "🐠", "🐟", "🐬", "🐳", "🦈", "🐊", "🐅", "🐆", "🦓",
	"🦍", "🐘", "🦏", "🐪", "🦒", "🐃", "🐂", "🐄", "🐎", "🐖", "🐏", "🐑", "🐐", "🦌", "🐕", "🐈",
	"🌵", "🌲", "🍀", "🍁", "🍄", "🌻", "🌙", "⭐", "🔥", "🌈", "🍎", "🍋", "🍉", "🍇", "🍓", "🥒",
}

var random rng.Generator = rng.Crypto{}

// RandomEmoji returns a random emoji
func RandomEmoji() string {
	return emojis[random.Intn(len(emojis))]
}

// GetRandomName appends two random emojis to the name, so equal names can be told apart
func GetRandomName(name string) string {
	return fmt.Sprintf("%s %s%s", name, RandomEmoji(), RandomEmoji())
}
