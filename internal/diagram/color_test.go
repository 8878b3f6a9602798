package diagram

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor(t *testing.T) {
	c, ok := ParseColor("#76A993")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0x76, 0xa9, 0x93, 0xff}, c)

	c, ok = ParseColor("f00")
	assert.True(t, ok)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c)

	for _, bad := range []string{"", "#12", "#zzzzzz", "red"} {
		_, ok := ParseColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestNormalizeColor(t *testing.T) {
	assert.Equal(t, "#ffcc00", NormalizeColor("#FC0", "#000000"))
	assert.Equal(t, "#000000", NormalizeColor("nope", "#000000"))
}

func TestNextColorWraps(t *testing.T) {
	assert.Equal(t, Palette[1], NextColor(Palette[0]))
	assert.Equal(t, Palette[0], NextColor(Palette[len(Palette)-1]))
	assert.Equal(t, Palette[0], NextColor("#123456"))
}
