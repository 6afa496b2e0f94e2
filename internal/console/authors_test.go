package console

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "exactly10!", clip("exactly10!", 10))
	assert.Equal(t, "longer th…", clip("longer than ten", 10))
}

func TestClip_MultiByteRunesStayValid(t *testing.T) {
	s := "日本語のとても長い説明テキスト"
	clipped := clip(s, 5)

	assert.True(t, utf8.ValidString(clipped), "clipping must never split a rune")
	assert.Equal(t, "日本語の…", clipped)
	assert.Equal(t, 5, utf8.RuneCountInString(clipped))
}
