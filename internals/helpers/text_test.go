package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func TestClean(t *testing.T) {
	decomposed := norm.NFD.String("한글")
	assert.NotEqual(t, "한글", decomposed)
	assert.Equal(t, "한글", Clean("  "+decomposed+"\n"))
	assert.Equal(t, "", Clean("   "))
}

func TestCleanPtr(t *testing.T) {
	assert.Nil(t, CleanPtr(nil))

	blank := "   "
	assert.Nil(t, CleanPtr(&blank))

	v := " 홍길동 "
	got := CleanPtr(&v)
	if assert.NotNil(t, got) {
		assert.Equal(t, "홍길동", *got)
	}
}

func TestCleanSet(t *testing.T) {
	assert.Nil(t, CleanSet(nil))

	blank := "   "
	got := CleanSet(&blank)
	if assert.NotNil(t, got, "a blank field that was sent stays set") {
		assert.Equal(t, "", *got)
	}

	v := " 홍길동 "
	got = CleanSet(&v)
	if assert.NotNil(t, got) {
		assert.Equal(t, "홍길동", *got)
	}
}

func TestRenderMarkdown(t *testing.T) {
	html, err := RenderMarkdown("# 공지\n첫 줄\n둘째 줄\n\n<script>alert(1)</script>")
	assert.NoError(t, err)
	assert.Contains(t, html, "<h1>공지</h1>")
	assert.Contains(t, html, "첫 줄<br>")
	assert.NotContains(t, html, "<script>")
}
