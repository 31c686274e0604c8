package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat_Trim(t *testing.T) {
	assert.Equal(t, "hello", Format("  hello\t\n"))
	assert.Equal(t, "a b", Format(" a b "))
	assert.Equal(t, "", Format(" \t "))
}

func TestFormat_Normalize(t *testing.T) {
	decomposed := "e\u0301"
	assert.Equal(t, "\u00e9", Format(" "+decomposed+" "))
}
