package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeUTF8(t *testing.T) {
	assert.Equal(t, "Feira do Jaçanã", sanitizeUTF8("Feira do Jaçanã"))
	assert.Equal(t, "Feira", sanitizeUTF8("Fe\xffira"))
	assert.Equal(t, "", sanitizeUTF8("\xc3"))
}
