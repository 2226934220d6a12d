package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(SetLanguage(DefaultLocale))
	assert.Equal("pc $00ff: 3 byte(s)", From("pc $%04x: %d byte(s)", 0xff, 3))
	assert.Equal("line 1,234", From("line %d", 1234))

	assert.Error(SetLanguage("not a language tag!"))
}
