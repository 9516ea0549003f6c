package cli

import (
	"testing"

	"github.com/alexanderramin/deskcoach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestValidatePositiveMinutes(t *testing.T) {
	assert.NoError(t, validatePositiveMinutes("45"))
	assert.NoError(t, validatePositiveMinutes(" 5 "))
	assert.Error(t, validatePositiveMinutes("0"))
	assert.Error(t, validatePositiveMinutes("-3"))
	assert.Error(t, validatePositiveMinutes("abc"))
	assert.Error(t, validatePositiveMinutes(""))
}

func TestAtoiMinutes(t *testing.T) {
	assert.Equal(t, 45*60, atoiMinutes("45"))
	assert.Equal(t, 5*60, atoiMinutes(" 5 "))
}

func TestFormatSettings_ListsEveryField(t *testing.T) {
	out := formatSettings(domain.DefaultSettings())

	assert.Contains(t, out, "Daily standing goal")
	assert.Contains(t, out, "2h00m")
	assert.Contains(t, out, "45m")
	assert.Contains(t, out, "900 mm")
	assert.Contains(t, out, "on")
}
