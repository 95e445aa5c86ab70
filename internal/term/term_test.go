package term

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/batchrename/internal/config"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.Equal(t, "\033[1;91m", Red)
	assert.Equal(t, "\033[1;95m", Magenta)
	assert.Equal(t, "\033[0m", NC)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Red+Green+Yellow+Blue+Cyan+Magenta+NC)
}

func TestConfigure_AutoRespectsNoColor(t *testing.T) {
	t.Cleanup(func() { Configure(config.ColorNever) })
	t.Setenv("NO_COLOR", "1")

	Configure(config.ColorAuto)
	assert.False(t, Enabled())
}

func TestIsTerminal_Nil(t *testing.T) {
	assert.False(t, IsTerminal(nil))
}
