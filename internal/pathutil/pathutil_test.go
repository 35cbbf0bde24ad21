package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvironmentOverrides(t *testing.T) {
	p := &Paths{
		configFileName: "config.yml",
		dbFileName:     "focusflow.db",
		logFileName:    "focusflow.log",
	}

	p.applyEnvironmentOverrides("  ")
	assert.Equal(t, "focusflow.db", p.dbFileName)

	p.applyEnvironmentOverrides("dev")
	assert.Equal(t, "config_dev.yml", p.configFileName)
	assert.Equal(t, "focusflow_dev.db", p.dbFileName)
	assert.Equal(t, "focusflow_dev.log", p.logFileName)
}

func TestStripExtension(t *testing.T) {
	assert.Equal(t, "rain", StripExtension("rain.mp3"))
	assert.Equal(t, "white.noise", StripExtension("white.noise.ogg"))
	assert.Equal(t, "bell", StripExtension("bell"))
}
