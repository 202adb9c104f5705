package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meg4cyberc4t/bulgakov-cache-script/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "./out", c.OutDir)
	assert.Equal(t, "md", c.Mode)
	assert.Equal(t, "ithub", c.Domain)
	assert.Equal(t, 5, c.CallsLimit)
	assert.Equal(t, time.Second, c.Period)
	assert.Zero(t, c.SubjectID)
	assert.Empty(t, c.CredentialsFile)
}

func TestBaseURL(t *testing.T) {
	c := Config{Domain: "vvsu"}
	assert.Equal(t, "https://vvsu.bulgakov.app", c.BaseURL())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		c := &Config{}
		c.LoadDefaults()
		c.CredentialsFile = "creds.json"
		return c
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing credentials path", func(t *testing.T) {
		c := valid()
		c.CredentialsFile = ""
		assert.ErrorIs(t, c.Validate(), common.ErrConfig)
	})

	t.Run("unknown mode", func(t *testing.T) {
		c := valid()
		c.Mode = "yaml"
		assert.ErrorIs(t, c.Validate(), common.ErrConfig)
	})

	t.Run("unknown domain", func(t *testing.T) {
		c := valid()
		c.Domain = "moon"
		assert.ErrorIs(t, c.Validate(), common.ErrConfig)
	})

	t.Run("negative subject id", func(t *testing.T) {
		c := valid()
		c.SubjectID = -1
		assert.ErrorIs(t, c.Validate(), common.ErrConfig)
	})
}
