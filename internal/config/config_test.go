package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	// Save original env and restore after test
	origEnv := os.Environ()
	t.Cleanup(func() {
		os.Clearenv()
		for _, e := range origEnv {
			for i := 0; i < len(e); i++ {
				if e[i] == '=' {
					os.Setenv(e[:i], e[i+1:])
					break
				}
			}
		}
	})

	t.Run("defaults", func(t *testing.T) {
		os.Clearenv()
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "https://top.baidu.com/api/board?tab=realtime", cfg.BoardURL)
		assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "data/hotsearch.json", cfg.OutputPath)
		assert.Equal(t, "data/hotboard.db", cfg.DatabasePath)
		assert.Equal(t, "gpt-4.1-nano", cfg.OpenAIModel)
		assert.Empty(t, cfg.OpenAIAPIKey)
		assert.Empty(t, cfg.OpenAIBaseURL)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("custom values", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("HOTBOARD_URL", "http://localhost:8080/board")
		os.Setenv("HOTBOARD_TIMEOUT", "3s")
		os.Setenv("HOTBOARD_OUTPUT", "/tmp/out.json")
		os.Setenv("DATABASE_PATH", "/custom/path.db")
		os.Setenv("OPENAI_API_KEY", "sk-test")
		os.Setenv("OPENAI_MODEL", "gpt-4o")
		os.Setenv("OPENAI_BASE_URL", "http://localhost:4000/v1/")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080/board", cfg.BoardURL)
		assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
		assert.Equal(t, "/tmp/out.json", cfg.OutputPath)
		assert.Equal(t, "/custom/path.db", cfg.DatabasePath)
		assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
		assert.Equal(t, "http://localhost:4000/v1/", cfg.OpenAIBaseURL)
	})

	t.Run("invalid duration", func(t *testing.T) {
		os.Clearenv()
		os.Setenv("HOTBOARD_TIMEOUT", "invalid")

		_, err := Load()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HOTBOARD_TIMEOUT")
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{BoardURL: "https://example.com"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing board url", func(t *testing.T) {
		cfg := &Config{}
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HOTBOARD_URL")
	})
}

func TestConfig_ValidateForFetch(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{BoardURL: "https://example.com/board", FetchTimeout: time.Second}
		assert.NoError(t, cfg.ValidateForFetch())
	})

	t.Run("bad scheme", func(t *testing.T) {
		cfg := &Config{BoardURL: "ftp://example.com", FetchTimeout: time.Second}
		err := cfg.ValidateForFetch()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HOTBOARD_URL")
	})

	t.Run("unparseable url", func(t *testing.T) {
		cfg := &Config{BoardURL: "http://[::1]:namedport", FetchTimeout: time.Second}
		assert.Error(t, cfg.ValidateForFetch())
	})

	t.Run("zero timeout", func(t *testing.T) {
		cfg := &Config{BoardURL: "https://example.com"}
		err := cfg.ValidateForFetch()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "HOTBOARD_TIMEOUT")
	})
}

func TestConfig_ValidateForArchive(t *testing.T) {
	assert.NoError(t, (&Config{DatabasePath: "test.db"}).ValidateForArchive())

	err := (&Config{}).ValidateForArchive()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_PATH")
}

func TestConfig_ValidateForChat(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &Config{OpenAIAPIKey: "sk-test", OpenAIModel: "gpt-4.1-nano"}
		assert.NoError(t, cfg.ValidateForChat())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := &Config{OpenAIModel: "gpt-4.1-nano"}
		err := cfg.ValidateForChat()
		assert.ErrorIs(t, err, ErrMissingCredential)
		assert.Contains(t, err.Error(), "OPENAI_API_KEY")
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &Config{OpenAIAPIKey: "sk-test"}
		err := cfg.ValidateForChat()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "OPENAI_MODEL")
	})
}
