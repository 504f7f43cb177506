package clicfg_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"neighbornet/pkg/clicfg"
)

type testConfig struct {
	Name    string        `flag:"name"`
	Verbose bool          `flag:"verbose"`
	TTL     time.Duration `flag:"ttl"`
	Ignored string
	hidden  string `flag:"name"`
}

func parse(t *testing.T, args ...string) (testConfig, error) {
	t.Helper()

	var (
		cfg      testConfig
		parseErr error
	)

	cmd := &cli.Command{
		Name: "test",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "name", Value: "default"},
			&cli.BoolFlag{Name: "verbose"},
			&cli.DurationFlag{Name: "ttl", Value: time.Minute},
		},
		Action: func(_ context.Context, c *cli.Command) error {
			parseErr = clicfg.ParseFlags(c, &cfg)
			return nil
		},
	}

	require.NoError(t, cmd.Run(t.Context(), append([]string{"test"}, args...)))

	return cfg, parseErr
}

func TestParseFlags(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := parse(t)
		require.NoError(t, err)

		assert.Equal(t, "default", cfg.Name)
		assert.False(t, cfg.Verbose)
		assert.Equal(t, time.Minute, cfg.TTL)
		assert.Empty(t, cfg.Ignored)
		assert.Empty(t, cfg.hidden)
	})

	t.Run("values", func(t *testing.T) {
		t.Parallel()

		cfg, err := parse(t, "--name", "neighbornet", "--verbose", "--ttl", "90s")
		require.NoError(t, err)

		assert.Equal(t, "neighbornet", cfg.Name)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, 90*time.Second, cfg.TTL)
	})

	t.Run("not a pointer", func(t *testing.T) {
		t.Parallel()

		err := clicfg.ParseFlags(&cli.Command{}, testConfig{})
		require.ErrorIs(t, err, clicfg.ErrCannotParseFlags)
	})
}
