package cmd_test

import (
	"io"
	"log/slog"
	"testing"

	"storefront/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompositionRoot(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("should wire the in-memory backend", func(t *testing.T) {
		root, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{StoreBackend: cmd.StoreMemory}, logger)
		require.NoError(t, err)
		defer func() { require.NoError(t, root.Close()) }()

		assert.NotNil(t, root.CreateHTTPServer())

		manager := root.CreateJobManager()
		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})

	t.Run("should reject an unknown backend", func(t *testing.T) {
		_, err := cmd.NewCompositionRoot(t.Context(), cmd.Config{StoreBackend: "redis"}, logger)

		require.ErrorContains(t, err, "redis")
	})
}
