package assets

import (
	"testing"

	"github.com/automoto/lanestrike/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBundledArenaMatchesDefaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	defaults := config.Arena

	require.NoError(t, LoadArenaLayout())
	assert.Equal(t, defaults, config.Arena)
	assert.Equal(t, 650.0, config.Player.SpawnY)
	assert.Equal(t, 50.0, config.Spawn.SpawnY)
}
