package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"go.trai.ch/stow/internal/app"
	_ "go.trai.ch/stow/internal/wiring"
)

// TestGraftGraph executes the full dependency graph. Node construction does
// no I/O, so a successful run proves every declared dependency resolves.
func TestGraftGraph(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
