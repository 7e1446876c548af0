//go:build integration

package repository

import (
	"context"
	"os"
	"testing"

	"github.com/ScriptVenture/checkout-service/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestMain sets up one shared MongoDB container for all integration
// tests in this package.
func TestMain(m *testing.M) {
	os.Exit(testutil.RunTestMainWithMongoDB(context.Background(), m))
}

// setupTestDBFromSharedContainer connects to the shared container with
// a unique database name for test isolation.
func setupTestDBFromSharedContainer(t *testing.T) *MongoDB {
	db, err := NewMongoDB(testutil.SharedContainerURI(), testutil.UniqueDBName(t.Name()))
	require.NoError(t, err)
	return db
}
