// Package testutil provides testing utilities for database integration tests.
//
// Environment Variables:
//
//   - TEST_MONGODB_URI: MongoDB connection string for integration tests.
//     Tests that need a live database are skipped when it is unset.
//
// Database Setup:
//
//	db := testutil.SetupTestDatabase(t)
//
// Each call creates a uniquely named database with the application indexes in
// place; the database is dropped and the client disconnected when the test
// finishes.
package testutil

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/clinicops/admin-api/internal/database"
)

// setupTimeout bounds connection and index creation during test setup.
const setupTimeout = 10 * time.Second

// GetMongoTestURI returns the MongoDB test URI, or empty when integration
// tests should be skipped.
func GetMongoTestURI() string {
	return os.Getenv("TEST_MONGODB_URI")
}

// SetupTestDatabase connects to the test MongoDB instance and returns a
// uniquely named database with indexes ensured. The test is skipped when
// TEST_MONGODB_URI is unset.
func SetupTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := GetMongoTestURI()
	if uri == "" {
		t.Skip("TEST_MONGODB_URI not set, skipping integration test")
	}

	name := "testdb_" + randomSuffix(t)

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	client, err := database.Connect(ctx, database.Config{
		URI:            uri,
		Database:       name,
		ConnectTimeout: setupTimeout,
	})
	require.NoError(t, err)

	db := client.Database(name)
	require.NoError(t, database.EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), setupTimeout)
		defer cleanupCancel()

		if err := db.Drop(cleanupCtx); err != nil {
			t.Logf("failed to drop test database %s: %v", name, err)
		}
		if err := client.Disconnect(cleanupCtx); err != nil {
			t.Logf("failed to disconnect test client: %v", err)
		}
	})

	return db
}

func randomSuffix(t *testing.T) string {
	t.Helper()

	buf := make([]byte, 8)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return hex.EncodeToString(buf)
}
