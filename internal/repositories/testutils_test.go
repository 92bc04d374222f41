package repositories_test

import (
	"context"
	"io"
	"testing"

	"github.com/27achang/2024WinterFinal/internal/sqlite"
	"github.com/27achang/2024WinterFinal/internal/testhelpers"
)

// newTestDB creates a new in-memory database for testing purposes.
func newTestDB(t *testing.T) *sqlite.Database {
	t.Helper()
	ctx := context.Background()
	db, err := sqlite.NewDatabase(ctx, ":memory:", testhelpers.NewLogger(io.Discard))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err = db.Close(ctx); err != nil {
			t.Fatal(err)
		}
	})
	return db
}
