// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/enrollment-stats/db"
	"github.com/danielhkuo/enrollment-stats/models"
	"github.com/danielhkuo/enrollment-stats/store"
	"github.com/danielhkuo/enrollment-stats/testutil"
)

func TestPostgres_StoreRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	conn, url := testutil.SetupPostgresDB(t)
	st := store.New(conn)

	sess, err := st.Session(ctx)
	require.NoError(t, err)
	defer sess.Close()

	t.Run("insert and query", func(t *testing.T) {
		n, err := sess.InsertBulk(ctx, []models.Enrollment{
			record(10001, "NY", "New York", 2023),
			record(90001, "CA", "Los Angeles", 2024),
		})
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		got, err := sess.Query(ctx, store.Filter{State: strPtr("CA")})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 90001, got[0].ZipCode)
		assert.Equal(t, 30.0, got[0].MalePercentage)
		assert.False(t, got[0].CreatedAt.IsZero())
	})

	t.Run("check constraint rejects negative counts", func(t *testing.T) {
		bad := record(1, "NY", "Kings", 2024)
		bad.HealthEnrollment = -1
		_, err := sess.Insert(ctx, bad)
		assert.Error(t, err)
	})

	t.Run("migrations are idempotent", func(t *testing.T) {
		version, err := db.Migrate(db.TypePostgres, url)
		require.NoError(t, err)
		assert.Equal(t, uint(1), version)
	})
}
