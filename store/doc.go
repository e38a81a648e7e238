// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the append-only record store for enrollment data.

# Sessions

Handlers never share a connection. Each request acquires a Session, which
holds one *sql.Conn from the pool, and releases it with a deferred Close:

	sess, err := h.store.Session(r.Context())
	if err != nil {
		// 503
	}
	defer sess.Close()

# Operations

  - Insert: stores one record, returns it with its assigned ID
  - InsertBulk: stores records in order, returns the count stored
  - Query: exact-match filter on zip_code, state, county (ANDed), ordered by ID
  - Count: number of stored records

There is no update or delete. Records are immutable once stored.

# Bulk Inserts

InsertBulk is not transactional. The first failing record stops the batch
and the records before it stay stored. The returned count tells the caller
how far the batch got.

# Placeholders

Queries use $N placeholders, which both lib/pq and modernc.org/sqlite accept.
*/
package store
