package repository

import "marketplace-api/internal/infra/sqlstore"

// conn prefers the caller's transaction and falls back to the repository's pool.
func conn(tx, db sqlstore.DBTX) sqlstore.DBTX {
	if tx != nil {
		return tx
	}
	return db
}
