// Package repokit is the seam between service repos and the store
// repos see only these aliases, never a driver
package repokit

import "eventdir/internal/platform/store"

type (
	// Queryer is what a bound repo runs its SQL against, a pool or a tx
	Queryer = store.RowQuerier

	// TxRunner is a Queryer that can also open a transaction
	TxRunner = store.TxRunner

	Rows       = store.Rows
	Row        = store.Row
	CommandTag = store.CommandTag
)
