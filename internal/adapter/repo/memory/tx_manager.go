package memory

import "context"

// TxManager satisfies the transaction port for the fixture backend. The
// maps have no rollback to offer; each repo call locks the store itself,
// and atomicity of a load-then-save pair comes from the optimistic version
// check in SaveWithVersion, the same discipline the Postgres backend gets
// from its conditional UPDATE.
type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
