package ports

import "liferpg/internal/domain/hero"

type ActionMetrics interface {
	RecordSuccess(kind hero.ActionType)
	RecordRejected(kind hero.ActionType)
	RecordDropped()
	RecordFailure()
}
