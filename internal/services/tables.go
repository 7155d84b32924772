// Package services orchestrates the fee tracker's use cases: it materializes
// tables through the read-through cache, applies the pure core rules, writes
// through the record store and invalidates what it touched.
package services

import (
	"context"
	"time"

	"feetrack/internal/cache"
	"feetrack/internal/core"
	"feetrack/internal/store"
)

// Tables is the shared cached view of the spreadsheet. Every service reads
// through it; every writer invalidates the table it changed.
type Tables struct {
	Members *cache.Table[core.Member]
	Fees    *cache.Table[core.FeeRecord]
}

func NewTables(rs store.RecordStore, ttl time.Duration) *Tables {
	return &Tables{
		Members: cache.NewTable(ttl, func(ctx context.Context) ([]core.Member, error) {
			return rs.LoadMembers(ctx)
		}),
		Fees: cache.NewTable(ttl, func(ctx context.Context) ([]core.FeeRecord, error) {
			return rs.LoadFees(ctx)
		}),
	}
}

// InvalidateAll drops both tables, for the explicit refresh action.
func (t *Tables) InvalidateAll() {
	t.Members.Invalidate()
	t.Fees.Invalidate()
}
