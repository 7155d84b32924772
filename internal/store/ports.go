// Package store defines the outbound port to the tabular record store and
// the schema the application expects from it. Concrete adapters live in the
// google and memory subpackages.
package store

import (
	"context"
	"errors"

	"feetrack/internal/core"
)

// RecordStore is everything the application needs from the external tabular
// store. Rows come back fully typed: adapters convert every cell to its
// semantic type exactly once, at this boundary.
type RecordStore interface {
	// EnsureSchema provisions missing tabs and reconciles headers. It never
	// destroys rows: pure column appends are applied, anything else returns
	// ErrSchemaDrift.
	EnsureSchema(ctx context.Context) (SchemaReport, error)

	LoadMembers(ctx context.Context) ([]core.Member, error)
	LoadFees(ctx context.Context) ([]core.FeeRecord, error)

	AppendMember(ctx context.Context, m core.Member) error
	// UpdateMember rewrites the member's whole row in place, addressed by
	// m.Row.
	UpdateMember(ctx context.Context, m core.Member) error

	AppendFee(ctx context.Context, rec core.FeeRecord) error
	// UpdateFeePayment rewrites only the paid-amount, remaining-due and
	// paid-on cells of the row addressed by rec.Row.
	UpdateFeePayment(ctx context.Context, rec core.FeeRecord) error
}

var (
	// ErrSchemaDrift means a tab exists but its header no longer matches the
	// expected one in a way an additive migration cannot fix. Deliberate
	// replacement for the old clear-and-rewrite behavior, which silently
	// dropped every row on mismatch.
	ErrSchemaDrift = errors.New("schema drift: tab header does not match expected columns")

	// ErrTabNotFound means a required tab is missing and the caller asked
	// for it without provisioning first.
	ErrTabNotFound = errors.New("tab not found")

	// ErrRowNotFound means an update addressed a row that is not in the tab.
	ErrRowNotFound = errors.New("row not found")
)
