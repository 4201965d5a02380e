package verify

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/metamath-go/mmkernel/mmdb"
)

// Database verifies every $p statement in an mmdb.SegmentSet, fanning the
// work out across a bounded worker pool: each worker owns its own State
// so no buffer is shared across goroutines.
type Database struct {
	names    mmdb.NameResolver
	segments mmdb.SegmentSet
	scopes   mmdb.ScopeReader
	opts     options
}

// NewDatabase constructs a Database from the three external
// collaborators mmdb defines, applying opts in order.
func NewDatabase(names mmdb.NameResolver, segments mmdb.SegmentSet, scopes mmdb.ScopeReader, opts ...Option) *Database {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Database{names: names, segments: segments, scopes: scopes, opts: o}
}

// Verify checks every Provable statement across every segment, returning
// as soon as ctx is canceled (checked between statements, never mid-
// statement) or every statement has been checked.
func (d *Database) Verify(ctx context.Context) (Result, error) {
	var labels [][]byte
	var addrs []mmdb.StatementAddress
	d.segments.Segments(func(seg mmdb.SegmentId) bool {
		d.segments.StatementsIn(seg, func(addr mmdb.StatementAddress) bool {
			stmt := d.segments.Statement(addr)
			if stmt.Type() == mmdb.Provable {
				labels = append(labels, stmt.Label())
				addrs = append(addrs, addr)
			}
			return true
		})
		return true
	})

	results := make([]StatementResult, len(labels))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.workers)

	// A buffered channel of States acts as Go's substitute for the
	// thread-local buffers a native worker pool would give each OS
	// thread: exactly d.opts.workers States exist, and SetLimit above
	// guarantees no more than that many goroutines run at once, so every
	// acquire below succeeds without blocking.
	pool := make(chan *State, d.opts.workers)
	for i := 0; i < d.opts.workers; i++ {
		pool <- NewState(d.names, d.segments, d.scopes)
	}

	for i, label := range labels {
		i, label := i, label
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			st := <-pool
			defer func() { pool <- st }()

			diag, err := VerifyStatement(st, label)
			if err != nil {
				return err
			}
			results[i] = StatementResult{Label: label, Address: addrs[i], Diagnostic: diag}
			d.opts.logger.Debug("verified statement", "label", string(label), "ok", diag == nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	order := d.segments.Order()
	sort.Slice(results, func(i, j int) bool {
		return order.Compare(results[i].Address, results[j].Address) < 0
	})
	return Result{Statements: results}, nil
}
