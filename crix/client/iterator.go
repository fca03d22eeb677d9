package client

import (
	"context"

	"github.com/crix-exchange/go-crix/crix/types"
)

// pageFunc fetches one page of entities for one symbol.
type pageFunc[T any] func(ctx context.Context, symbol string) ([]T, error)

// Iter is a lazy cursor over a multi-symbol aggregation: one request per
// (symbol, phase), issued strictly in symbol order and, within a symbol,
// in phase order. Entities of each response are yielded in server order;
// no cross-symbol merging happens.
//
// Iteration is pull-based: a request goes out only when Next needs more
// entities, so abandoning the iterator early issues no further calls.
// When the symbol set comes from resolution rather than an explicit
// list, even the market fetch is deferred to the first Next. Iterators
// are single-use and not safe for concurrent use.
type Iter[T any] struct {
	ctx     context.Context
	resolve func(context.Context) ([]string, error) // nil when symbols are explicit
	phases  []pageFunc[T]
	symbols []string

	started bool
	done    bool
	si, pi  int
	page    []T
	idx     int
	cur     T
	err     error
}

// OrderIter iterates orders; see Iter.
type OrderIter = Iter[types.Order]

// TradeIter iterates trades; see Iter.
type TradeIter = Iter[types.Trade]

func newIter[T any](ctx context.Context, explicit []string, resolve func(context.Context) ([]string, error), phases ...pageFunc[T]) *Iter[T] {
	it := &Iter[T]{ctx: ctx, phases: phases}
	if len(explicit) > 0 {
		it.symbols = explicit
	} else {
		it.resolve = resolve
	}
	return it
}

// Next advances to the next entity, issuing network calls as needed.
// It returns false at the end of the sequence or on the first error;
// check Err afterwards.
func (it *Iter[T]) Next() bool {
	if it.done {
		return false
	}
	if !it.started {
		it.started = true
		if it.resolve != nil {
			symbols, err := it.resolve(it.ctx)
			if err != nil {
				return it.fail(err)
			}
			it.symbols = symbols
		}
	}
	for {
		if it.idx < len(it.page) {
			it.cur = it.page[it.idx]
			it.idx++
			return true
		}
		if it.si >= len(it.symbols) {
			it.done = true
			return false
		}
		page, err := it.phases[it.pi](it.ctx, it.symbols[it.si])
		if err != nil {
			return it.fail(err)
		}
		it.page, it.idx = page, 0
		it.pi++
		if it.pi >= len(it.phases) {
			it.pi = 0
			it.si++
		}
	}
}

// Value returns the entity produced by the last successful Next.
func (it *Iter[T]) Value() T {
	return it.cur
}

// Err returns the error that terminated iteration, if any.
func (it *Iter[T]) Err() error {
	return it.err
}

// Collect drains the iterator into a slice.
func (it *Iter[T]) Collect() ([]T, error) {
	var out []T
	for it.Next() {
		out = append(out, it.Value())
	}
	return out, it.Err()
}

func (it *Iter[T]) fail(err error) bool {
	it.err = err
	it.done = true
	return false
}
