// Package bagfill enumerates the piece combinations that exactly fill a bag.
//
// The search is a depth-first exact cover over a depth-tagged grid. Instead of
// recursing, pending candidates live on an explicit stack and each placement
// stamps its depth into the cells it covers, so abandoning a branch is a single
// sweep that clears every cell at or below the abandoned depth.
package bagfill

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/SUPERCILEX/grocery-bagger-9000-sub000/pkg/mino"
)

// MaxArea is the largest bag Generate accepts.
const MaxArea = 64

var ErrInvalidSize = errors.New("invalid bag size")

type Option func(*engine)

func WithLogger(log logrus.FieldLogger) Option {
	return func(e *engine) {
		e.log = log
	}
}

// WithPieces replaces the catalogue searched. Used to restrict a bag to a
// subset of pieces.
func WithPieces(pieces []mino.OrientedPiece) Option {
	return func(e *engine) {
		e.pieces = pieces
	}
}

type candidate struct {
	piece    int
	depth    int
	row, col int
}

type placement struct {
	piece  mino.OrientedPiece
	blocks int
}

type engine struct {
	log    logrus.FieldLogger
	pieces []mino.OrientedPiece

	bag      *Bag
	stack    []placement
	frontier []candidate
	results  *ResultSet
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newEngine(width, height int, opts ...Option) *engine {
	e := &engine{
		log:     discardLogger(),
		pieces:  mino.AllOrientedPieces(),
		bag:     NewBag(width, height),
		results: NewResultSet(width, height),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.log = e.log.WithFields(logrus.Fields{"width": width, "height": height})
	return e
}

// Generate returns every distinct multiset of canonical pieces that exactly
// tiles a width x height bag.
func Generate(width, height int, opts ...Option) (*ResultSet, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width*height > MaxArea {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d cells", ErrInvalidSize, width, height, MaxArea)
	}

	e := newEngine(width, height, opts...)
	e.run()

	e.log.WithFields(logrus.Fields{
		"combinations": e.results.Len(),
		"candidates":   e.results.Stats.Candidates,
		"placements":   e.results.Stats.Placements,
		"tilings":      e.results.Stats.Tilings,
	}).Debug("search exhausted")

	return e.results, nil
}

func (e *engine) run() {
	area := e.bag.Width() * e.bag.Height()

	e.extend(0)
	for len(e.frontier) > 0 {
		c := e.frontier[len(e.frontier)-1]
		e.frontier = e.frontier[:len(e.frontier)-1]
		e.results.Stats.Candidates++

		e.backtrack(c.depth)

		piece := e.pieces[c.piece]
		if !e.bag.Place(piece, c.row, c.col, c.depth+1) {
			continue
		}

		blocks := piece.Blocks()
		if c.depth > 0 {
			blocks += e.stack[c.depth-1].blocks
		}
		e.stack = append(e.stack, placement{piece: piece, blocks: blocks})
		e.results.Stats.Placements++

		if blocks == area {
			e.reduce()
			continue
		}
		if blocks > area {
			e.log.WithFields(logrus.Fields{"depth": c.depth + 1, "blocks": blocks}).Panic("placement stack covers more cells than the bag")
		}

		e.extend(c.depth + 1)
	}
}

// extend queues every piece at every cell for the given depth. Anchors are
// not limited to cells next to earlier pieces.
func (e *engine) extend(depth int) {
	for i := range e.pieces {
		for row := 0; row < e.bag.Height(); row++ {
			for col := 0; col < e.bag.Width(); col++ {
				e.frontier = append(e.frontier, candidate{piece: i, depth: depth, row: row, col: col})
			}
		}
	}
}

// backtrack abandons every placement deeper than depth. Cleanup is deferred
// until a shallower candidate is actually popped.
func (e *engine) backtrack(depth int) {
	if depth > len(e.stack) {
		e.log.WithFields(logrus.Fields{"depth": depth, "stack": len(e.stack)}).Panic("candidate is deeper than the placement stack")
	}
	if len(e.stack) == depth {
		return
	}

	e.bag.EraseFrom(depth + 1)
	e.stack = e.stack[:depth]
}

func (e *engine) reduce() {
	e.results.Stats.Tilings++

	c := make(Combination, len(e.stack))
	for i, p := range e.stack {
		c[i] = mino.CanonicalOf(p.piece)
	}
	if e.results.Has(c) {
		return
	}

	e.results.insert(c, &Tiling{
		Width:  e.bag.Width(),
		Height: e.bag.Height(),
		Cells:  e.bag.Snapshot(),
		Pieces: c,
	})
	e.log.WithField("combination", c.Sorted()).Debug("new combination")
}
