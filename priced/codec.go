package priced

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-dbm/udbm/dbm/minigraph"
	"github.com/go-dbm/udbm/internal/ioutil"
	"github.com/go-dbm/udbm/udbmctx"
)

// ErrNonIntegerCost indicates Encode was asked to serialize a rate or
// offset cost with a denominator other than 1: the wire tail packs each
// value as a single 32-bit word (spec.md §6), so only integer-valued
// rates and offsets round-trip through it; an integer value outside the
// int32 range is rejected with this error too. Fractional costs are an
// in-memory-only capability; see DESIGN.md.
var ErrNonIntegerCost = errors.New("priced: non-integer cost does not fit the wire tail")

// Encode serializes p as a minimal-graph-encoded zone plus a cost tail:
// one int32 rate per clock followed by the int32 offset cost, matching
// spec.md §6's "optional priced tail" layout. Every rate and the offset
// must be integer-valued (denominator 1).
func Encode(p PricedDBM) ([]byte, error) {
	tail := make([]byte, 0, 4*(p.Dim()+1))
	for i := 0; i < p.Dim(); i++ {
		n, err := ratToInt32(&p.Rates[i])
		if err != nil {
			return nil, fmt.Errorf("priced.Encode: rate %d: %w", i, err)
		}
		tail = ioutil.PutWord(tail, uint32(n))
	}
	n, err := ratToInt32(&p.Offset)
	if err != nil {
		return nil, fmt.Errorf("priced.Encode: offset: %w", err)
	}
	tail = ioutil.PutWord(tail, uint32(n))

	return minigraph.EncodeWithTail(p.Zone, tail)
}

// Decode parses bytes produced by Encode back into a PricedDBM.
func Decode(ctx *udbmctx.Context, b []byte) (PricedDBM, error) {
	zone, tail, err := minigraph.DecodeWithTail(ctx, b)
	if err != nil {
		return PricedDBM{}, err
	}
	dim := zone.Dim()
	if len(tail) != 4*(dim+1) {
		return PricedDBM{}, fmt.Errorf("priced.Decode: cost tail length %d != %d: %w", len(tail), 4*(dim+1), minigraph.ErrInvalidFormat)
	}

	rates := make([]big.Rat, dim)
	for i := 0; i < dim; i++ {
		w, _ := ioutil.Word(tail, 4*i)
		rates[i] = *big.NewRat(int64(int32(w)), 1)
	}
	w, _ := ioutil.Word(tail, 4*dim)
	offset := *big.NewRat(int64(int32(w)), 1)

	return PricedDBM{Zone: zone, Rates: rates, Offset: offset}, nil
}

func ratToInt32(r *big.Rat) (int32, error) {
	if !r.IsInt() {
		return 0, ErrNonIntegerCost
	}
	n := r.Num().Int64()
	if n < -(1<<31) || n >= (1<<31) {
		return 0, fmt.Errorf("priced: value %d overflows int32: %w", n, ErrNonIntegerCost)
	}
	return int32(n), nil
}
