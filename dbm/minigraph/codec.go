package minigraph

import (
	"fmt"

	"github.com/go-dbm/udbm/bound"
	"github.com/go-dbm/udbm/dbm"
	"github.com/go-dbm/udbm/internal/bititer"
	"github.com/go-dbm/udbm/internal/ioutil"
	"github.com/go-dbm/udbm/udbmctx"
)

const (
	flagPacked16 uint16 = 1 << 0
	flagHasTail  uint16 = 1 << 1
	knownFlags          = flagPacked16 | flagHasTail
)

// Encode serializes a closed, non-empty DBM into the minimal-graph wire
// format of spec.md §6, with no priced tail.
func Encode(d dbm.DBM) ([]byte, error) {
	return EncodeWithTail(d, nil)
}

// EncodeWithTail is Encode plus an opaque caller-supplied tail (used by
// package priced to append rates and offset cost); a non-empty tail sets
// the "includes cost tail" flag bit.
func EncodeWithTail(d dbm.DBM, tail []byte) ([]byte, error) {
	if d.IsEmpty() {
		return nil, ErrEmpty
	}
	dim := d.Dim()
	if dim > 0xFFFF {
		return nil, fmt.Errorf("minigraph.Encode: dimension %d exceeds 16 bits: %w", dim, ErrInvalidFormat)
	}
	mask, err := Compute(d)
	if err != nil {
		return nil, err
	}

	cells := mask.Indices()
	raws := make([]bound.Bound, len(cells))
	packed16 := true
	for i, cell := range cells {
		row, col := cell/dim, cell%dim
		v, _ := d.At(row, col)
		raws[i] = v
		if v < -32768 || v > 32767 {
			packed16 = false
		}
	}

	var flags uint16
	if packed16 {
		flags |= flagPacked16
	}
	if len(tail) > 0 {
		flags |= flagHasTail
	}

	header := (uint32(flags) << 16) | uint32(uint16(dim))
	buf := ioutil.PutWord(nil, header)

	bitmaskWords := (dim*dim + 31) / 32
	for w := 0; w < bitmaskWords; w++ {
		var word uint32
		for bit := 0; bit < 32; bit++ {
			cell := w*32 + bit
			if cell >= dim*dim {
				break
			}
			if mask.Test(cell) {
				word |= 1 << uint(bit)
			}
		}
		buf = ioutil.PutWord(buf, word)
	}

	for _, r := range raws {
		if packed16 {
			buf = ioutil.PutHalfWord(buf, uint16(int16(r)))
		} else {
			buf = ioutil.PutWord(buf, uint32(int32(r)))
		}
	}

	buf = append(buf, tail...)
	return buf, nil
}

// Decode is DecodeWithTail without a tail: a non-empty cost tail yields
// ErrInvalidFormat.
func Decode(ctx *udbmctx.Context, b []byte) (dbm.DBM, error) {
	d, tail, err := DecodeWithTail(ctx, b)
	if err != nil {
		return dbm.DBM{}, err
	}
	if len(tail) > 0 {
		return dbm.DBM{}, fmt.Errorf("minigraph.Decode: unexpected cost tail: %w", ErrInvalidFormat)
	}
	return d, nil
}

// DecodeWithTail parses the minimal-graph wire format, reconstructing the
// full matrix by initializing to LSInfinity, filling the stored cells,
// and running Close. Decoding is strict: any flag bit outside
// {packed-16, has-tail} causes rejection. The returned tail is the raw
// bytes following the bound payload when the has-tail flag is set (empty
// otherwise); package priced interprets its contents.
func DecodeWithTail(ctx *udbmctx.Context, b []byte) (dbm.DBM, []byte, error) {
	header, ok := ioutil.Word(b, 0)
	if !ok {
		return dbm.DBM{}, nil, fmt.Errorf("minigraph.Decode: truncated header: %w", ErrInvalidFormat)
	}
	dim := int(header & 0xFFFF)
	flags := uint16(header >> 16)
	if flags&^knownFlags != 0 {
		return dbm.DBM{}, nil, fmt.Errorf("minigraph.Decode: unknown flag bits %#x: %w", flags&^knownFlags, ErrInvalidFormat)
	}
	packed16 := flags&flagPacked16 != 0
	hasTail := flags&flagHasTail != 0

	off := 4
	mask := bititer.NewSet(dim * dim)
	bitmaskWords := (dim*dim + 31) / 32
	for w := 0; w < bitmaskWords; w++ {
		word, ok := ioutil.Word(b, off)
		if !ok {
			return dbm.DBM{}, nil, fmt.Errorf("minigraph.Decode: truncated bitmask: %w", ErrInvalidFormat)
		}
		off += 4
		for bit := 0; bit < 32; bit++ {
			cell := w*32 + bit
			if cell >= dim*dim {
				break
			}
			if word&(1<<uint(bit)) != 0 {
				mask.Set(cell)
			}
		}
	}

	data := make([]bound.Bound, dim*dim)
	for i := range data {
		data[i] = bound.LSInfinity
	}

	var decodeErr error
	mask.Each(func(cell int) {
		if decodeErr != nil {
			return
		}
		if packed16 {
			hw, ok := ioutil.HalfWord(b, off)
			off += 2
			if !ok {
				decodeErr = fmt.Errorf("minigraph.Decode: truncated bound payload: %w", ErrInvalidFormat)
				return
			}
			data[cell] = bound.Bound(int16(hw))
		} else {
			w, ok := ioutil.Word(b, off)
			off += 4
			if !ok {
				decodeErr = fmt.Errorf("minigraph.Decode: truncated bound payload: %w", ErrInvalidFormat)
				return
			}
			data[cell] = bound.Bound(int32(w))
		}
	})
	if decodeErr != nil {
		return dbm.DBM{}, nil, decodeErr
	}
	for i := 0; i < dim; i++ {
		data[i*dim+i] = bound.LEZero
	}

	d, err := dbm.FromMatrix(ctx, dim, data)
	if err != nil {
		return dbm.DBM{}, nil, fmt.Errorf("minigraph.Decode: %w", err)
	}
	if st := d.Close(); st == dbm.Empty {
		return dbm.DBM{}, nil, fmt.Errorf("minigraph.Decode: decoded matrix is empty: %w", ErrInvalidFormat)
	}

	var tail []byte
	if hasTail {
		tail = append([]byte(nil), b[off:]...)
	}
	return d, tail, nil
}
