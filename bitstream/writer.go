package bitstream

import (
	"io"
)

// BitWriter writes bits to an io.Writer.
type BitWriter struct {
	stream    io.Writer
	pending   [1]byte
	alignment uint8
}

// NewWriter returns a new instance of BitWriter.
func NewWriter(w io.Writer) *BitWriter {
	bw := new(BitWriter)
	bw.stream = w
	bw.alignment = 0 // less-significant bit
	return bw
}

// WriteBits writes the numBits LS bits of val, LS bit first, regardless of the alignment.
func (bw *BitWriter) WriteBits(val uint64, numBits int) error {
	for ; numBits > 0; numBits-- {
		if err := bw.WriteBit(val&1 == 1); err != nil {
			return err
		}
		val >>= 1
	}

	return nil
}

// WriteBit writes a single bit to the stream, LSB first.
func (bw *BitWriter) WriteBit(bit Bit) error {
	if bit {
		bw.pending[0] |= 1 << bw.alignment
	}

	bw.alignment++

	if bw.alignment == 8 {
		if n, err := bw.stream.Write(bw.pending[:]); n != 1 || err != nil {
			if err == nil {
				err = io.ErrShortWrite
			}
			return err
		}
		bw.pending[0] = 0
		bw.alignment = 0
	}

	return nil
}

// Aligned reports whether the writer sits on a byte boundary.
func (bw *BitWriter) Aligned() bool {
	return bw.alignment == 0
}

// Flush flushes the currently pending byte to the stream by filling it with bit.
func (bw *BitWriter) Flush(bit Bit) error {
	for bw.alignment != 0 {
		if err := bw.WriteBit(bit); err != nil {
			return err
		}
	}

	return nil
}
