// Package bedtest builds synthetic packed genotype files for tests.
package bedtest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/limix/lim/bitstream"
	"github.com/limix/lim/shared"
)

var magic = [2]byte{0x6C, 0x1B}

// Encode packs raw 2-bit codes (row-major, len(codes) rows of equal length) into
// the on-disk layout: the 3-byte header followed by byte-aligned rows.
func Encode(mode byte, codes [][]byte) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	buf.Write(magic[:])
	buf.WriteByte(mode)

	w := bitstream.NewWriter(buf)
	for _, row := range codes {
		for _, code := range row {
			if err := w.WriteBits(uint64(code), shared.BitsPerCode); err != nil {
				return nil, err
			}
		}
		if err := w.Flush(bitstream.Zero); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Write encodes codes into a file under t.TempDir() and returns its path.
func Write(t testing.TB, mode byte, codes [][]byte) string {
	t.Helper()

	data, err := Encode(mode, codes)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "test.bed")
	require.NoError(t, os.WriteFile(path, data, shared.OwnerReadWrite))
	return path
}

// WriteFileset writes test.fam, test.bim and test.bed under t.TempDir() for a
// samples × variants matrix of raw codes and returns the basepath. Mode 1
// stores the matrix variant-major.
func WriteFileset(t testing.TB, mode byte, codes [][]byte) string {
	t.Helper()
	req := require.New(t)

	base := filepath.Join(t.TempDir(), "test")

	var fam, bim strings.Builder
	for s := range codes {
		fmt.Fprintf(&fam, "fam%d ind%d 0 0 1 -9\n", s, s)
	}
	for v := range codes[0] {
		fmt.Fprintf(&bim, "1 rs%d 0 %d A G\n", v, 100*(v+1))
	}
	req.NoError(os.WriteFile(base+".fam", []byte(fam.String()), shared.OwnerReadWrite))
	req.NoError(os.WriteFile(base+".bim", []byte(bim.String()), shared.OwnerReadWrite))

	stored := codes
	if mode == 1 {
		stored = Transpose(codes)
	}
	data, err := Encode(mode, stored)
	req.NoError(err)
	req.NoError(os.WriteFile(base+".bed", data, shared.OwnerReadWrite))

	return base
}

// Codes returns a rows×cols matrix of raw codes cycling through 0..3, seeded by
// position so that every row and every column differs from its neighbours.
func Codes(rows, cols int) [][]byte {
	codes := make([][]byte, rows)
	for r := range codes {
		codes[r] = make([]byte, cols)
		for c := range codes[r] {
			codes[r][c] = byte((r*7 + c*3 + r*c) % 4)
		}
	}
	return codes
}

// Transpose returns the cols×rows transposition of codes.
func Transpose(codes [][]byte) [][]byte {
	if len(codes) == 0 {
		return nil
	}
	out := make([][]byte, len(codes[0]))
	for c := range out {
		out[c] = make([]byte, len(codes))
		for r := range codes {
			out[c][r] = codes[r][c]
		}
	}
	return out
}
