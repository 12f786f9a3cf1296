package shared

import "os"

const (
	// HeaderSize is the number of bytes preceding the packed genotype codes:
	// two magic bytes followed by the mode byte.
	HeaderSize = 3

	// ModeByteOffset is the position of the mode (orientation) byte.
	ModeByteOffset = 2

	BitsPerCode  = 2
	CodesPerByte = 8 / BitsPerCode

	CodeMask = 1<<BitsPerCode - 1
)

const (
	OwnerReadWrite = os.FileMode(0o600)
	OwnerReadOnly  = os.FileMode(0o400)
)
