package merkle

import (
	"testing"

	"github.com/cartesi/merkle-tree/errs"
	"github.com/cartesi/merkle-tree/merkle/hashers"
)

func TestHashLeafBytesMatchesManualFold(t *testing.T) {
	h := newHasher()
	data := []byte("0123456789abcdef") // 16 bytes = 2^4
	got, err := HashLeafBytes(h, data, 3, 4)
	if err != nil {
		t.Fatalf("HashLeafBytes: %v", err)
	}

	w0 := hashers.HashData(h, data[:8])
	w1 := hashers.HashData(h, data[8:])
	want := hashers.ConcatHash(h, w0, w1)
	if got != want {
		t.Fatalf("HashLeafBytes = %x, want %x", got, want)
	}
}

func TestHashLeafBytesWrongLength(t *testing.T) {
	h := newHasher()
	_, err := HashLeafBytes(h, []byte("short"), 3, 4)
	if errs.Code(err) != errs.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", err)
	}
}

func TestHashLeafBytesWordGreaterThanLeaf(t *testing.T) {
	h := newHasher()
	_, err := HashLeafBytes(h, make([]byte, 8), 4, 3)
	if errs.Code(err) != errs.OutOfRange {
		t.Fatalf("expected OutOfRange, got %v", err)
	}
}
