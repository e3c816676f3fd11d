package hashers

import (
	"bytes"
	"testing"

	"golang.org/x/crypto/sha3"
)

func TestKeccak256HasherMatchesSha3Package(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")

	h := NewKeccak256Hasher()
	got := HashData(h, data)

	want := sha3.NewLegacyKeccak256()
	want.Write(data)
	wantSum := want.Sum(nil)

	if !bytes.Equal(got[:], wantSum) {
		t.Fatalf("HashData = %x, want %x", got, wantSum)
	}
}

func TestKeccak256HasherRestartable(t *testing.T) {
	h := NewKeccak256Hasher()
	first := HashData(h, []byte("a"))
	second := HashData(h, []byte("bb"))
	third := HashData(h, []byte("a"))

	if first == second {
		t.Fatalf("distinct inputs produced the same hash")
	}
	if first != third {
		t.Fatalf("reusing the hasher after Reset produced a different hash for the same input: %x != %x", first, third)
	}
}

func TestConcatHashIsBeginAddAddEnd(t *testing.T) {
	h := NewKeccak256Hasher()
	left := HashData(h, []byte("left"))
	right := HashData(h, []byte("right"))

	got := ConcatHash(h, left, right)

	want := sha3.NewLegacyKeccak256()
	want.Write(left[:])
	want.Write(right[:])
	var wantHash Hash
	copy(wantHash[:], want.Sum(nil))

	if got != wantHash {
		t.Fatalf("ConcatHash = %x, want %x", got, wantHash)
	}
}
