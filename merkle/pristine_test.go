package merkle

import (
	"testing"

	"github.com/cartesi/merkle-tree/errs"
	"github.com/cartesi/merkle-tree/merkle/hashers"
)

func newHasher() hashers.Hasher {
	return hashers.NewKeccak256Hasher()
}

func TestPristineTreeConstructionErrors(t *testing.T) {
	tests := []struct {
		name         string
		log2Root     int
		log2Word     int
		wantErrKind  errs.Kind
		wantErrKindF bool
	}{
		{"negative root", -1, 0, errs.OutOfRange, true},
		{"negative word", 3, -1, errs.OutOfRange, true},
		{"word greater than root", 2, 3, errs.OutOfRange, true},
		{"word equals root", 3, 3, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPristineTree(tt.log2Root, tt.log2Word, newHasher())
			if tt.wantErrKindF {
				if errs.Code(err) != tt.wantErrKind {
					t.Fatalf("got err %v, want kind %v", err, tt.wantErrKind)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPristineTreeHashAtWordSize(t *testing.T) {
	h := newHasher()
	pt, err := NewPristineTree(3, 3, h)
	if err != nil {
		t.Fatalf("NewPristineTree: %v", err)
	}
	got, err := pt.GetHash(3)
	if err != nil {
		t.Fatalf("GetHash(3): %v", err)
	}
	want := hashers.HashData(h, make([]byte, 8))
	if got != want {
		t.Fatalf("GetHash(3) = %x, want %x", got, want)
	}
	if _, err := pt.GetHash(0); errs.Code(err) != errs.OutOfRange {
		t.Fatalf("GetHash(0) should be out of range, got %v", err)
	}
	if _, err := pt.GetHash(4); errs.Code(err) != errs.OutOfRange {
		t.Fatalf("GetHash(4) should be out of range, got %v", err)
	}
}

func TestPristineTreeHigherHeights(t *testing.T) {
	h := newHasher()
	pt, err := NewPristineTree(5, 3, h)
	if err != nil {
		t.Fatalf("NewPristineTree: %v", err)
	}
	pw := hashers.HashData(h, make([]byte, 8))
	p4 := hashers.ConcatHash(h, pw, pw)
	p5 := hashers.ConcatHash(h, p4, p4)

	got5, err := pt.GetHash(5)
	if err != nil {
		t.Fatalf("GetHash(5): %v", err)
	}
	if got5 != p5 {
		t.Fatalf("GetHash(5) = %x, want %x", got5, p5)
	}
}

func TestPristineIdempotence(t *testing.T) {
	h := newHasher()
	pt, err := NewPristineTree(10, 3, h)
	if err != nil {
		t.Fatalf("NewPristineTree: %v", err)
	}
	for height := 3; height < 10; height++ {
		cur, err := pt.GetHash(height)
		if err != nil {
			t.Fatalf("GetHash(%d): %v", height, err)
		}
		next, err := pt.GetHash(height + 1)
		if err != nil {
			t.Fatalf("GetHash(%d): %v", height+1, err)
		}
		if want := hashers.ConcatHash(h, cur, cur); want != next {
			t.Fatalf("pristine(%d) = %x, want concat(pristine(%d), pristine(%d)) = %x", height+1, next, height, height, want)
		}
	}
}
