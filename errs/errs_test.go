package errs

import (
	"testing"

	"google.golang.org/grpc/codes"
)

func TestCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, Unknown},
		{"foreign", errPlain{"boom"}, Unknown},
		{"out of range", OutOfRangef("log2_size %d out of range", 9), OutOfRange},
		{"invalid argument", InvalidArgumentf("wrong sibling count"), InvalidArgument},
		{"internal", Internalf("produced invalid proof"), Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Code(tt.err); got != tt.want {
				t.Errorf("Code(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestGRPCStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"out of range", OutOfRangef("oops"), codes.OutOfRange},
		{"invalid argument", InvalidArgumentf("oops"), codes.InvalidArgument},
		{"internal", Internalf("oops"), codes.Internal},
		{"foreign", errPlain{"oops"}, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GRPCStatus(tt.err).Code(); got != tt.want {
				t.Errorf("GRPCStatus(%v).Code() = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestAssertInvariant(t *testing.T) {
	t.Run("true condition never panics", func(t *testing.T) {
		AssertInvariant(true, "unreachable")
	})

	t.Run("false condition panics when Debug is on", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatalf("expected a panic")
			}
			if Code(r.(error)) != Internal {
				t.Fatalf("panic value kind = %v, want Internal", Code(r.(error)))
			}
		}()
		AssertInvariant(false, "invariant violated: %d", 9)
	})

	t.Run("false condition is a no-op when Debug is off", func(t *testing.T) {
		Debug = false
		defer func() { Debug = true }()
		AssertInvariant(false, "should not panic")
	})
}

type errPlain struct{ msg string }

func (e errPlain) Error() string { return e.msg }
