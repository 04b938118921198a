package signalio

import (
	"errors"
	"strings"
	"testing"
)

func TestReadColumn(t *testing.T) {
	in := "t,value\n0,1.5\n1,2.5\n2,-3\n"

	x, err := ReadColumn(strings.NewReader(in), 1)
	if err != nil {
		t.Fatalf("ReadColumn err = %v", err)
	}

	want := []float64{1.5, 2.5, -3}
	if len(x) != len(want) {
		t.Fatalf("len = %d, want %d", len(x), len(want))
	}
	for i := range want {
		if x[i] != want[i] {
			t.Errorf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}

func TestReadColumnWithoutHeader(t *testing.T) {
	in := "1\n2\n3\n4\n"

	x, err := ReadColumn(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ReadColumn err = %v", err)
	}
	if len(x) != 4 {
		t.Fatalf("len = %d, want 4", len(x))
	}
}

func TestReadColumnErrors(t *testing.T) {
	if _, err := ReadColumn(strings.NewReader("1,2\n3,4\n"), 5); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("out-of-range column err = %v, want ErrColumnOutOfRange", err)
	}

	if _, err := ReadColumn(strings.NewReader("1\n2\nbroken\n"), 0); err == nil {
		t.Error("expected parse error for non-numeric body row")
	}

	if _, err := ReadColumn(strings.NewReader("header\n"), 0); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("header-only input err = %v, want ErrEmptyInput", err)
	}

	if _, err := ReadColumn(strings.NewReader("1\n"), -1); !errors.Is(err, ErrColumnOutOfRange) {
		t.Errorf("negative column err = %v, want ErrColumnOutOfRange", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	x := []float64{0.25, -1, 3.75, 1e-6}

	var sb strings.Builder
	if err := WriteColumn(&sb, x); err != nil {
		t.Fatalf("WriteColumn err = %v", err)
	}

	y, err := ReadColumn(strings.NewReader(sb.String()), 0)
	if err != nil {
		t.Fatalf("ReadColumn err = %v", err)
	}

	if len(y) != len(x) {
		t.Fatalf("len = %d, want %d", len(y), len(x))
	}
	for i := range x {
		if y[i] != x[i] {
			t.Errorf("y[%d] = %v, want %v", i, y[i], x[i])
		}
	}
}
