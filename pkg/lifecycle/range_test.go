package lifecycle

import (
	"math/rand"
	"testing"
)

func TestParseRange(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    Range
		wantErr bool
	}{
		{
			name:  "plain pair",
			input: "5,10",
			want:  Range{Min: 5, Max: 10},
		},
		{
			name:  "equal bounds",
			input: "3,3",
			want:  Range{Min: 3, Max: 3},
		},
		{
			name:  "negative min",
			input: "-2,4",
			want:  Range{Min: -2, Max: 4},
		},
		{
			name:  "spaces around values",
			input: " 2 , 7 ",
			want:  Range{Min: 2, Max: 7},
		},
		{
			name:    "single value",
			input:   "7",
			wantErr: true,
		},
		{
			name:    "three values",
			input:   "1,2,3",
			wantErr: true,
		},
		{
			name:    "not numbers",
			input:   "a,b",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "min above max",
			input:   "5,3",
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("unexpected range\n got: %v\nwant: %v", got, tc.want)
			}
		})
	}
}

func TestRangeString(t *testing.T) {
	r := Range{Min: 5, Max: 10}
	if got := r.String(); got != "5,10" {
		t.Fatalf("unexpected string\n got: %q\nwant: %q", got, "5,10")
	}
}

func TestRangeDraw_StaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: 3, Max: 5}

	for i := 0; i < 1000; i++ {
		got := r.Draw(rng)
		if got < r.Min || got > r.Max {
			t.Fatalf("draw %d outside [%d, %d]", got, r.Min, r.Max)
		}
	}
}

func TestRangeDraw_DegenerateRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	r := Range{Min: 4, Max: 4}

	for i := 0; i < 10; i++ {
		if got := r.Draw(rng); got != 4 {
			t.Fatalf("expected 4, got %d", got)
		}
	}
}

func TestDefaultOffsets(t *testing.T) {
	offsets := DefaultOffsets()

	if offsets.DeletionYears != (Range{Min: 5, Max: 10}) {
		t.Fatalf("unexpected deletion range: %v", offsets.DeletionYears)
	}
	if offsets.ValidStartYears != (Range{Min: 3, Max: 5}) {
		t.Fatalf("unexpected valid start range: %v", offsets.ValidStartYears)
	}
	if offsets.ValidEndYears != (Range{Min: 2, Max: 7}) {
		t.Fatalf("unexpected valid end range: %v", offsets.ValidEndYears)
	}
}
