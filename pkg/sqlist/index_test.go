package sqlist

import (
	"errors"
	"testing"
)

func Test_NormalizeIndex(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		index   int
		length  int
		want    int
		wantErr bool
	}{
		{name: "first", index: 0, length: 3, want: 0},
		{name: "last", index: 2, length: 3, want: 2},
		{name: "negative one is last", index: -1, length: 3, want: 2},
		{name: "negative length is first", index: -3, length: 3, want: 0},
		{name: "past end", index: 3, length: 3, wantErr: true},
		{name: "before start", index: -4, length: 3, wantErr: true},
		{name: "empty zero", index: 0, length: 0, wantErr: true},
		{name: "empty negative", index: -1, length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := normalizeIndex(tt.index, tt.length)

			if tt.wantErr {
				if !errors.Is(err, ErrIndexOutOfRange) {
					t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("err = %v", err)
			}

			if got != tt.want {
				t.Fatalf("offset = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_NormalizeSlice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		start      int
		stop       int
		length     int
		wantOffset int
		wantLimit  int
	}{
		{name: "full", start: 0, stop: End, length: 5, wantOffset: 0, wantLimit: 5},
		{name: "middle", start: 1, stop: 3, length: 5, wantOffset: 1, wantLimit: 2},
		{name: "negative start", start: -2, stop: End, length: 5, wantOffset: 3, wantLimit: 2},
		{name: "negative stop", start: 0, stop: -1, length: 5, wantOffset: 0, wantLimit: 4},
		{name: "start clamps low", start: -10, stop: 2, length: 5, wantOffset: 0, wantLimit: 2},
		{name: "stop clamps high", start: 3, stop: 100, length: 5, wantOffset: 3, wantLimit: 2},
		{name: "inverted is empty", start: 4, stop: 1, length: 5, wantOffset: 4, wantLimit: 0},
		{name: "empty sequence", start: 0, stop: End, length: 0, wantOffset: 0, wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			offset, limit := normalizeSlice(tt.start, tt.stop, tt.length)

			if offset != tt.wantOffset || limit != tt.wantLimit {
				t.Fatalf("normalizeSlice(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.start, tt.stop, tt.length, offset, limit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}
