package sqlist_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/sqlist/pkg/sqlist"
)

func Test_Iter_Yields_Elements_In_Logical_Order(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 3, 1, 2)

	it, err := list.Iter(t.Context())
	if err != nil {
		t.Fatalf("iter: %v", err)
	}

	defer func() { _ = it.Close() }()

	var got []any

	for it.Next() {
		got = append(got, it.Value())
	}

	if it.Err() != nil {
		t.Fatalf("iter err: %v", it.Err())
	}

	want := []any{int64(1), int64(2), int64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func Test_Iter_On_Empty_Sequence_Yields_Nothing(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	it, err := list.Iter(t.Context())
	if err != nil {
		t.Fatalf("iter: %v", err)
	}

	defer func() { _ = it.Close() }()

	if it.Next() {
		t.Fatal("next on empty sequence = true, want false")
	}

	if it.Err() != nil {
		t.Fatalf("iter err: %v", it.Err())
	}
}

func Test_Iter_Opens_A_Fresh_Scan_Per_Call(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, "a")

	first, err := list.Iter(t.Context())
	if err != nil {
		t.Fatalf("iter: %v", err)
	}

	drainIter(t, first)

	mustAppend(t, list, "b")

	second, err := list.Iter(t.Context())
	if err != nil {
		t.Fatalf("iter: %v", err)
	}

	got := drainIter(t, second)

	want := []any{"a", "b"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func drainIter(t *testing.T, it *sqlist.Iterator) []any {
	t.Helper()

	defer func() { _ = it.Close() }()

	var values []any

	for it.Next() {
		values = append(values, it.Value())
	}

	if it.Err() != nil {
		t.Fatalf("iter err: %v", it.Err())
	}

	return values
}
