package sqlist_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/calvinalkan/sqlist/pkg/sqlist"
)

func Test_Set_Then_Get_Returns_New_Value(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, "a", "b", "c")

	for _, index := range []int{0, 1, 2, -1, -3} {
		err := list.Set(t.Context(), index, "new")
		if err != nil {
			t.Fatalf("set %d: %v", index, err)
		}

		got, err := list.Get(t.Context(), index)
		if err != nil {
			t.Fatalf("get %d: %v", index, err)
		}

		if got != "new" {
			t.Fatalf("get %d = %v, want %q", index, got, "new")
		}
	}
}

func Test_Set_Recomputes_Order_Key(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 1, 2, 3)

	// Overwriting the smallest element with the largest key moves it to
	// the logical end.
	err := list.Set(t.Context(), 0, 9)
	if err != nil {
		t.Fatalf("set: %v", err)
	}

	got := mustValues(t, list)

	want := []any{int64(2), int64(3), int64(9)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func Test_Set_Fails_When_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, "a")

	err := list.Set(t.Context(), 1, "b")
	if !errors.Is(err, sqlist.ErrIndexOutOfRange) {
		t.Fatalf("set = %v, want ErrIndexOutOfRange", err)
	}

	// A failed set leaves the sequence untouched.
	got := mustValues(t, list)

	want := []any{"a"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func Test_Delete_Removes_The_Ranked_Element(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 3, 1, 2)

	// Rank 1 in ascending key order is the value 2.
	err := list.Delete(t.Context(), 1)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	got := mustValues(t, list)

	want := []any{int64(1), int64(3)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func Test_Delete_Fails_When_Index_Out_Of_Range(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	err := list.Delete(t.Context(), 0)
	if !errors.Is(err, sqlist.ErrIndexOutOfRange) {
		t.Fatalf("delete = %v, want ErrIndexOutOfRange", err)
	}
}

func Test_Pop_Last_Returns_Greatest_Keyed_Element(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 2, 7, 5)

	value, err := list.Pop(t.Context(), -1)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}

	if value != int64(7) {
		t.Fatalf("pop = %v, want 7", value)
	}

	length, err := list.Len(t.Context())
	if err != nil {
		t.Fatalf("len: %v", err)
	}

	if length != 2 {
		t.Fatalf("len after pop = %d, want 2", length)
	}
}

func Test_Pop_Without_Key_Returns_Most_Recent(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, "a", "b")

	value, err := list.Pop(t.Context(), -1)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}

	if value != "b" {
		t.Fatalf("pop = %v, want %q", value, "b")
	}
}

func Test_Pop_By_Index_Removes_That_Rank(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 10, 30, 20)

	value, err := list.Pop(t.Context(), 1)
	if err != nil {
		t.Fatalf("pop 1: %v", err)
	}

	if value != int64(20) {
		t.Fatalf("pop 1 = %v, want 20", value)
	}

	got := mustValues(t, list)

	want := []any{int64(10), int64(30)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}

func Test_Pop_On_Empty_Fails(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	_, err := list.Pop(t.Context(), -1)
	if !errors.Is(err, sqlist.ErrIndexOutOfRange) {
		t.Fatalf("pop = %v, want ErrIndexOutOfRange", err)
	}
}
