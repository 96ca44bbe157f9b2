package sqlist_test

import (
	"testing"

	"github.com/calvinalkan/sqlist/pkg/sqlist"
)

func Test_Equal_True_For_Same_Elements_In_Order(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{Key: byValue})

	mustAppend(t, list, 3, 1, 2)

	equal, err := list.Equal(t.Context(), []any{1, 2, 3})
	if err != nil {
		t.Fatalf("equal: %v", err)
	}

	if !equal {
		t.Fatal("equal = false, want true")
	}
}

func Test_Equal_False_On_Length_Mismatch(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, 1, 2)

	for _, other := range [][]any{{1}, {1, 2, 3}, {}} {
		equal, err := list.Equal(t.Context(), other)
		if err != nil {
			t.Fatalf("equal: %v", err)
		}

		if equal {
			t.Fatalf("equal against %d elements = true, want false", len(other))
		}
	}
}

func Test_Equal_False_On_First_Divergence(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, "a", "b", "c")

	equal, err := list.Equal(t.Context(), []any{"a", "x", "c"})
	if err != nil {
		t.Fatalf("equal: %v", err)
	}

	if equal {
		t.Fatal("equal = false expected on divergence")
	}
}

func Test_Equal_On_Empty_Sequences(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	equal, err := list.Equal(t.Context(), nil)
	if err != nil {
		t.Fatalf("equal: %v", err)
	}

	if !equal {
		t.Fatal("empty sequences should be equal")
	}
}

func Test_Equal_Uses_Encoded_Form(t *testing.T) {
	t.Parallel()

	list := openTestList(t, sqlist.Config{})

	mustAppend(t, list, 5)

	// int and int64 canonicalize to the same encoding.
	equal, err := list.Equal(t.Context(), []any{int64(5)})
	if err != nil {
		t.Fatalf("equal: %v", err)
	}

	if !equal {
		t.Fatal("equal = false, want true for identical encodings")
	}
}
