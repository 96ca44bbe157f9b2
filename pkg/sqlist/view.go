package sqlist

import "context"

// View is the read-oriented companion to [List]: the same sequence engine in
// a degenerate configuration that exposes only membership, length, and
// iteration. Mutation methods do not exist on the type.
type View struct {
	list *List
}

// OpenView opens a sequence for reading. The configuration is the same as
// [Open]; cfg.Key is accepted but only affects ordering of rows written by a
// mutable handle elsewhere.
func OpenView(ctx context.Context, cfg Config) (*View, error) {
	list, err := Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return &View{list: list}, nil
}

// Len returns the number of elements.
func (v *View) Len(ctx context.Context) (int, error) {
	return v.list.Len(ctx)
}

// Empty reports whether the sequence has no elements.
func (v *View) Empty(ctx context.Context) (bool, error) {
	return v.list.Empty(ctx)
}

// Contains reports whether any element equals value, on the encoded form.
func (v *View) Contains(ctx context.Context, value any) (bool, error) {
	return v.list.Contains(ctx, value)
}

// Iter opens a scan over all elements in logical order.
func (v *View) Iter(ctx context.Context) (*Iterator, error) {
	return v.list.Iter(ctx)
}

// Values returns every element in logical order.
func (v *View) Values(ctx context.Context) ([]any, error) {
	return v.list.Values(ctx)
}

// Close releases the database handle.
func (v *View) Close() error {
	if v == nil {
		return nil
	}

	return v.list.Close()
}
