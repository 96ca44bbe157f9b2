// Package sqlist provides a list-like container whose elements are stored in
// a SQLite table. Elements behave like an in-memory ordered sequence (index,
// slice, append, pop, sort, membership) but are durably committed on every
// mutation and can exceed available memory.
//
// Logical order is defined by an optional key function: each appended value's
// key is encoded into a sortable BLOB column, and reads scan in ascending key
// order. Without a key function, insertion order stands in. [List.Sort]
// reorders elements in place using bounded two-row windows and permanently
// switches the sequence to physical-arrangement order.
//
// A List assumes exclusive ownership of its database handle by a single
// logical owner. It performs no internal locking; SQLite's journal provides
// crash durability, not multi-writer correctness.
package sqlist
