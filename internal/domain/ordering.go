package domain

import (
	"cmp"
	"fmt"
	"slices"
)

// Direction is a single reorder step.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionUp, DirectionDown:
		return true
	}
	return false
}

// InsertOrdered inserts item at index at, clamped to the slice bounds.
func InsertOrdered[T any](items []T, at int, item T) []T {
	at = max(0, min(at, len(items)))
	return slices.Insert(items, at, item)
}

// RemoveOrdered deletes the element at i. Survivors keep their relative order.
func RemoveOrdered[T any](items []T, i int) []T {
	if i < 0 || i >= len(items) {
		return items
	}
	return slices.Delete(items, i, i+1)
}

// MoveUp swaps the element at i with its predecessor.
func MoveUp[T any](items []T, i int) bool {
	if i <= 0 || i >= len(items) {
		return false
	}
	items[i-1], items[i] = items[i], items[i-1]
	return true
}

// MoveDown swaps the element at i with its successor.
func MoveDown[T any](items []T, i int) bool {
	if i < 0 || i >= len(items)-1 {
		return false
	}
	items[i], items[i+1] = items[i+1], items[i]
	return true
}

// Renumber assigns positions 1..n in slice order.
func Renumber[T any](items []T, set func(*T, int)) {
	for i := range items {
		set(&items[i], i+1)
	}
}

// SortByPosition orders items by position, keeping insertion order on ties.
func SortByPosition[T any](items []T, pos func(T) int) {
	slices.SortStableFunc(items, func(a, b T) int {
		return cmp.Compare(pos(a), pos(b))
	})
}

// CheckID rejects ids below 1 and ids already present in the bucket.
func CheckID(id int64, existing []int64) error {
	if id < 1 {
		return NewValidationError("id", "must be >= 1")
	}
	if slices.Contains(existing, id) {
		return fmt.Errorf("id %d: %w", id, ErrAlreadyExists)
	}
	return nil
}
