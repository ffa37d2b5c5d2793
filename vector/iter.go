package vector

import "iter"

// Iter walks a vector from both ends. Once the two ends meet, Next and
// NextBack keep returning false.
type Iter[T any] struct {
	v           Vector[T]
	front, back int
}

// Iter returns an iterator over a read-only view of v.
func (v Vector[T]) Iter() *Iter[T] {
	return &Iter[T]{v: v.View(), back: v.Len()}
}

// Next returns the element at the front and advances.
func (it *Iter[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	x, _ := it.v.Get(it.front)
	it.front++
	return x, true
}

// NextBack returns the element at the back and retreats.
func (it *Iter[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	x, _ := it.v.Get(it.back)
	return x, true
}

// Len returns the number of elements not yet yielded.
func (it *Iter[T]) Len() int {
	return it.back - it.front
}

// IterMut is Iter yielding pointers to the elements of the vector.
type IterMut[T any] struct {
	v           *Vector[T]
	front, back int
}

// IterMut returns an iterator that hands out mutable element pointers.
func (v *Vector[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{v: v, back: v.Len()}
}

// Next returns a pointer to the element at the front and advances.
func (it *IterMut[T]) Next() (*T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	p := it.v.GetMut(it.front)
	it.front++
	return p, true
}

// NextBack returns a pointer to the element at the back and retreats.
func (it *IterMut[T]) NextBack() (*T, bool) {
	if it.front >= it.back {
		return nil, false
	}
	it.back--
	return it.v.GetMut(it.back), true
}

// Len returns the number of elements not yet yielded.
func (it *IterMut[T]) Len() int {
	return it.back - it.front
}

// All yields index/element pairs front to back.
func (v Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			x, _ := v.Get(i)
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward yields index/element pairs back to front.
func (v Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			x, _ := v.Get(i)
			if !yield(i, x) {
				return
			}
		}
	}
}
