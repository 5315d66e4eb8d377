package tensor

// MapVec returns a new vector with f applied to every element of x.
func MapVec[T Float](x []T, f func(T) T) []T {
	out := make([]T, len(x))
	for i, v := range x {
		out[i] = f(v)
	}
	return out
}

// AppendBias returns x extended with a trailing bias element of value 1.
// x is not modified.
func AppendBias[T Float](x []T) []T {
	out := make([]T, len(x)+1)
	copy(out, x)
	out[len(x)] = 1
	return out
}

// DropBias returns a copy of x without its trailing bias element.
func DropBias[T Float](x []T) []T {
	if len(x) == 0 {
		panic("DropBias: empty vector")
	}
	out := make([]T, len(x)-1)
	copy(out, x)
	return out
}

// SquaredDistance returns Σ (a[i] - b[i])².
func SquaredDistance[T Float](a, b []T) T {
	if len(a) != len(b) {
		panic("SquaredDistance: length mismatch")
	}
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// ArgMax returns the index of the largest element, or -1 for an empty vector.
// NaN elements are never selected.
func ArgMax[T Float](x []T) int {
	best := -1
	for i, v := range x {
		if v != v {
			continue
		}
		if best < 0 || v > x[best] {
			best = i
		}
	}
	return best
}
