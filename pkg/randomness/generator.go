package randomness

import "fmt"

// Generator produces exactly count strings per call.
//
// A Generator is a value: it holds no identity beyond the random source it
// was built with, and every call consumes entropy from that source only.
type Generator func(count int) ([]string, error)

// Const returns a Generator that repeats value count times.
func Const(value string) Generator {
	return func(count int) ([]string, error) {
		if count < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
		}
		out := make([]string, count)
		for i := range out {
			out[i] = value
		}
		return out, nil
	}
}

// FromFunc returns a Generator that calls next once per requested value.
func FromFunc(next func() (string, error)) Generator {
	return func(count int) ([]string, error) {
		if count < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
		}
		out := make([]string, count)
		for i := range out {
			v, err := next()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

// Map returns a Generator that applies fn to every value of g's batch.
func Map(g Generator, fn func(string) string) Generator {
	return func(count int) ([]string, error) {
		values, err := Batch(g, count)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			values[i] = fn(v)
		}
		return values, nil
	}
}

// Batch calls g and checks that it honoured the count contract.
func Batch(g Generator, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	values, err := g(count)
	if err != nil {
		return nil, err
	}
	if len(values) != count {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrShortBatch, len(values), count)
	}
	return values, nil
}
