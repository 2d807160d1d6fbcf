package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

// backendTestSuite runs the shared contract against any Backend.
func backendTestSuite(t *testing.T, newBackend func(t *testing.T) Backend) {
	t.Run("CreateBucketIdempotent", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)

		require.NoError(b.CreateBucket("schemes"))
		require.NoError(b.Put("schemes", "a", []byte("1")))
		require.NoError(b.CreateBucket("schemes"))

		got, err := b.Get("schemes", "a")
		require.NoError(err)
		require.Equal([]byte("1"), got)
	})

	t.Run("PutGetDelete", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)
		require.NoError(b.CreateBucket("schemes"))

		require.NoError(b.Put("schemes", "k", []byte("v1")))
		require.NoError(b.Put("schemes", "k", []byte("v2")))
		got, err := b.Get("schemes", "k")
		require.NoError(err)
		require.Equal([]byte("v2"), got)

		require.NoError(b.Delete("schemes", "k"))
		_, err = b.Get("schemes", "k")
		require.ErrorIs(err, ErrKeyNotFound)

		require.NoError(b.Delete("schemes", "k"))
	})

	t.Run("ValuesAreCopied", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)
		require.NoError(b.CreateBucket("schemes"))

		value := []byte("abc")
		require.NoError(b.Put("schemes", "k", value))
		value[0] = 'x'

		got, err := b.Get("schemes", "k")
		require.NoError(err)
		require.Equal([]byte("abc"), got)

		got[1] = 'y'
		again, err := b.Get("schemes", "k")
		require.NoError(err)
		require.Equal([]byte("abc"), again)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)

		require.ErrorIs(b.Put("nope", "k", nil), ErrBucketNotFound)
		_, err := b.Get("nope", "k")
		require.ErrorIs(err, ErrBucketNotFound)
		require.ErrorIs(b.Delete("nope", "k"), ErrBucketNotFound)
		require.ErrorIs(b.ForEach("nope", func(string, []byte) error { return nil }), ErrBucketNotFound)
	})

	t.Run("ForEachInKeyOrder", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)
		require.NoError(b.CreateBucket("schemes"))
		require.NoError(b.CreateBucket("meta"))

		for _, k := range []string{"c", "a", "b"} {
			require.NoError(b.Put("schemes", k, []byte(k+k)))
		}
		require.NoError(b.Put("meta", "version", []byte("v1.0.0")))

		var keys, values []string
		err := b.ForEach("schemes", func(k string, v []byte) error {
			keys = append(keys, k)
			values = append(values, string(v))
			return nil
		})
		require.NoError(err)
		require.Equal([]string{"a", "b", "c"}, keys)
		require.Equal([]string{"aa", "bb", "cc"}, values)
	})

	t.Run("ForEachStopsOnError", func(t *testing.T) {
		require := require.New(t)
		b := newBackend(t)
		require.NoError(b.CreateBucket("schemes"))
		require.NoError(b.Put("schemes", "a", []byte("x")))
		require.NoError(b.Put("schemes", "b", []byte("y")))

		stop := errors.New("stop")
		visited := 0
		err := b.ForEach("schemes", func(string, []byte) error {
			visited++
			return stop
		})
		require.ErrorIs(err, stop)
		require.Equal(1, visited)
	})
}
