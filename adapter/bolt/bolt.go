// Package bolt exposes the content of bbolt buckets as spliterkit.Spliterator.
package bolt

import (
	"bytes"
	"fmt"

	"go.etcd.io/bbolt"
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/streamkit/pkg/spliterkit"
)

const ErrBucketNotFound errorkit.Error = "bolt bucket not found"

// KV is a key-value pair of a bucket.
// Nested buckets appear with a nil Value.
type KV struct {
	Key   []byte
	Value []byte
}

// Keys returns a Spliterator over the key-value pairs of the bucket in key order.
// The pairs are copied, so they remain valid after the transaction,
// but the Spliterator itself must only be used while the transaction is open.
func Keys(tx *bbolt.Tx, bucket []byte) (spliterkit.Spliterator[KV], error) {
	b := tx.Bucket(bucket)
	if b == nil {
		return nil, fmt.Errorf("%w: %s", ErrBucketNotFound, bucket)
	}
	var (
		c       = b.Cursor()
		started bool
	)
	next := func() (KV, bool) {
		var k, v []byte
		if started {
			k, v = c.Next()
		} else {
			k, v = c.First()
			started = true
		}
		if k == nil {
			return KV{}, false
		}
		return KV{Key: bytes.Clone(k), Value: bytes.Clone(v)}, true
	}
	return spliterkit.FromPullN(next, count(b),
		spliterkit.Ordered|spliterkit.Sorted|spliterkit.Distinct|spliterkit.NonNull), nil
}

// View runs fn with the Spliterator of the bucket inside a read-only transaction.
func View(db *bbolt.DB, bucket []byte, fn func(spliterkit.Spliterator[KV]) error) error {
	return db.View(func(tx *bbolt.Tx) error {
		s, err := Keys(tx, bucket)
		if err != nil {
			return err
		}
		return fn(s)
	})
}

// IfEmpty runs fn with the Spliterator of the primary bucket,
// or when the primary bucket has no keys, with the Spliterator of the secondary bucket.
func IfEmpty(db *bbolt.DB, primary, secondary []byte, fn func(spliterkit.Spliterator[KV]) error) error {
	return db.View(func(tx *bbolt.Tx) error {
		p, err := Keys(tx, primary)
		if err != nil {
			return err
		}
		s, err := Keys(tx, secondary)
		if err != nil {
			return err
		}
		return fn(spliterkit.IfEmpty(p, s))
	})
}

// count walks the bucket with its own cursor,
// because bucket stats include the keys of nested buckets as well.
func count(b *bbolt.Bucket) int {
	var n int
	c := b.Cursor()
	for k, _ := c.First(); k != nil; k, _ = c.Next() {
		n++
	}
	return n
}
