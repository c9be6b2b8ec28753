package bolt_test

import (
	"bytes"
	"errors"
	"path/filepath"
	"sort"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"go.etcd.io/bbolt"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/streamkit/adapter/bolt"
	"go.llib.dev/streamkit/pkg/spliterkit"
	"go.llib.dev/streamkit/pkg/spliterkit/spliterkitcontract"
)

var (
	bucketEmpty  = []byte("empty")
	bucketFilled = []byte("filled")
)

func TestKeys(t *testing.T) {
	s := testcase.NewSpec(t)

	db := testcase.Let(s, func(t *testcase.T) *bbolt.DB {
		db, err := bbolt.Open(filepath.Join(t.TempDir(), "test.db"), 0600, nil)
		t.Must.NoError(err)
		t.Defer(db.Close)
		return db
	})
	content := testcase.Let(s, func(t *testcase.T) []bolt.KV {
		var (
			kvs  []bolt.KV
			seen = map[string]struct{}{}
		)
		for i, n := 0, t.Random.IntB(1, 64); i < n; i++ {
			key := randomdata.SillyName()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			kvs = append(kvs, bolt.KV{Key: []byte(key), Value: []byte(randomdata.Email())})
		}
		sort.Slice(kvs, func(i, j int) bool { return bytes.Compare(kvs[i].Key, kvs[j].Key) < 0 })
		return kvs
	})
	s.Before(func(t *testcase.T) {
		t.Must.NoError(db.Get(t).Update(func(tx *bbolt.Tx) error {
			if _, err := tx.CreateBucket(bucketEmpty); err != nil {
				return err
			}
			b, err := tx.CreateBucket(bucketFilled)
			if err != nil {
				return err
			}
			for _, kv := range content.Get(t) {
				if err := b.Put(kv.Key, kv.Value); err != nil {
					return err
				}
			}
			return nil
		}))
	})

	s.Context("the bucket content is yielded in key order", func(s *testcase.Spec) {
		spliterkitcontract.Spliterator(func(tb testing.TB) spliterkitcontract.Subject[bolt.KV] {
			t := testcase.ToT(&tb)
			tx, err := db.Get(t).Begin(false)
			t.Must.NoError(err)
			t.Defer(tx.Rollback)
			return spliterkitcontract.Subject[bolt.KV]{
				MakeSpliterator: func() spliterkit.Spliterator[bolt.KV] {
					s, err := bolt.Keys(tx, bucketFilled)
					t.Must.NoError(err)
					return s
				},
				Expected: content.Get(t),
			}
		}).Spec(s)
	})

	s.Then("the exact size and the key related characteristics are reported", func(t *testcase.T) {
		t.Must.NoError(bolt.View(db.Get(t), bucketFilled, func(s spliterkit.Spliterator[bolt.KV]) error {
			n, ok := s.ExactSize()
			t.Must.True(ok)
			t.Must.Equal(len(content.Get(t)), n)
			t.Must.True(s.Characteristics().Has(spliterkit.Sorted | spliterkit.Distinct | spliterkit.Ordered))
			return nil
		}))
	})

	s.Then("the pairs stay valid after the transaction", func(t *testcase.T) {
		var got []bolt.KV
		t.Must.NoError(bolt.View(db.Get(t), bucketFilled, func(s spliterkit.Spliterator[bolt.KV]) error {
			got = spliterkit.Collect(s)
			return nil
		}))
		t.Must.Equal(content.Get(t), got)
	})

	s.Then("missing bucket is reported", func(t *testcase.T) {
		err := bolt.View(db.Get(t), []byte("unknown"), func(spliterkit.Spliterator[bolt.KV]) error {
			t.Fatal("unexpected call")
			return nil
		})
		t.Must.True(errors.Is(err, bolt.ErrBucketNotFound))
	})

	s.Describe("IfEmpty", func(s *testcase.Spec) {
		s.Test("empty primary bucket falls back to the secondary", func(t *testcase.T) {
			t.Must.NoError(bolt.IfEmpty(db.Get(t), bucketEmpty, bucketFilled, func(s spliterkit.Spliterator[bolt.KV]) error {
				t.Must.Equal(content.Get(t), spliterkit.Collect(s))
				return nil
			}))
		})

		s.Test("filled primary bucket is used", func(t *testcase.T) {
			t.Must.NoError(bolt.IfEmpty(db.Get(t), bucketFilled, bucketEmpty, func(s spliterkit.Spliterator[bolt.KV]) error {
				n, ok := s.ExactSize()
				t.Must.True(ok)
				t.Must.Equal(len(content.Get(t)), n)
				t.Must.Equal(content.Get(t), spliterkit.Collect(s))
				return nil
			}))
		})
	})
}

func TestKV_copy(t *testing.T) {
	db, err := bbolt.Open(filepath.Join(t.TempDir(), "copy.db"), 0600, nil)
	assert.NoError(t, err)
	defer db.Close()

	assert.NoError(t, db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucket(bucketFilled)
		if err != nil {
			return err
		}
		if _, err := b.CreateBucket([]byte("nested")); err != nil {
			return err
		}
		return b.Put([]byte("key"), []byte("value"))
	}))

	assert.NoError(t, bolt.View(db, bucketFilled, func(s spliterkit.Spliterator[bolt.KV]) error {
		assert.Equal(t, []bolt.KV{
			{Key: []byte("key"), Value: []byte("value")},
			{Key: []byte("nested"), Value: nil},
		}, spliterkit.Collect(s))
		return nil
	}))
}
