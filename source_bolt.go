package conftree

import (
	"github.com/vmihailenco/msgpack/v5"
	"go.etcd.io/bbolt"
)

// BoltSource keeps config documents msgpack-encoded in a Bolt bucket, keyed
// by name. It implements Source for reads and additionally supports writing
// a tree's exported form back, so an application can persist edited config.
type BoltSource struct {
	bdb    *bbolt.DB
	bucket []byte
}

const defaultBoltBucket = "configs"

// NewBoltSource wraps an open Bolt database. Pass bucket == "" to use the
// default "configs" bucket.
func NewBoltSource(bdb *bbolt.DB, bucket string) *BoltSource {
	if bucket == "" {
		bucket = defaultBoltBucket
	}
	return &BoltSource{bdb: bdb, bucket: []byte(bucket)}
}

func (s *BoltSource) Config(name string) any {
	var raw any
	err := s.bdb.View(func(btx *bbolt.Tx) error {
		b := btx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		data := b.Get([]byte(name))
		if data == nil {
			return nil
		}
		// Bolt data is only valid inside the transaction; decoding here
		// copies it out.
		return msgpack.Unmarshal(data, &raw)
	})
	if err != nil {
		return nil
	}
	return raw
}

// Put stores the tree's exported form under name, creating the bucket on
// first use.
func (s *BoltSource) Put(name string, t *Tree) error {
	data := MsgPack.Encode(t)
	return s.bdb.Update(func(btx *bbolt.Tx) error {
		b, err := btx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return err
		}
		return b.Put([]byte(name), data)
	})
}

// Delete removes the document stored under name, if any.
func (s *BoltSource) Delete(name string) error {
	return s.bdb.Update(func(btx *bbolt.Tx) error {
		b := btx.Bucket(s.bucket)
		if b == nil {
			return nil
		}
		return b.Delete([]byte(name))
	})
}
