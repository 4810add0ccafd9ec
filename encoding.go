package conftree

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Encoding is a serialization of a tree's exported plain form, for handing
// config data to collaborators (files, Bolt buckets, the wire).
type Encoding int

const (
	MsgPack Encoding = iota
	JSON
)

// Encode serializes the tree's exported plain form. Panics on encoder
// failure, which for plain nested maps and slices indicates a programming
// error rather than bad input.
func (enc Encoding) Encode(t *Tree) []byte {
	switch enc {
	case MsgPack:
		var buf bytes.Buffer
		e := msgpack.GetEncoder()
		e.Reset(&buf)
		e.SetSortMapKeys(true)
		err := e.Encode(t.Export())
		msgpack.PutEncoder(e)
		if err != nil {
			panic(fmt.Errorf("failed to encode config tree using MsgPack: %w", err))
		}
		return buf.Bytes()
	case JSON:
		raw, err := json.Marshal(t.Export())
		if err != nil {
			panic(fmt.Errorf("failed to encode config tree to JSON: %w", err))
		}
		return raw
	default:
		panic("unsupported encoding")
	}
}

// Decode parses data into a fresh tree, wrapping malformed input into a
// *DataError.
func (enc Encoding) Decode(data []byte) (*Tree, error) {
	var raw any
	switch enc {
	case MsgPack:
		var r bytes.Reader
		r.Reset(data)
		d := msgpack.GetDecoder()
		d.Reset(&r)
		err := d.Decode(&raw)
		msgpack.PutDecoder(d)
		if err != nil {
			return nil, dataErrf(data, err, "failed to decode msgpack config")
		}
	case JSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, dataErrf(data, err, "failed to decode JSON config")
		}
	default:
		panic("unsupported encoding")
	}
	return New(raw), nil
}
