package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key interface{}, value interface{}) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// FixedIntKey encodes a non-negative integer as an 8-byte little-endian key
// part. Concatenated parts keep their byte boundaries, unlike minimal
// encodings where (1, 257) and (257, 1) produce the same key.
func FixedIntKey(v int) []byte {
	b := convert.ToBytes(v)
	for len(b) < 8 {
		b = append(b, 0)
	}

	return b
}
