package common

import "github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"

// CompositeID derives a deterministic record identifier from a set of
// byte-encoded key parts. The prefix tags the record kind so identifiers of
// different kinds never collide even for equal key parts.
func CompositeID(prefix []byte, args [][]byte) []byte {
	for i := range args {
		prefix = append(prefix, args[i]...)
	}

	return crypto.Sha256(prefix)
}
