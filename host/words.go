package host

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// UUIDFromWords assembles a uuid from four big-endian 32-bit words, a
// holding the most significant bytes.
func UUIDFromWords(a, b, c, d uint32) uuid.UUID {
	var id uuid.UUID
	binary.BigEndian.PutUint32(id[0:4], a)
	binary.BigEndian.PutUint32(id[4:8], b)
	binary.BigEndian.PutUint32(id[8:12], c)
	binary.BigEndian.PutUint32(id[12:16], d)
	return id
}

// UUIDToWords splits id into the words accepted by UUIDFromWords.
func UUIDToWords(id uuid.UUID) (a, b, c, d uint32) {
	return binary.BigEndian.Uint32(id[0:4]),
		binary.BigEndian.Uint32(id[4:8]),
		binary.BigEndian.Uint32(id[8:12]),
		binary.BigEndian.Uint32(id[12:16])
}
