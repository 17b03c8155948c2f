package container

import (
	"encoding/binary"
	"hash/crc32"
)

// ID is the stable 32-bit identity of an editor entity. It is computed once
// from a user-supplied token and never changes for the lifetime of the entity,
// even though the slot storing the entity's data may be recycled. Collisions
// are accepted and not detected, matching the host toolkit's ID scheme.
type ID uint32

// HashString derives an ID from a user-supplied name.
func HashString(s string) ID {
	return ID(crc32.ChecksumIEEE([]byte(s)))
}

// HashInt derives an ID from a user-supplied integer token. The token is
// hashed by value, not by decimal rendering, so HashInt(10) and
// HashString("10") are unrelated.
func HashInt(i int) ID {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(i))
	return ID(crc32.ChecksumIEEE(buf[:]))
}

// HashSeeded derives an ID from a name scoped by a parent ID, so the same
// name can be reused under different parents without colliding.
func HashSeeded(seed ID, s string) ID {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(seed))
	h := crc32.Update(crc32.ChecksumIEEE(buf[:]), crc32.IEEETable, []byte(s))
	return ID(h)
}

// HashIntSeeded derives an ID from an integer token scoped by a parent ID.
func HashIntSeeded(seed ID, i int) ID {
	var buf [12]byte
	binary.LittleEndian.PutUint32(buf[:4], uint32(seed))
	binary.LittleEndian.PutUint64(buf[4:], uint64(i))
	return ID(crc32.ChecksumIEEE(buf[:]))
}
