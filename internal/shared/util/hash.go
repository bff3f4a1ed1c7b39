package util

import (
	"crypto/sha256"
	"encoding/hex"
)

const ownerDirLen = 32

// OwnerDir maps an owner id such as "guest:abc" to a fixed-length hex
// directory name, so storage paths never carry the raw id.
func OwnerDir(owner string) string {
	sum := sha256.Sum256([]byte("owner:" + owner))
	return hex.EncodeToString(sum[:])[:ownerDirLen]
}
