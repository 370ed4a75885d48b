package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// CheckState maps file paths to the hash of their last contents known to be
// canonically formatted. check consults it to skip the pipeline for files
// that have not changed since they last validated clean.
type CheckState struct {
	Hashes map[string]string `json:"hashes"`
}

func NewCheckState() *CheckState {
	return &CheckState{Hashes: make(map[string]string)}
}

// Clean reports whether path was last seen valid with exactly this content
// hash.
func (s *CheckState) Clean(path, hash string) bool {
	return s.Hashes[path] == hash
}

// MarkClean records that path's current contents validated clean.
func (s *CheckState) MarkClean(path, hash string) {
	s.Hashes[path] = hash
}

// ContentHash returns the hex SHA-256 of src, the key the check cache uses.
func ContentHash(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}
