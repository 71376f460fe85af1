package exam

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint computes the canonical content hash used to deduplicate
// questions across sourcing tiers and imports. The text is lower-cased,
// whitespace-collapsed and trimmed together with its subject and topic
// before hashing, so trivially reworded duplicates collide.
func Fingerprint(subject, topic, text string) string {
	canonical := normalize(subject) + "|" + normalize(topic) + "|" + normalize(text)
	sum := sha256.Sum256([]byte(canonical))
	return hex.EncodeToString(sum[:])
}

// normalize lower-cases s and collapses all runs of whitespace to a
// single space.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
