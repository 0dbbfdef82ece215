package badger

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/poiesic/shopsense/core"
)

// Key prefixes for different data types
const (
	productRecordPrefix   = "prodrec"
	productCategoryPrefix = "prodcat"
	indexStateKeyName     = "idxstate"
)

// makeProductKey generates a key for a product by ID.
func makeProductKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", productRecordPrefix, id))
}

// makeCategoryKey generates a composite key for the category index.
// Format: prefix:category:id
// The category is lowercased so lookups are case-insensitive, and the ID
// is written in BigEndian order so lexicographic sort orders entries by ID.
func makeCategoryKey(category string, id core.ID) []byte {
	prefix := productCategoryPrefix + ":" + strings.ToLower(category) + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// makePartialCategoryKey generates a partial key for category scans.
// Format: prefix:category:
func makePartialCategoryKey(category string) []byte {
	return []byte(productCategoryPrefix + ":" + strings.ToLower(category) + ":")
}

// makeIndexStateKey generates the key for the persisted index state.
func makeIndexStateKey() []byte {
	return []byte(indexStateKeyName)
}
