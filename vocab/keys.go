package vocab

import (
	"fmt"

	"github.com/kestrelsec/wordlex/core"
)

// Key prefixes for different data types
const (
	wordVectorPrefix = "wovec"
)

// makeWordVectorKey generates a key for a vocabulary entry by ID.
func makeWordVectorKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", wordVectorPrefix, id))
}
