package helper

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrInvalidUUID = errors.New("invalid uuid format")

// ParseCanonicalUUID only accepts the 8-4-4-4-12 hyphenated form (any case).
// uuid.Parse alone would also take urn:/braced/unhyphenated spellings.
func ParseCanonicalUUID(s string) (uuid.UUID, error) {
	s = strings.TrimSpace(s)
	if len(s) != 36 {
		return uuid.Nil, ErrInvalidUUID
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, ErrInvalidUUID
	}
	return id, nil
}
