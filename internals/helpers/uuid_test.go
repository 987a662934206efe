package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCanonicalUUID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ok    bool
	}{
		{name: "lower case", input: "3f2504e0-4f89-11d3-9a0c-0305e82c3301", ok: true},
		{name: "upper case", input: "3F2504E0-4F89-11D3-9A0C-0305E82C3301", ok: true},
		{name: "surrounding spaces", input: "  3f2504e0-4f89-11d3-9a0c-0305e82c3301 ", ok: true},
		{name: "no hyphens", input: "3f2504e04f8911d39a0c0305e82c3301", ok: false},
		{name: "braced", input: "{3f2504e0-4f89-11d3-9a0c-0305e82c3301}", ok: false},
		{name: "urn", input: "urn:uuid:3f2504e0-4f89-11d3-9a0c-0305e82c3301", ok: false},
		{name: "garbage of right length", input: "zzzzzzzz-4f89-11d3-9a0c-0305e82c3301", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCanonicalUUID(tt.input)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidUUID)
			}
		})
	}
}
