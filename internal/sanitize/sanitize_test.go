package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "John", "John"},
		{"script stripped", "<script>alert(1)</script>John", "John"},
		{"markup stripped", "<b>John</b>", "John"},
		{"event handler stripped", `<img src=x onerror="alert(1)">Jane`, "Jane"},
		{"whitespace trimmed", "  John  ", "John"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.in))
		})
	}
}

func TestTextPtr(t *testing.T) {
	assert.Nil(t, TextPtr(nil))

	in := "<i>bio</i>"
	out := TextPtr(&in)
	assert.NotNil(t, out)
	assert.Equal(t, "bio", *out)
}
