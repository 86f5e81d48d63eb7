package comment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeContent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{"plain text", "nice post", "nice post"},
		{"trims whitespace", "  hello  \n", "hello"},
		{"escapes html", `<script>alert("x")</script>`, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;"},
		{"escapes after trim", "  <b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeContent(tt.in)
			assert.NoError(t, err)
			assert.Equal(t, tt.out, got)
		})
	}
}

func TestSanitizeContentRejectsEmpty(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n"} {
		_, err := sanitizeContent(in)
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
}
