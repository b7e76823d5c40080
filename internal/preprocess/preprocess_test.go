package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	var tests = []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"tabs", "\tx", "x"},
		{"inner tab", "a\tb", "a    b"},
		{"trim", "  \n contract C {} \n  ", "contract C {}"},
		{"empty", "", ""},
		{"whitespace only", " \t\r\n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	samples := []string{
		"",
		"contract C {\r\n\tuint public value;\r\n}",
		"  a\rb\tc  ",
		"already\nnormalized",
	}
	for _, s := range samples {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once))
	}
}

func TestLines(t *testing.T) {
	lines := Lines("contract C {\r\n\tuint x;\r\n}")
	assert.Equal(t, []string{"contract C {", "    uint x;", "}"}, lines)
}
