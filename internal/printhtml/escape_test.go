package printhtml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "plain", input: "Platform Engineering", want: "Platform Engineering"},
		{name: "angle brackets", input: "A<B>", want: "A&lt;B&gt;"},
		{name: "ampersand", input: "R&D", want: "R&amp;D"},
		{name: "double quote", input: `say "hi"`, want: "say &quot;hi&quot;"},
		{name: "single quote", input: "Dean's List", want: "Dean&#39;s List"},
		{name: "all five", input: `&<>"'`, want: "&amp;&lt;&gt;&quot;&#39;"},
		{name: "unicode untouched", input: "Jan 2020 – Present •", want: "Jan 2020 – Present •"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.input))
		})
	}
}

func TestEscape_NotIdempotent(t *testing.T) {
	assert.Equal(t, "&amp;amp;", Escape(Escape("&")))
}
