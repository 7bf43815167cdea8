package resume

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLaTeX(t *testing.T) {
	d, err := Extract(context.Background(), "resume.pdf")
	require.NoError(t, err)

	out := GenerateLaTeX(d)

	assert.True(t, strings.HasPrefix(out, `\documentclass`))
	assert.Contains(t, out, `\begin{document}`)
	assert.Contains(t, out, `\end{document}`)
	assert.Contains(t, out, d.Name)
	assert.Contains(t, out, `\section*{Skills}`)
	assert.Contains(t, out, `\section*{Projects}`)
	for _, c := range d.Certifications {
		assert.Contains(t, out, c)
	}
}

func TestGenerateLaTeX_SkipsEmptySections(t *testing.T) {
	out := GenerateLaTeX(&Data{Name: "A", Email: "a@b.c"})

	assert.NotContains(t, out, `\section*{Summary}`)
	assert.NotContains(t, out, `\section*{Projects}`)
	assert.NotContains(t, out, `\section*{Certifications}`)
}

func TestEscape(t *testing.T) {
	tests := []struct{ in, want string }{
		{"C&C", `C\&C`},
		{"100% remote", `100\% remote`},
		{"$120k", `\$120k`},
		{"a_b", `a\_b`},
		{"#1", `\#1`},
		{"x~y", `x\textasciitilde{}y`},
		{"a^b", `a\textasciicircum{}b`},
		{`path\to`, `path\textbackslash{}to`},
		{"{braces}", `\{braces\}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, escape(tt.in), tt.in)
	}
}
