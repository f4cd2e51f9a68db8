package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEscapeHTML(t *testing.T) {
	require.Equal(t, "a &amp; b &lt;c&gt;", EscapeHTML("a & b <c>"))
	require.Equal(t, "plain", EscapeHTML("plain"))
}

func TestBold(t *testing.T) {
	require.Equal(t, "<b>&lt;x&gt;</b>", Bold("<x>"))
}

func TestLink(t *testing.T) {
	require.Equal(t, `<a href="https://x.test">A &amp; B</a>`, Link("https://x.test", "A & B"))
}
