package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifiedDiff(t *testing.T) {
	from := "<project>\n  <artifactId>template</artifactId>\n</project>\n"
	to := "<project>\n  <artifactId>orders</artifactId>\n</project>\n"

	diff, err := UnifiedDiff("template/pom.xml", from, to)
	require.NoError(t, err)

	assert.Contains(t, diff, "--- template/pom.xml")
	assert.Contains(t, diff, "+++ template/pom.xml")
	assert.Contains(t, diff, "-  <artifactId>template</artifactId>")
	assert.Contains(t, diff, "+  <artifactId>orders</artifactId>")
}

func TestUnifiedDiff_Identical(t *testing.T) {
	diff, err := UnifiedDiff("a.txt", "same\n", "same\n")
	require.NoError(t, err)
	assert.Empty(t, diff)
}

func TestColorizeDiff_KeepsContent(t *testing.T) {
	diff := "--- a\n+++ a\n@@ -1 +1 @@\n-old\n+new\n"
	got := stripAnsi(ColorizeDiff(diff))
	assert.Equal(t, diff, got)
	assert.Empty(t, ColorizeDiff(""))
}

func TestIndentDiff(t *testing.T) {
	assert.Equal(t, "  -a\n  +b\n", IndentDiff("-a\n\n+b", "  "))
	assert.Empty(t, IndentDiff("", "  "))
}
