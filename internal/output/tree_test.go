package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderFileTree(t *testing.T) {
	out := RenderFileTree("my-app", map[string]string{
		"package.json": "Package manifest",
		"index.html":   "",
		"src/main.js":  "Entry point",
		".gitignore":   "",
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Contains(t, lines[0], "my-app/")
	// Directories come first
	assert.Equal(t, "├── src/", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "│   └── main.js"))
	assert.Contains(t, lines[2], "Entry point")
	assert.Equal(t, "├── .gitignore", lines[3])
	assert.Equal(t, "├── index.html", lines[4])
	assert.True(t, strings.HasPrefix(lines[5], "└── package.json"))
	assert.Contains(t, lines[5], "Package manifest")
}

func TestRenderFileTree_Empty(t *testing.T) {
	assert.Empty(t, RenderFileTree("x", nil))
}

func TestRenderSimpleTree(t *testing.T) {
	out := RenderSimpleTree("app", []string{"a/b/c.txt"})
	assert.Contains(t, out, "└── a/")
	assert.Contains(t, out, "    └── b/")
	assert.Contains(t, out, "        └── c.txt")
}
