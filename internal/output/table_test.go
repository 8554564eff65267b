package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"NAME", "DESCRIPTION", "DEFAULT"},
		[][]string{
			{"vanilla", "Plain JavaScript", "yes"},
			{"vue", "Vue 3 single-file components", ""},
		},
	)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "vanilla")
	assert.Contains(t, out, "Vue 3 single-file components")

	var vueLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "vue") {
			vueLine = line
		}
	}
	assert.Contains(t, vueLine, " "+EmptyCell+" ", "blank cells are filled")
}

func TestRenderTable_NoRows(t *testing.T) {
	out := RenderTable([]string{"KEY", "VALUE"}, nil)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "VALUE")
}
