package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hgl "github.com/donaldgifford/haggle/cmd/hgl/cmd"
)

func TestGenerate(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "hgl")
	require.NoError(t, generate(hgl.Root(), dir))

	for _, name := range []string{"hgl.md", "hgl_analyze.md", "hgl_outcomes_export.md", "hgl_seller_get.md"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}
