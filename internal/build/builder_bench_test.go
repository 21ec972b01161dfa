package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chriserin/featgen/internal/feature"
)

func generateDoc(name string, sections int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	for i := 1; i <= sections; i++ {
		fmt.Fprintf(&b, "## %s section %d\n\n", name, i)
		fmt.Fprintf(&b, "{given}`precondition %d` then {when}`action %d is taken`.\n\n", i, i)
		fmt.Fprintf(&b, "{then}`the result is`:\n\n```json\n{\"n\": %d}\n```\n\n", i)
	}
	return b.String()
}

func BenchmarkBuild_Force(b *testing.B) {
	p := newProject(b)
	for i := 0; i < 50; i++ {
		name := fmt.Sprintf("doc_%d", i)
		require.NoError(b, os.MkdirAll(p.src, 0o755))
		require.NoError(b, os.WriteFile(filepath.Join(p.src, name+".md"), []byte(generateDoc(name, 20)), 0o644))
	}
	builder := p.builder(feature.ModePermissive)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := builder.Build(context.Background(), true)
		require.NoError(b, err)
	}
}
