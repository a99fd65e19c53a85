package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/shade/pkg/errors"
)

func writeRuleFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadTOMLRules(t *testing.T) {
	path := writeRuleFile(t, "shade.toml", `
[[relocation]]
pattern = "org.foo"
shaded-pattern = "org.shaded.foo"
includes = ["org/foo/**"]
excludes = ["org/foo/impl/**"]

[[relocation]]
pattern = "com.bar"
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "org.foo", rules[0].Pattern)
	assert.Equal(t, "org.shaded.foo", rules[0].ShadedPattern)
	assert.Equal(t, []string{"org/foo/**"}, rules[0].Includes)
	assert.Equal(t, []string{"org/foo/impl/**"}, rules[0].Excludes)
	assert.False(t, rules[0].RawString)

	assert.Equal(t, "com.bar", rules[1].Pattern)
	assert.Empty(t, rules[1].ShadedPattern)
}

func TestLoadXMLRules(t *testing.T) {
	path := writeRuleFile(t, "shade.xml", `<?xml version="1.0"?>
<configuration>
  <relocations>
    <relocation>
      <pattern>org.foo</pattern>
      <shadedPattern>org.shaded.foo</shadedPattern>
      <includes>
        <include>org/foo/**</include>
      </includes>
      <excludes>
        <exclude>org/foo/impl/**</exclude>
      </excludes>
    </relocation>
    <relocation>
      <pattern>com/bar</pattern>
      <rawString>true</rawString>
    </relocation>
  </relocations>
</configuration>
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "org.foo", rules[0].Pattern)
	assert.Equal(t, "org.shaded.foo", rules[0].ShadedPattern)
	assert.Equal(t, []string{"org/foo/**"}, rules[0].Includes)
	assert.Equal(t, []string{"org/foo/impl/**"}, rules[0].Excludes)

	assert.Equal(t, "com/bar", rules[1].Pattern)
	assert.True(t, rules[1].RawString)
}

func TestLoadRulesErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantCode errors.ErrorCode
	}{
		{
			name:     "unsupported extension",
			file:     "shade.yaml",
			content:  "",
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "malformed toml",
			file:     "shade.toml",
			content:  "[[relocation",
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "malformed xml",
			file:     "shade.xml",
			content:  "<relocations><relocation>",
			wantCode: errors.ErrConfigLoad,
		},
		{
			name:     "relocation without pattern",
			file:     "shade.xml",
			content:  "<relocations><relocation><shadedPattern>x</shadedPattern></relocation></relocations>",
			wantCode: errors.ErrConfigParse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRuleFile(t, tt.file, tt.content)
			_, err := LoadRules(path)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode))
		})
	}
}

func TestLoadRulesMissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestBuildPipeline(t *testing.T) {
	rules := []Rule{
		{Pattern: "org.foo", ShadedPattern: "org.shaded.foo"},
		{Pattern: "com.bar"},
	}

	p, err := BuildPipeline(rules)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Len())

	got, ok := p.RelocateClass("org.foo.Thing")
	assert.True(t, ok)
	assert.Equal(t, "org.shaded.foo.Thing", got)
}

func TestBuildPipelineBadRule(t *testing.T) {
	rules := []Rule{
		{Pattern: "org.foo", Includes: []string{"org/foo/[bad"}},
	}

	_, err := BuildPipeline(rules)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRuleInvalid))
}

func TestDefaultRulesPath(t *testing.T) {
	path := DefaultRulesPath()
	assert.Contains(t, path, "shade")
	assert.True(t, filepath.IsAbs(path))
}
