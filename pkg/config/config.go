package config

import (
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/shade/pkg/errors"
	"github.com/arthur-debert/shade/pkg/logging"
	"github.com/arthur-debert/shade/pkg/pipeline"
	"github.com/arthur-debert/shade/pkg/relocation"
)

// Rule is one configured relocation
type Rule struct {
	Pattern       string   `koanf:"pattern"`
	ShadedPattern string   `koanf:"shaded-pattern"`
	Includes      []string `koanf:"includes"`
	Excludes      []string `koanf:"excludes"`
	RawString     bool     `koanf:"raw-string"`
}

// LoadRules reads relocation rules from path, dispatching on the file
// extension: .toml for native rule files, .xml for Maven-style shade
// configurations.
func LoadRules(path string) ([]Rule, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return loadTOMLRules(path)
	case ".xml":
		return loadXMLRules(path)
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported rule file %q, want .toml or .xml", path)
	}
}

func loadTOMLRules(path string) ([]Rule, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load rules from %s", path)
	}

	var rules []Rule
	if err := k.Unmarshal("relocation", &rules); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rules from %s", path)
	}

	logger.Debug().
		Str("path", path).
		Int("ruleCount", len(rules)).
		Msg("loaded TOML rules")

	return rules, nil
}

// BuildPipeline constructs the relocation pipeline from rules, in order.
// Construction validates every glob and raw-mode pattern, so a bad rule
// surfaces here rather than mid-pass.
func BuildPipeline(rules []Rule) (*pipeline.Pipeline, error) {
	relocators := make([]relocation.Relocator, 0, len(rules))
	for i, rule := range rules {
		r, err := relocation.NewSimpleRelocator(
			rule.Pattern, rule.ShadedPattern, rule.Includes, rule.Excludes, rule.RawString)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRuleInvalid, "relocation rule %d (%q)", i, rule.Pattern)
		}
		relocators = append(relocators, r)
	}
	return pipeline.New(relocators), nil
}

// DefaultRulesPath returns the rule file shade looks for when none is given
// on the command line.
func DefaultRulesPath() string {
	return filepath.Join(xdg.ConfigHome, "shade", "shade.toml")
}
