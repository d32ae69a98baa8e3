package transit

import (
	_ "embed"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed matching.yml
var defaultMatchingPolicy []byte

// MatcherConfig is the location-matching policy: normalization rules, the
// alias and variant tables, and the fuzzy-scoring constants. It is loaded
// from a versioned YAML document so the policy stays auditable and testable
// independently of the scoring code.
type MatcherConfig struct {
	Version int `yaml:"version" validate:"gte=1"`

	// BrandToken is an organizational qualifier stripped from the end of
	// stop names during normalization (e.g. the "GO" in "Milton GO").
	BrandToken string `yaml:"brandToken"`

	InputWeight       float64 `yaml:"inputWeight" validate:"gte=0,lte=1"`
	CandidateWeight   float64 `yaml:"candidateWeight" validate:"gte=0,lte=1"`
	CommonWordWeight  float64 `yaml:"commonWordWeight" validate:"gte=0"`
	HighSignalBonus   float64 `yaml:"highSignalBonus" validate:"gte=0"`
	CoverageThreshold float64 `yaml:"coverageThreshold" validate:"gt=0,lte=1"`

	HighSignalWords []string          `yaml:"highSignalWords"`
	Aliases         map[string]string `yaml:"aliases"`
	VariantSuffixes []string          `yaml:"variantSuffixes"`
	Spellings       map[string]string `yaml:"spellings"`
}

// DefaultMatcherConfig parses and validates the embedded matching policy.
func DefaultMatcherConfig() (MatcherConfig, error) {
	return ParseMatcherConfig(defaultMatchingPolicy)
}

// ParseMatcherConfig parses a matching policy document and validates its
// scoring constants.
func ParseMatcherConfig(data []byte) (MatcherConfig, error) {
	var cfg MatcherConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MatcherConfig{}, fmt.Errorf("error parsing matching policy: %w", err)
	}

	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return MatcherConfig{}, fmt.Errorf("invalid matching policy: %w", err)
	}

	return cfg, nil
}
