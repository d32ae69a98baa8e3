package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatcherConfig(t *testing.T) {
	cfg, err := DefaultMatcherConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "go", cfg.BrandToken)
	assert.Equal(t, 0.7, cfg.InputWeight)
	assert.Equal(t, 0.3, cfg.CandidateWeight)
	assert.Equal(t, 0.1, cfg.CommonWordWeight)
	assert.Equal(t, 0.2, cfg.HighSignalBonus)
	assert.Equal(t, 0.6, cfg.CoverageThreshold)

	assert.Contains(t, cfg.HighSignalWords, "university")
	assert.Equal(t, "Union Station", cfg.Aliases["union"])
	assert.Equal(t, "centre", cfg.Spellings["center"])
	assert.NotEmpty(t, cfg.VariantSuffixes)
}

func TestParseMatcherConfigRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed yaml", "version: [not closed"},
		{"missing version", "coverageThreshold: 0.6"},
		{"zero coverage threshold", "version: 1\ncoverageThreshold: 0"},
		{"weight out of range", "version: 1\ncoverageThreshold: 0.6\ninputWeight: 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMatcherConfig([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
