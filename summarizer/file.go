// SPDX-License-Identifier: MIT

package summarizer

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/lvsum/centrality"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML layout read by LoadFile. Absent keys keep their
// defaults.
//
//	strategy: manifoldrank
//	budget: 100
//	language: english
//	stem: true
//	manifold:
//	  alpha: 0.9
//	  lambda: 0.5
//	  method: mmr
type FileConfig struct {
	Strategy  *string   `yaml:"strategy"`
	Budget    *int      `yaml:"budget"`
	Language  *string   `yaml:"language"`
	Stopwords *string   `yaml:"stopwords"`
	Stem      *bool     `yaml:"stem"`
	Params    []float64 `yaml:"params"`

	Graph struct {
		Damping   *float64 `yaml:"damping"`
		Threshold *float64 `yaml:"threshold"`
		TopK      *int     `yaml:"top_k"`
	} `yaml:"graph"`

	Manifold struct {
		Alpha  *float64 `yaml:"alpha"`
		Lambda *float64 `yaml:"lambda"`
		Method *string  `yaml:"method"`
		Solve  *string  `yaml:"solve"`
	} `yaml:"manifold"`

	Distributional struct {
		RankK  *int   `yaml:"rank_k"`
		Topics *int   `yaml:"topics"`
		Seed   *int64 `yaml:"seed"`
	} `yaml:"distributional"`

	Coverage struct {
		LengthExponent *float64 `yaml:"length_exponent"`
		TimeLimitSecs  *float64 `yaml:"time_limit_secs"`
		MaxNodes       *int     `yaml:"max_nodes"`
	} `yaml:"coverage"`
}

// LoadFile reads a YAML configuration file and returns it as options, to be
// passed to NewConfig ahead of any overrides.
func LoadFile(path string) ([]Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	var fc FileConfig
	if err = yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("LoadFile: %s: %v: %w", path, err, ErrBadParam)
	}
	opts, err := fc.Options()
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %s: %w", path, err)
	}

	return opts, nil
}

// Options converts the set keys of fc into options.
func (fc *FileConfig) Options() ([]Option, error) {
	var opts []Option
	if fc.Strategy != nil {
		opts = append(opts, WithStrategy(Strategy(strings.ToLower(strings.TrimSpace(*fc.Strategy)))))
	}
	if fc.Budget != nil {
		opts = append(opts, WithBudget(*fc.Budget))
	}
	if fc.Language != nil {
		opts = append(opts, WithLanguage(*fc.Language))
	}
	if fc.Stopwords != nil {
		opts = append(opts, WithStopwords(*fc.Stopwords))
	}
	if fc.Stem != nil {
		opts = append(opts, WithStem(*fc.Stem))
	}
	if fc.Graph.Damping != nil {
		opts = append(opts, WithDamping(*fc.Graph.Damping))
	}
	if fc.Graph.Threshold != nil {
		opts = append(opts, WithThreshold(*fc.Graph.Threshold))
	}
	if fc.Graph.TopK != nil {
		opts = append(opts, WithTopK(*fc.Graph.TopK))
	}
	if fc.Manifold.Alpha != nil {
		opts = append(opts, WithAlpha(*fc.Manifold.Alpha))
	}
	if fc.Manifold.Lambda != nil {
		opts = append(opts, WithLambda(*fc.Manifold.Lambda))
	}
	if fc.Manifold.Method != nil {
		m, err := ParseMethod(*fc.Manifold.Method)
		if err != nil {
			return nil, err
		}
		opts = append(opts, WithMethod(m))
	}
	if fc.Manifold.Solve != nil {
		switch strings.ToLower(*fc.Manifold.Solve) {
		case "direct":
			opts = append(opts, WithSolve(centrality.Direct))
		case "iterative":
			opts = append(opts, WithSolve(centrality.Iterative))
		default:
			return nil, fmt.Errorf("solve %q: %w", *fc.Manifold.Solve, ErrBadParam)
		}
	}
	if fc.Distributional.RankK != nil {
		opts = append(opts, WithRankK(*fc.Distributional.RankK))
	}
	if fc.Distributional.Topics != nil {
		opts = append(opts, WithTopics(*fc.Distributional.Topics))
	}
	if fc.Distributional.Seed != nil {
		opts = append(opts, WithSeed(*fc.Distributional.Seed))
	}
	if fc.Coverage.LengthExponent != nil {
		opts = append(opts, WithLengthExponent(*fc.Coverage.LengthExponent))
	}
	if fc.Coverage.TimeLimitSecs != nil {
		opts = append(opts, WithTimeLimit(time.Duration(*fc.Coverage.TimeLimitSecs*float64(time.Second))))
	}
	if fc.Coverage.MaxNodes != nil {
		opts = append(opts, WithMaxNodes(*fc.Coverage.MaxNodes))
	}
	if len(fc.Params) > 0 {
		opts = append(opts, WithParams(fc.Params...))
	}

	return opts, nil
}
