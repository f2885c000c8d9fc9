// Package config loads the YAML pipeline configuration and constructs the
// components it describes.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/newsprep/pkg/newsprep/internalerr"
)

// Pipeline is the on-disk run configuration.
type Pipeline struct {
	Datasets struct {
		Fake string `yaml:"fake"`
		Real string `yaml:"real"`
	} `yaml:"datasets"`
	StoplistPath     string    `yaml:"stoplist"`
	MinDocProportion float64   `yaml:"min_doc_proportion"`
	Weighting        string    `yaml:"weighting"`
	ShuffleSeed      int64     `yaml:"shuffle_seed"`
	Split            SplitSpec `yaml:"split"`
	StorePath        string    `yaml:"store"`
	ExportDir        string    `yaml:"export_dir"`
	EmbeddingsPath   string    `yaml:"embeddings"`
}

// SplitSpec holds the two date ranges of the temporal split.
type SplitSpec struct {
	Train RangeSpec `yaml:"train"`
	Eval  RangeSpec `yaml:"eval"`
}

// RangeSpec is a half-open [start, end) date interval in YYYY-MM-DD form.
type RangeSpec struct {
	Start string `yaml:"start"`
	End   string `yaml:"end"`
}

// Parse converts the spec into concrete times.
func (r RangeSpec) Parse() (start, end time.Time, err error) {
	start, err = time.Parse("2006-01-02", r.Start)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("range start %q: %w", r.Start, err)
	}
	end, err = time.Parse("2006-01-02", r.End)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("range end %q: %w", r.End, err)
	}
	return start, end, nil
}

// LoadPipeline reads and validates a pipeline configuration file.
func LoadPipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the configuration invariants.
func (p *Pipeline) Validate() error {
	if p.Datasets.Fake == "" || p.Datasets.Real == "" {
		return fmt.Errorf("both dataset paths are required: %w", internalerr.ErrInvalidConfig)
	}
	if p.MinDocProportion < 0 || p.MinDocProportion > 1 {
		return fmt.Errorf("min_doc_proportion %v outside [0,1]: %w",
			p.MinDocProportion, internalerr.ErrInvalidConfig)
	}
	switch p.Weighting {
	case "", "count", "tfidf":
	default:
		return fmt.Errorf("weighting %q (want count or tfidf): %w",
			p.Weighting, internalerr.ErrInvalidConfig)
	}

	trainStart, trainEnd, err := p.Split.Train.Parse()
	if err != nil {
		return fmt.Errorf("%v: %w", err, internalerr.ErrInvalidConfig)
	}
	evalStart, evalEnd, err := p.Split.Eval.Parse()
	if err != nil {
		return fmt.Errorf("%v: %w", err, internalerr.ErrInvalidConfig)
	}
	if !trainStart.Before(trainEnd) || !evalStart.Before(evalEnd) {
		return fmt.Errorf("split ranges must have start < end: %w", internalerr.ErrInvalidConfig)
	}
	// Overlapping ranges would let the same document into both subsets.
	if trainStart.Before(evalEnd) && evalStart.Before(trainEnd) {
		return fmt.Errorf("train and eval ranges overlap: %w", internalerr.ErrInvalidConfig)
	}
	return nil
}

// Stoplist is the stopword list configuration file.
type Stoplist struct {
	Terms []string `yaml:"terms"`
}

// LoadStoplist loads stopwords from a YAML file.
func LoadStoplist(path string) (*Stoplist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sl Stoplist
	if err := yaml.Unmarshal(data, &sl); err != nil {
		return nil, err
	}
	return &sl, nil
}
