package config

import (
	"fmt"
	"time"

	"github.com/cognicore/newsprep/pkg/newsprep/corpus"
	"github.com/cognicore/newsprep/pkg/newsprep/normalize"
	"github.com/cognicore/newsprep/pkg/newsprep/tokenfilter"
	"github.com/cognicore/newsprep/pkg/newsprep/vectorize"
)

// Loader reads the configuration files and constructs components.
type Loader struct {
	ConfigPath string
}

// Components holds the initialized pipeline components.
type Components struct {
	Config     *Pipeline
	Normalizer *normalize.Normalizer
	Filter     *tokenfilter.Filter
	TrainRange corpus.DateRange
	EvalRange  corpus.DateRange
	Weighting  vectorize.Weighting
}

// Load reads the pipeline config plus the optional stoplist file and
// returns initialized components.
func (l *Loader) Load() (*Components, error) {
	cfg, err := LoadPipeline(l.ConfigPath)
	if err != nil {
		return nil, err
	}

	comp := &Components{
		Config:     cfg,
		Normalizer: normalize.New(),
	}

	if cfg.StoplistPath != "" {
		stoplist, err := LoadStoplist(cfg.StoplistPath)
		if err != nil {
			return nil, fmt.Errorf("load stoplist: %w", err)
		}
		comp.Filter = tokenfilter.New(stoplist.Terms)
	} else {
		comp.Filter = tokenfilter.New(nil)
	}

	comp.TrainRange, comp.EvalRange, err = parseRanges(cfg.Split)
	if err != nil {
		return nil, err
	}

	if cfg.Weighting == "count" {
		comp.Weighting = vectorize.Count
	} else {
		comp.Weighting = vectorize.TFIDF
	}

	return comp, nil
}

func parseRanges(s SplitSpec) (train, eval corpus.DateRange, err error) {
	var start, end time.Time

	start, end, err = s.Train.Parse()
	if err != nil {
		return train, eval, err
	}
	train = corpus.DateRange{Start: start, End: end}

	start, end, err = s.Eval.Parse()
	if err != nil {
		return train, eval, err
	}
	eval = corpus.DateRange{Start: start, End: end}

	return train, eval, nil
}
