package cmd

import (
	"fmt"

	cfgpkg "github.com/cinestat/cinestat-cli/internal/config"
	"github.com/cinestat/cinestat-cli/internal/dataset"
	"github.com/cinestat/cinestat-cli/internal/pipeline"
)

// pipelineOptions validates the effective configuration and maps it onto
// pipeline options. Configuration problems are the one fatal error class:
// nothing runs on out-of-domain values.
func pipelineOptions(c *cfgpkg.Global) (pipeline.Options, error) {
	if c == nil {
		loaded, err := cfgpkg.Load(cfgFile)
		if err != nil {
			return pipeline.Options{}, err
		}
		c = loaded
	}
	if err := c.Validate(); err != nil {
		return pipeline.Options{}, fmt.Errorf("invalid configuration: %w", err)
	}
	opt := pipeline.DefaultOptions()
	opt.HistogramBins = c.HistogramBins
	opt.DensityPoints = c.DensityPoints
	opt.OutlierMultiplier = c.OutlierMultiplier
	opt.SampleRows = c.SampleRows
	opt.Workers = c.Workers
	opt.ScatterSizeLo = c.ScatterSizeMin
	opt.ScatterSizeHi = c.ScatterSizeMax
	opt.Insight.CorrelationThreshold = c.CorrelationThreshold
	opt.Insight.MissingPctThreshold = c.MissingPctThreshold
	opt.Insight.TopCategories = c.TopCategories
	return opt, nil
}

// runPipeline loads the dataset at path (falling back to the built-in
// sample when unavailable) and runs the full analysis.
func runPipeline(path string) (*pipeline.Result, error) {
	opt, err := pipelineOptions(cfg)
	if err != nil {
		return nil, err
	}
	d, _ := dataset.Acquire(path)
	return pipeline.Run(d, opt)
}
