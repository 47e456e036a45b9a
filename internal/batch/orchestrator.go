// Package batch coordinates the analysis run: it discovers eligible input
// files, feeds each through the parser and transform pipeline, and hands the
// outputs to the artifact sink. A bad file is logged and skipped; the batch
// always runs to completion over the remaining files.
package batch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spectralab/autofft/configs"
	"github.com/spectralab/autofft/internal/sink"
	"github.com/spectralab/autofft/pkg/autocorr"
	"github.com/spectralab/autofft/pkg/logging"
	"github.com/spectralab/autofft/pkg/spectrum"
)

// Orchestrator coordinates the batch analysis
type Orchestrator struct {
	cfg    *configs.Config
	layout autocorr.SegmentLayout
	sink   sink.Sink
	logger logging.Logger
}

// Summary is the outcome of one batch run
type Summary struct {
	// Results holds per-file outcomes for successfully parsed files,
	// sorted by file name
	Results []sink.FileResult

	Processed int
	Skipped   int
	Duration  time.Duration
}

// NewOrchestrator creates a new batch orchestrator
func NewOrchestrator(cfg *configs.Config, s sink.Sink, logger logging.Logger) *Orchestrator {
	if logger == nil {
		logger = logging.NewDefaultLogger()
	}
	return &Orchestrator{
		cfg:    cfg,
		layout: cfg.SegmentLayout(),
		sink:   s,
		logger: logger,
	}
}

// Run executes the batch over every eligible file in the input directory.
// File processing order across workers is insignificant; results are sorted
// by file name before returning.
func (o *Orchestrator) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()

	excluded, err := LoadExcludeList(o.cfg.Input.ExcludeFile, o.logger)
	if err != nil {
		return nil, err
	}

	files, err := DiscoverFiles(o.cfg.Input.Dir, o.cfg.Input.ExcludeFile, excluded)
	if err != nil {
		return nil, err
	}

	o.logger.Info("Starting batch analysis", logging.Fields{
		"input_dir":      o.cfg.Input.Dir,
		"output_dir":     o.cfg.Output.Dir,
		"file_count":     len(files),
		"sample_rate_hz": o.cfg.Output.SampleRateHz,
		"workers":        o.cfg.Batch.Workers,
	})

	workers := o.cfg.Batch.Workers
	if workers < 1 {
		workers = 1
	}

	summary := &Summary{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(path string) {
			defer wg.Done()
			defer func() { <-sem }()

			result, err := o.processFile(path)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Skipped++
				return
			}
			summary.Processed++
			summary.Results = append(summary.Results, *result)
		}(path)
	}
	wg.Wait()

	sort.Slice(summary.Results, func(i, j int) bool {
		return summary.Results[i].FileName < summary.Results[j].FileName
	})
	summary.Duration = time.Since(start)

	o.logger.Info("Batch analysis completed", logging.Fields{
		"processed":  summary.Processed,
		"skipped":    summary.Skipped,
		"duration_s": summary.Duration.Seconds(),
	})
	return summary, ctx.Err()
}

// processFile parses one input file and runs the transform pipeline on each
// of its sub-functions. A parse failure skips the whole file; a sink failure
// only loses that sub-function's artifacts.
func (o *Orchestrator) processFile(path string) (*sink.FileResult, error) {
	fileName := filepath.Base(path)
	o.logger.Info("Processing file", logging.Fields{"file": fileName})

	functions, err := autocorr.ReadRecord(path, o.layout)
	if err != nil {
		var parseErr *autocorr.ParseError
		if errors.As(err, &parseErr) {
			o.logger.Warn("Skipping malformed file", logging.Fields{
				"file":  fileName,
				"error": err.Error(),
			})
			return nil, err
		}
		o.logger.Error("Failed to read file", logging.Fields{
			"file":  fileName,
			"error": err.Error(),
		})
		return nil, err
	}

	result := &sink.FileResult{
		FileName:  fileName,
		Artifacts: make([]*sink.ArtifactRefs, len(functions)),
	}

	for i, fn := range functions {
		refs, err := o.processFunction(fileName, fn)
		if err != nil {
			o.logger.Error("Sub-function processing failed", logging.Fields{
				"file":     fileName,
				"function": fn.Index,
				"error":    err.Error(),
			})
			continue
		}
		result.Artifacts[i] = refs
	}

	return result, nil
}

func (o *Orchestrator) processFunction(fileName string, fn autocorr.Function) (*sink.ArtifactRefs, error) {
	res, err := spectrum.Transform(fn.Values)
	if err != nil {
		return nil, fmt.Errorf("transform failed: %w", err)
	}

	prefix := o.artifactPrefix(fileName, fn.Index)
	if err := o.sink.Persist(prefix, fn.Index, res); err != nil {
		return nil, err
	}

	return o.sink.Render(prefix, fn.Index, res.Centered, res.PowerDB, o.cfg.Output.SampleRateHz)
}

// artifactPrefix derives the collision-free output prefix
// {outputDir}/{basename}_pcal{index}.
func (o *Orchestrator) artifactPrefix(fileName string, index int) string {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	return filepath.Join(o.cfg.Output.Dir, fmt.Sprintf("%s_pcal%d", base, index))
}
