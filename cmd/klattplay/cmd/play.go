package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	klatt "github.com/dengopaiv/manatu"
	"github.com/dengopaiv/manatu/internal/config"
	"github.com/dengopaiv/manatu/internal/metricsx"
	"github.com/dengopaiv/manatu/internal/observability"
)

const renderChunkSamples = 4096

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := observability.Init(cfg.LogLevel, cfg.LogPretty)

	script, err := loadScript(scriptPath)
	if err != nil {
		return err
	}
	if len(script.Segments) == 0 {
		return fmt.Errorf("voice script %s has no segments", scriptPath)
	}

	fm := klatt.NewFrameManager()
	sr := float64(sampleRate)
	for i, seg := range script.Segments {
		req := seg.toFrameRequest(sr)
		fm.Enqueue(req, i == 0)
		metricsx.FramesEnqueued.WithLabelValues(enqueueKind(seg)).Inc()
	}

	gen := klatt.NewWaveGenerator(sr)
	gen.SetFrameManager(fm)

	var samples []int16
	chunk := make([]int16, renderChunkSamples)
	start := time.Now()
	for {
		n := gen.Generate(chunk)
		samples = append(samples, chunk[:n]...)
		if n < len(chunk) {
			break
		}
	}
	metricsx.ObserveRender(start, len(samples))

	if err := writeWAV(outPath, sampleRate, samples); err != nil {
		return err
	}

	logger.Info("rendered voice script",
		"script", scriptPath,
		"out", outPath,
		"segments", len(script.Segments),
		"samples", len(samples),
		"duration", time.Duration(float64(len(samples))/sr*float64(time.Second)),
	)
	return nil
}

func enqueueKind(seg Segment) string {
	if seg.Null {
		return "null"
	}
	return "voiced"
}
