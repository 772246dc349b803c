package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dengopaiv/manatu/internal/config"
)

var (
	scriptPath string
	outPath    string
	sampleRate int
)

var rootCmd = &cobra.Command{
	Use:   "klattplay",
	Short: "Render a YAML voice script to a WAV file",
	Long: `klattplay drives the manatu Klatt formant synthesizer from a YAML
voice script and writes the result as a 16-bit PCM WAV file.`,
	RunE: runPlay,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "klattplay: load config: %v\n", err)
		cfg = &config.Config{SampleRate: 48000}
	}

	rootCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "path to a YAML voice script (required)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "out.wav", "path to write the rendered WAV file")
	rootCmd.Flags().IntVar(&sampleRate, "sample-rate", cfg.SampleRate, "render sample rate in Hz (default from MANATU_SAMPLE_RATE)")
	rootCmd.MarkFlagRequired("script")
}
