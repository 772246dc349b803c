package cmd

import (
	"github.com/spf13/cobra"
)

var addr string

var rootCmd = &cobra.Command{
	Use:   "klattd",
	Short: "Stream Klatt-synthesized audio over a websocket",
	Long: `klattd is a long-running server that accepts a websocket connection
per caller, decodes a stream of JSON frame-control messages into the
manatu Klatt formant synthesizer, and streams back raw 16-bit PCM.`,
	RunE: runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&addr, "addr", "", "listen address, e.g. :8088 (overrides MANATU_PORT)")
}
