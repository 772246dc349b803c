// Command klattplay renders a YAML voice script to a WAV file using the
// manatu Klatt synthesizer. It is the spiritual successor to the teacher's
// "read a .par file, play it through OpenAL" main(): same role (drive the
// engine from a file, produce audio), but targeting a portable WAV file
// instead of owning an OpenAL playback device.
package main

import (
	"fmt"
	"os"

	"github.com/dengopaiv/manatu/cmd/klattplay/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
