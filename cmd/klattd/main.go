// Command klattd is a long-running server that streams Klatt-synthesized
// audio over websocket connections, one synthesizer instance per caller.
// It is the networked counterpart to klattplay: where klattplay renders a
// complete voice script to a file and exits, klattd keeps a FrameManager
// alive for the life of a connection and takes frame requests live.
package main

import (
	"fmt"
	"os"

	"github.com/dengopaiv/manatu/cmd/klattd/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
