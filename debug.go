package wheelie

import (
	"fmt"
	"io"
	"os"
)

// logOutput receives debug and warning lines.
var logOutput io.Writer = os.Stderr

// debugLog prints one dispatch line. Only active when Screen.debug is true.
func (s *Screen) debugLog(format string, args ...any) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(logOutput, "[wheelie] "+format+"\n", args...)
}

// debugWarn reports a dropped or misrouted request regardless of debug
// mode. These indicate a wiring mistake in the host, not bad input.
func debugWarn(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[wheelie] warning: "+format+"\n", args...)
}
