package spinner

import (
	"os"
	"time"

	"github.com/briandowns/spinner"
)

// StartSpinner shows message with a spinner on stderr, so piped stdout stays
// clean, and returns the function that stops and clears it.
//
//	stop := spinner.StartSpinner("Querying device")
//	out, err := sh.Run(ctx, "getprop")
//	stop()
func StartSpinner(message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()

	return s.Stop
}
