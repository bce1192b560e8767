package report

import "sync"

var probeOnce sync.Once
var probeErr error

// Available reports whether the rendering backend can produce a
// document in this environment. The probe renders a one-page throwaway
// document once and caches the outcome.
func Available() error {
	probeOnce.Do(func() {
		canvas := NewCanvas(DefaultStyle(), "")
		canvas.AddPage()
		_, probeErr = canvas.Output()
	})
	return probeErr
}
