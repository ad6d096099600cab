package engine

import "github.com/hashicorp/go-hclog"

// logger is the package-level sink for the evaluator's lifecycle trace
// (requirement entry/exit, area-level start/end). It defaults to a no-op
// sink; callers that want visibility call SetLogger before evaluating.
var logger hclog.Logger = hclog.NewNullLogger()

// SetLogger installs l as the evaluator's trace sink.
func SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	logger = l
}
