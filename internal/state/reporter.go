package state

import "go.uber.org/zap"

// Reporter receives data-integrity warnings and diagnostic traces. A
// *zap.SugaredLogger satisfies it.
type Reporter interface {
	Warnw(msg string, keysAndValues ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
}

var nopReporter Reporter = zap.NewNop().Sugar()

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter
	}
	return r
}
