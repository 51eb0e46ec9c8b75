package engine

import "go.uber.org/zap"

func nopLog() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

type recordingObserver struct {
	calls int
	last  Config
}

func (r *recordingObserver) EngineLoading(cfg Config) {
	r.calls++
	r.last = cfg
}
