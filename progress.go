package screenreport

// Progress is told when a generation starts rendering and when it finishes.
// Finish is called on every path once Start was called.
type Progress interface {
	Start()
	Finish()
}

// ProgressFuncs adapts a pair of functions to Progress. Nil functions are
// skipped.
type ProgressFuncs struct {
	OnStart  func()
	OnFinish func()
}

// Start implements Progress.
func (p ProgressFuncs) Start() {
	if p.OnStart != nil {
		p.OnStart()
	}
}

// Finish implements Progress.
func (p ProgressFuncs) Finish() {
	if p.OnFinish != nil {
		p.OnFinish()
	}
}
