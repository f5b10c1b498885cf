package plugin

// decision captures the inputs of one run-or-skip choice.
type decision struct {
	noPrevTimestamps bool // first cycle ever, or prior snapshot saw no files
	filesChanged     bool // changed dependency set is non-empty
	alwaysRun        bool
	watchActive      bool
	skipInitialRun   bool
}

// shouldSkip suppresses the initial run in watch mode. It takes priority
// over alwaysRun.
func (d decision) shouldSkip() bool {
	return d.watchActive && d.noPrevTimestamps && d.skipInitialRun
}

func (d decision) shouldRun() bool {
	return (d.noPrevTimestamps || d.filesChanged || d.alwaysRun) && !d.shouldSkip()
}
