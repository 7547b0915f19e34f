package evolve

import "fmt"

// logHeaderEvery is how often (in emitted lines) the column header is
// reprinted to a log writer (spec.md §4.5 step 7).
const logHeaderEvery = 50

func (a *Algorithm) appendLog(line LogLine) {
	a.log = append(a.log, line)
	if a.logWriter == nil {
		return
	}
	if (len(a.log)-1)%logHeaderEvery == 0 {
		fmt.Fprintf(a.logWriter, "%-8s%-12s%-14s%-10s%-10s\n", "Gen:", "Fevals:", "Best loss:", "Ndf size:", "Compl.:")
	}
	ndf := "-"
	if line.NdfSize > 0 {
		ndf = fmt.Sprintf("%d", line.NdfSize)
	}
	fmt.Fprintf(a.logWriter, "%-8d%-12d%-14g%-10s%-10g\n", line.Gen, line.Fevals, line.BestLoss, ndf, line.BestComplexity)
}

// shouldLog reports whether generation gen (1-based) should emit a log
// line under verbosity v: every generation when v == 1, otherwise when
// gen % v == 1 (spec.md §4.5 step 7).
func shouldLog(gen uint64, verbosity int) bool {
	if verbosity <= 0 {
		return false
	}
	return verbosity == 1 || gen%uint64(verbosity) == 1
}
