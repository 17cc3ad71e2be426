// SPDX-License-Identifier: MIT

package sparse

// DefaultWorkers runs MulVec serially.
const DefaultWorkers = 1

// minRowsPerWorker keeps tiny operators on the serial path; goroutine
// start-up dominates below this many rows per chunk.
const minRowsPerWorker = 256

const panicWorkersInvalid = "sparse: WithWorkers: workers must be >= 1"

// Option configures a CSR at construction time.
type Option func(*options)

type options struct {
	workers int
}

func defaultOptions() options {
	return options{workers: DefaultWorkers}
}

// WithWorkers sets the number of goroutines used by MulVec's row loop.
// Panics when k < 1 (programmer error).
func WithWorkers(k int) Option {
	if k < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = k }
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
