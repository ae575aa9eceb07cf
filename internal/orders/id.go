package orders

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idSuffixLen = 5

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewOrderID produces a human-shareable order identifier: a DD- prefix,
// the current time in base-36 milliseconds, and a short random suffix,
// all upper-cased (e.g. DD-MBX3K2QF-A81Q0).
//
// Uniqueness rests on time plus randomness only and is not formally
// bounded. That is acceptable here: the datastore does not key on this
// field, so a collision is an inconvenience, not a correctness problem.
//
// rng may be nil, in which case the shared package-level source is used;
// tests pass a seeded source for determinism.
func NewOrderID(now time.Time, rng *rand.Rand) string {
	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	suffix := make([]byte, idSuffixLen)
	for i := range suffix {
		suffix[i] = base36[intn(len(base36))]
	}

	ts := strconv.FormatInt(now.UnixMilli(), 36)
	return strings.ToUpper("DD-" + ts + "-" + string(suffix))
}
