package randutil

import (
	rand "math/rand/v2"
	"time"
)

// New returns a PCG-backed *rand.Rand seeded from a single int64 so runs can
// be replayed from a logged seed.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(splitmix(u), splitmix(^u)))
}

// Seed returns *seed when set and a time-derived seed otherwise
func Seed(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return time.Now().UnixNano()
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
