package data

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Random is a seeded pseudo-random generator. Equal seeds give equal
// sequences.
type Random struct {
	rnd *rand.Rand
}

// NewRandom creates a generator from seed.
func NewRandom(seed uint64) *Random {
	return &Random{rnd: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Float returns a number in [0, 1).
func (r *Random) Float() float64 { return r.rnd.Float64() }

// Range returns a number in [lo, hi).
func (r *Random) Range(lo, hi float64) float64 { return lo + (hi-lo)*r.rnd.Float64() }

// Intn returns an int in [0, n).
func (r *Random) Intn(n int) int { return r.rnd.IntN(n) }

// Normal returns a normally distributed number.
func (r *Random) Normal(mean, stddev float64) float64 {
	return mean + stddev*r.rnd.NormFloat64()
}

// Dimensions generated by Generate.
var Dimensions = []string{"x", "y", "size", "color"}

// GenerateConfig shapes a generated data set.
type GenerateConfig struct {
	Entities  int
	Slices    int
	FirstYear int     // name of the first slice, default 1950
	Gaps      float64 // probability of a missing value
}

// Generate fills a store with a random walk per entity and dimension,
// addressed as dimension/entity/slice. Entities are named "Entity 1",
// "Entity 2", ...; slices are consecutive years.
func Generate(r *Random, cfg GenerateConfig) *Store {
	if cfg.FirstYear == 0 {
		cfg.FirstYear = 1950
	}
	s := NewStore()
	for _, dim := range Dimensions {
		for e := range cfg.Entities {
			entity := fmt.Sprintf("Entity %d", e+1)
			v := r.Range(10, 100)
			step := r.Normal(0, 2)
			for i := range cfg.Slices {
				slice := strconv.Itoa(cfg.FirstYear + i)
				v = max(v+step+r.Normal(0, 3), 1)
				if cfg.Gaps > 0 && r.Float() < cfg.Gaps {
					continue
				}
				s.Set(Path{dim, entity, slice}, v)
			}
		}
	}
	return s
}
