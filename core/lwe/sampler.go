package lwe

import (
	"github.com/tuneinsight/lattigo/v5/ring"
	"github.com/tuneinsight/lattigo/v5/utils/sampling"
	"github.com/tuneinsight/lattigo/v5/utils/structs"
)

// UniformSampler draws integers uniformly in [0, v) from a PRNG by masked
// rejection sampling.
type UniformSampler struct {
	prng sampling.PRNG
	v    uint64
	mask uint64
}

// NewUniformSampler creates a sampler over [0, v) reading from prng.
// v must be > 0.
func NewUniformSampler(prng sampling.PRNG, v uint64) *UniformSampler {
	mask := uint64(1)
	for mask < v-1 {
		mask = mask<<1 | 1
	}
	return &UniformSampler{
		prng: prng,
		v:    v,
		mask: mask,
	}
}

func (s *UniformSampler) ReadUint64() uint64 {
	return ring.RandUniform(s.prng, s.v, s.mask)
}

// Read fills out with uniform draws in [0, v).
func (s *UniformSampler) Read(out []uint64) {
	for i := range out {
		out[i] = ring.RandUniform(s.prng, s.v, s.mask)
	}
}

// ReadNew returns a freshly allocated vector of n uniform draws in [0, v).
func (s *UniformSampler) ReadNew(n int) (vec structs.Vector[uint64]) {
	vec = make(structs.Vector[uint64], n)
	s.Read(vec)
	return
}

// WithPRNG returns a sampler with the same range reading from prng.
func (s *UniformSampler) WithPRNG(prng sampling.PRNG) *UniformSampler {
	return &UniformSampler{
		prng: prng,
		v:    s.v,
		mask: s.mask,
	}
}
