package status

import (
	"math"
	"sync/atomic"
)

// MaxStringLen caps string metrics; longer values are cut at a rune boundary
const MaxStringLen = 32

// AtomicFloat is a float64 metric stored as raw bits
// The zero value reads as 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.bits.Load()) }

// AtomicString is a short string metric such as a phase name
// The zero value reads as ""
type AtomicString struct {
	v atomic.Value
}

// Store replaces the value, truncated to MaxStringLen bytes
func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !isRuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	s.v.Store(v)
}

func (s *AtomicString) Load() string {
	v, _ := s.v.Load().(string)
	return v
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
