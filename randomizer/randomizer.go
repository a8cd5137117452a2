// Package randomizer provides a shared, reseedable random source, random code
// generation over fixed alphabets, and GUID generation.
package randomizer

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator is the random source consumed by the logger and code generation.
// Implementations must be safe for concurrent use.
type Generator interface {
	// IntN returns a value in [0, n). It panics if n <= 0.
	IntN(n int) int
	// Reseed resets the source to a deterministic sequence.
	Reseed(seed uint64)
}

// Source is the default Generator, a PCG generator behind a mutex
type Source struct {
	mu  sync.Mutex
	pcg *rand.PCG
	rnd *rand.Rand
}

// New creates a Source seeded from the clock
func New() *Source {
	return NewSeeded(uint64(time.Now().UnixNano()))
}

// NewSeeded creates a Source with a deterministic sequence
func NewSeeded(seed uint64) *Source {
	pcg := rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
	return &Source{pcg: pcg, rnd: rand.New(pcg)}
}

// IntN returns a value in [0, n)
func (s *Source) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.IntN(n)
}

// Reseed resets the source
func (s *Source) Reseed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pcg.Seed(seed, seed^0x9e3779b97f4a7c15)
}

// Default is the process-wide shared source
var Default = New()

// Reset reseeds the process-wide shared source
func Reset(seed uint64) {
	Default.Reseed(seed)
}

// Between returns a value in [lo, hi], both inclusive
func Between(g Generator, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.IntN(hi-lo+1)
}

// CodeType selects the alphabet used by Generate
type CodeType int

const (
	HighLowLetterAndNumberAndSymbol CodeType = iota // upper, lower, digits and symbols
	HighLowLetterAndNumber                          // upper, lower and digits
	HighLetterAndNumber                             // digits and upper
	HighLetter                                      // upper only
	Number                                          // digits only
)

const symbols = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!@#$%^&*"

// alphabet returns the slice of symbols a code type draws from
func (t CodeType) alphabet() string {
	switch t {
	case HighLowLetterAndNumberAndSymbol:
		return symbols
	case HighLetterAndNumber:
		return symbols[:36]
	case HighLetter:
		return symbols[10:36]
	case Number:
		return symbols[:10]
	default:
		return symbols[:62]
	}
}

// Generate returns a random code of length n from the alphabet of t
func Generate(g Generator, n int, t CodeType) string {
	if n <= 0 {
		return ""
	}
	alphabet := t.alphabet()
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(alphabet[g.IntN(len(alphabet))])
	}
	return sb.String()
}

// GenerateGUID returns a random v4 GUID, 36 characters with dashes or 32 without
func GenerateGUID(hasLine bool) string {
	id := uuid.NewString()
	if hasLine {
		return id
	}
	return strings.ReplaceAll(id, "-", "")
}
