// Package idgen produces identifiers for locally created offline records.
package idgen

import (
	"fmt"
	"strings"
	"sync"

	"event-sync-service/internal/pkg/clock"

	"github.com/google/uuid"
)

type Generator interface {
	NewID(prefix string) string
}

// RandomGenerator yields ids of the form <prefix>_<unixMillis>_<random>.
type RandomGenerator struct {
	clock clock.Clock
}

func NewRandomGenerator(c clock.Clock) *RandomGenerator {
	return &RandomGenerator{clock: c}
}

func (g *RandomGenerator) NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s_%d_%s", prefix, g.clock.Now().UnixMilli(), suffix)
}

// SequenceGenerator yields <prefix>_<n> with a counter shared across prefixes,
// so ids sort in creation order.
type SequenceGenerator struct {
	mu      sync.Mutex
	counter uint64
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

func (g *SequenceGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counter++
	return fmt.Sprintf("%s_%d", prefix, g.counter)
}
