package contacts

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator issues contact ids. Implementations must never return the same
// id twice over the life of the generator.
type IDGenerator interface {
	NextID() string
}

// UUIDGenerator issues UUIDv7 ids. They are time ordered and monotonic within
// the process, so later contacts always get lexically greater ids.
type UUIDGenerator struct{}

func (UUIDGenerator) NextID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Sequence issues "1", "2", "3", ...
type Sequence struct {
	n atomic.Uint64
}

func (s *Sequence) NextID() string {
	return strconv.FormatUint(s.n.Add(1), 10)
}

// Strategy names accepted by GeneratorFor.
const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// GeneratorFor maps a configured strategy name to a generator.
// An empty name selects the UUID generator.
func GeneratorFor(strategy string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return UUIDGenerator{}, nil
	case StrategySequence:
		return &Sequence{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q", strategy)
	}
}
