package normalizer

import (
	"fmt"
	"strings"

	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// NormalizerType selects a normalizer implementation.
type NormalizerType int

const (
	// DefaultNormalizerType is the Unicode-aware reference normalizer.
	DefaultNormalizerType NormalizerType = iota
	// FastNormalizerType adds an ASCII fast path with buffer pooling.
	FastNormalizerType
)

// ParseNormalizerType maps a configuration name to a NormalizerType.
func ParseNormalizerType(name string) (NormalizerType, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultNormalizerType, nil
	case "fast":
		return FastNormalizerType, nil
	default:
		return DefaultNormalizerType, fmt.Errorf("unknown normalizer %q", name)
	}
}

// NormalizerFactory creates the appropriate normalizer based on performance requirements.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory.
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// CreateNormalizer creates a normalizer of the specified type.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case FastNormalizerType:
		return NewFastNormalizer()
	default:
		return NewDefaultNormalizer()
	}
}
