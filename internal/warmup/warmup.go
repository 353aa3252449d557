package warmup

import (
	"context"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/baditaflorin/go_mt_eval/internal/ports"
)

// Config defines how hard the scoring path is exercised before serving.
type Config struct {
	// Concurrency is the number of warm-up goroutines.
	Concurrency int
	// Iterations per goroutine.
	Iterations int
	// SampleWords is the length of the generated reference text.
	SampleWords int
	// Duration caps the warm-up. Zero means no limit.
	Duration time.Duration
	// ForceGC runs a collection once the warm-up is done.
	ForceGC bool
	// Languages cycled through so every tokenizer and stemmer rule set is touched.
	Languages []string
}

// DefaultConfig returns the default warm-up configuration.
func DefaultConfig() Config {
	return Config{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		SampleWords: 200,
		Duration:    5 * time.Second,
		ForceGC:     true,
		Languages:   []string{"English", "German", "Polish", "French"},
	}
}

// Stats reports what a warm-up run did.
type Stats struct {
	Normalizations int
	PairsScored    int
	Duration       time.Duration
}

// Manager runs registered components on generated text.
type Manager struct {
	logger      ports.Logger
	scorers     []ports.PairScorer
	normalizers []ports.Normalizer
	config      Config
}

// NewManager creates a new warm-up manager.
func NewManager(logger ports.Logger, config Config) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if len(config.Languages) == 0 {
		config.Languages = []string{""}
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterScorer adds a pair scorer to be warmed up.
func (wm *Manager) RegisterScorer(scorer ports.PairScorer) {
	wm.scorers = append(wm.scorers, scorer)
}

// RegisterNormalizer adds a normalizer to be warmed up.
func (wm *Manager) RegisterNormalizer(norm ports.Normalizer) {
	wm.normalizers = append(wm.normalizers, norm)
}

// WarmUp exercises every registered component until the iterations are done
// or the configured duration elapses.
func (wm *Manager) WarmUp(ctx context.Context) Stats {
	start := time.Now()
	wm.logger.Info("Starting system warmup",
		"components", len(wm.scorers)+len(wm.normalizers),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	reference := generateSampleText(wm.config.SampleWords)
	similar := generateSimilarText(reference, 0.1)
	different := generateSimilarText(reference, 0.5)
	texts := []string{reference, similar, different}

	counts := make([]Stats, wm.config.Concurrency)
	g := new(errgroup.Group)
	for i := 0; i < wm.config.Concurrency; i++ {
		g.Go(func() error {
			c := &counts[i]
			for j := 0; j < wm.config.Iterations; j++ {
				if ctx.Err() != nil {
					return nil
				}
				candidate := texts[j%len(texts)]
				for _, n := range wm.normalizers {
					_ = n.Normalize(candidate)
					c.Normalizations++
				}
				lang := wm.config.Languages[j%len(wm.config.Languages)]
				for _, s := range wm.scorers {
					_ = s.ScorePair(reference, candidate, lang)
					c.PairsScored++
				}
			}
			return nil
		})
	}
	_ = g.Wait()

	var stats Stats
	for _, c := range counts {
		stats.Normalizations += c.Normalizations
		stats.PairsScored += c.PairsScored
	}

	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	stats.Duration = time.Since(start)
	wm.logger.Info("System warmup completed",
		"duration", stats.Duration,
		"normalizations", stats.Normalizations,
		"pairs_scored", stats.PairsScored,
	)
	return stats
}

var sampleWords = []string{
	"the", "story", "swinging", "off", "branches", "playing", "in", "valleys",
	"should", "i", "be", "pampered", "mother's", "lap", "every", "day",
	"Die", "Geschichte", "Ästen", "Tälern", "Schoß", "gałęzi", "dolinach", "matki",
}

// generateSampleText creates text of n words, with a sentence break every eight.
func generateSampleText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			if i%8 == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(sampleWords[i%len(sampleWords)])
	}
	return sb.String()
}

// generateSimilarText replaces the leading diffRatio share of words.
func generateSimilarText(original string, diffRatio float64) string {
	words := strings.Fields(original)
	changeCount := int(float64(len(words)) * diffRatio)

	replacements := []string{
		"replaced", "modified", "changed", "altered", "updated",
		"verändert", "neu", "zmieniony", "nowy", "autre",
	}

	for i := 0; i < changeCount && i < len(words); i++ {
		words[i] = replacements[i%len(replacements)]
	}
	return strings.Join(words, " ")
}
