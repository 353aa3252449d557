package domain

// NormalizedText is text that went through the normalizer: lowercase letters,
// digits, interior apostrophes and single spaces, no leading or trailing space.
type NormalizedText string

// String returns the underlying text.
func (t NormalizedText) String() string {
	return string(t)
}

// TokenSequence is an ordered list of word tokens for one language.
type TokenSequence []string

// MetricKind identifies one of the compared metrics.
type MetricKind string

const (
	// NGramPrecision is the smoothed BLEU-style n-gram precision score.
	NGramPrecision MetricKind = "ngram"
	// OverlapFMeasure is the ROUGE-L-style longest-common-subsequence F-measure.
	OverlapFMeasure MetricKind = "overlap"
)

// MetricKinds lists the compared metrics in reporting order.
var MetricKinds = []MetricKind{NGramPrecision, OverlapFMeasure}

// DisplayName returns the conventional report label of the metric.
func (k MetricKind) DisplayName() string {
	switch k {
	case NGramPrecision:
		return "BLEU"
	case OverlapFMeasure:
		return "ROUGE-L"
	default:
		return string(k)
	}
}

// MetricScore is a scalar in [0, 1] tagged with the metric that produced it.
type MetricScore struct {
	Kind  MetricKind `json:"kind" yaml:"kind"`
	Value float64    `json:"value" yaml:"value"`
}

// OverlapDetail holds the components of an overlap F-measure.
type OverlapDetail struct {
	LCSLength       int     `json:"lcs_length"`
	ReferenceLength int     `json:"reference_length"`
	CandidateLength int     `json:"candidate_length"`
	Precision       float64 `json:"precision"`
	Recall          float64 `json:"recall"`
	FMeasure        float64 `json:"f_measure"`
}

// WinRecord summarizes how often a model produced the best score.
type WinRecord struct {
	Model            string  `json:"model" yaml:"model"`
	NGramWins        int     `json:"ngram_wins" yaml:"ngram_wins"`
	OverlapWins      int     `json:"overlap_wins" yaml:"overlap_wins"`
	TotalWins        int     `json:"total_wins" yaml:"total_wins"`
	TotalComparisons int     `json:"total_comparisons" yaml:"total_comparisons"`
	MeanWinRate      float64 `json:"mean_win_rate" yaml:"mean_win_rate"`
}

// TranslationPair is one (language, model) input handed over by a translation provider.
type TranslationPair struct {
	Language  string `json:"language" yaml:"language"`
	Locale    string `json:"locale,omitempty" yaml:"locale,omitempty"`
	Model     string `json:"model" yaml:"model"`
	Reference string `json:"reference" yaml:"reference"`
	Candidate string `json:"candidate" yaml:"candidate"`
}

// TokenLocale returns the identifier used for tokenization.
func (p TranslationPair) TokenLocale() string {
	if p.Locale != "" {
		return p.Locale
	}
	return p.Language
}

// Report is everything handed to a results renderer.
type Report struct {
	Scores  *ScoreTable `json:"scores" yaml:"scores"`
	Ranking []WinRecord `json:"ranking" yaml:"ranking"`
}
