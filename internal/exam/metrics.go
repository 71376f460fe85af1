package exam

// Fatigue index values for the first-half/second-half timing comparison.
const (
	FatigueSlowingDown = "SLOWING_DOWN"
	FatigueConsistent  = "CONSISTENT"
)

// Metrics is the behavioral profile derived from one completed attempt.
// All percentage fields are rounded half-up to two decimals; ratios with
// a zero denominator are defined as 0.
type Metrics struct {
	Accuracy              float64 // correct / attempted
	AttemptRatio          float64 // attempted / total
	NegativeMarks         float64 // wrong * penalty weight
	FirstInstinctAccuracy float64 // first selection correct / answers with a first selection
	EliminationEfficiency float64 // clean eliminations / answers with eliminations
	ImpulsiveErrorCount   int
	OverthinkingErrorCount int
	GuessProbability      float64

	// CognitiveBreakdown maps q1_accuracy .. q4_accuracy to the accuracy
	// within each contiguous quarter of the presentation order.
	CognitiveBreakdown map[string]float64

	FatigueIndex string // FatigueSlowingDown or FatigueConsistent
	AccuracyDrop int    // first-half correct minus second-half correct

	RiskAppetite     float64 // HARD attempted / HARD in test
	ConfidenceIndex  float64
	ConsistencyIndex float64
}
