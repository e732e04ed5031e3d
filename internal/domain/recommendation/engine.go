package recommendation

import "sort"

const DefaultTopN = 3

type CareerScore struct {
	Career Career `json:"career"`
	Score  int    `json:"score"`
}

// Engine ranks careers by summing table weights for a profile. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	careers    []Career
	rules      map[Signal][]Weights
	thresholds []ThresholdRule
}

func NewEngine(careers []Career, rules []Rule, thresholds []ThresholdRule) *Engine {
	bySignal := make(map[Signal][]Weights, len(rules))
	for _, r := range rules {
		bySignal[r.Signal] = append(bySignal[r.Signal], r.Weights)
	}
	cs := make([]Career, len(careers))
	copy(cs, careers)
	ts := make([]ThresholdRule, len(thresholds))
	copy(ts, thresholds)
	return &Engine{careers: cs, rules: bySignal, thresholds: ts}
}

func DefaultEngine() *Engine {
	return NewEngine(Careers, DefaultRules, DefaultThresholds)
}

// Scores returns every career ranked by score, highest first. Equal scores
// keep enumeration order.
func (e *Engine) Scores(p Profile) []CareerScore {
	idx := make(map[Career]int, len(e.careers))
	out := make([]CareerScore, len(e.careers))
	for i, c := range e.careers {
		idx[c] = i
		out[i] = CareerScore{Career: c}
	}

	apply := func(w Weights) {
		for c, delta := range w {
			if i, ok := idx[c]; ok {
				out[i].Score += delta
			}
		}
	}

	for _, s := range Signals(p) {
		for _, w := range e.rules[s] {
			apply(w)
		}
	}
	for _, t := range e.thresholds {
		if t.matches(p.Confidence.value(t.Dimension)) {
			apply(t.Weights)
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommend returns the topN career labels. topN <= 0 means DefaultTopN.
func (e *Engine) Recommend(p Profile, topN int) []Career {
	if topN <= 0 {
		topN = DefaultTopN
	}
	scores := e.Scores(p)
	if topN > len(scores) {
		topN = len(scores)
	}
	out := make([]Career, topN)
	for i := 0; i < topN; i++ {
		out[i] = scores[i].Career
	}
	return out
}
