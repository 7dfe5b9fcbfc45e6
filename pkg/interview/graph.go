package interview

// Edge is a transition the Machine can take between two kinds of state.
type Edge struct {
	From, To Kind
	// Label describes the condition, empty for the regular path.
	Label string
	// Correction marks transitions triggered by a correction command.
	Correction bool
}

// Kinds lists every kind in interview order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(Done)+1)
	for k := AskName; k <= Done; k++ {
		out = append(out, k)
	}
	return out
}

// Automatic reports whether a kind can be resolved without asking. Brand
// count and same-model questions are skipped when there is a single brand or
// a single truck; StartTrucks never asks.
func (k Kind) Automatic() bool {
	return k == StartTrucks
}

// Edges describes the transitions of the Machine, including correction commands.
func Edges() []Edge {
	edges := []Edge{
		{From: AskName, To: AskCompany},
		{From: AskCompany, To: AskOwnsTrucks},
		{From: AskOwnsTrucks, To: AskTotalCount, Label: "yes"},
		{From: AskOwnsTrucks, To: Done, Label: "no"},
		{From: AskTotalCount, To: AskBrands},
		{From: AskTotalCount, To: Done, Label: "zero"},
		{From: AskBrands, To: StartTrucks},
		{From: AskBrands, To: AskTotalCount, Label: "more brands than trucks"},
		{From: StartTrucks, To: AskBrandCount},
		{From: AskBrandCount, To: AskSameModel},
		{From: AskSameModel, To: AskModelName},
		{From: AskModelName, To: AskEngineSize},
		{From: AskModelName, To: AskBrandCount, Label: "no more models"},
		{From: AskModelName, To: Done, Label: "no more models"},
		{From: AskEngineSize, To: AskAxleCount},
		{From: AskAxleCount, To: AskWeight},
		{From: AskWeight, To: AskMaxLoad},
		{From: AskMaxLoad, To: AskGroupSize, Label: "several models"},
		{From: AskMaxLoad, To: AskBrandCount, Label: "next brand"},
		{From: AskMaxLoad, To: Done, Label: "all brands complete"},
		{From: AskGroupSize, To: AskModelName, Label: "trucks left"},
		{From: AskGroupSize, To: AskBrandCount, Label: "next brand"},
		{From: AskGroupSize, To: Done, Label: "all brands complete"},
	}
	for _, k := range Kinds() {
		if !k.BrandScoped() {
			continue
		}
		edges = append(edges,
			Edge{From: k, To: StartTrucks, Label: cmdStartOver, Correction: true},
			Edge{From: k, To: AskBrandCount, Label: cmdCorrect + "<brand>", Correction: true},
		)
	}
	return edges
}
