package metrics

// Metric attribute keys shared by the otel instruments.
const (
	AttrDocument = "document"
	AttrStat     = "stat"
	AttrStatus   = "status"
)
