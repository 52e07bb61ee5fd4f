package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrConference = "conference"
	AttrSource     = "source"
	AttrOutcome    = "outcome"
)
