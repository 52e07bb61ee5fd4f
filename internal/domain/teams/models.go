package teams

import "strings"

// Conference labels used by the roster source. Comparison is case-insensitive.
const (
	ConferenceWest = "West"
	ConferenceEast = "East"
)

// Team is one roster entry: the team name and the conference it plays in.
// The name is the team's identity everywhere else in the module.
type Team struct {
	Name       string `json:"name"`
	Division   string `json:"division,omitempty"`
	Conference string `json:"conference"`
}

// InConference reports whether the team belongs to the given conference label.
func (t Team) InConference(conference string) bool {
	return SameConference(t.Conference, conference)
}

// SameConference compares two conference labels ignoring case and surrounding space.
func SameConference(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
