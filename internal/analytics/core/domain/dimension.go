package domain

// Dimension is the short key a breakdown is reported under.
type Dimension string

const (
	DimensionCountry     Dimension = "tz"
	DimensionPage        Dimension = "pg"
	DimensionLocale      Dimension = "lc"
	DimensionReferrer    Dimension = "ref"
	DimensionScreenWidth Dimension = "sw"
	DimensionSource      Dimension = "so"
	DimensionMedium      Dimension = "me"
	DimensionCampaign    Dimension = "ca"
	DimensionLanguage    Dimension = "lt"
)

// TrackedDimensions is the single list of breakdowns tallied for a dashboard.
// The aggregator and the HTTP layer both read it.
var TrackedDimensions = []Dimension{
	DimensionCountry,
	DimensionPage,
	DimensionLocale,
	DimensionReferrer,
	DimensionScreenWidth,
	DimensionSource,
	DimensionMedium,
	DimensionCampaign,
	DimensionLanguage,
}

// Tally counts occurrences per dimension value.
type Tally map[Dimension]map[string]int

// NewTally returns a tally with an empty map for every tracked dimension,
// so a dimension with no values still shows up in the response.
func NewTally() Tally {
	t := make(Tally, len(TrackedDimensions))
	for _, d := range TrackedDimensions {
		t[d] = map[string]int{}
	}
	return t
}

// Merge adds every count of other into t.
func (t Tally) Merge(other Tally) {
	for d, values := range other {
		dst, ok := t[d]
		if !ok {
			dst = map[string]int{}
			t[d] = dst
		}
		for v, n := range values {
			dst[v] += n
		}
	}
}
