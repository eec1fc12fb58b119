package api

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// FilterAll is the sentinel select-box value meaning "no filter".
const FilterAll = "all"

// Filter holds the dashboard filter parameters shared by the stats and
// trades endpoints. Date values are passed through unvalidated; the backend
// owns date-format errors.
type Filter struct {
	StartDate     string `url:"start_date,omitempty"`
	EndDate       string `url:"end_date,omitempty"`
	IndicatorType string `url:"indicator_type,omitempty"`
	Outcome       string `url:"outcome,omitempty"`
}

// Values returns the filter as query parameters. A parameter is included
// only when set, and the "all" sentinel on indicator/outcome counts as
// unset.
func (f Filter) Values() (url.Values, error) {
	normalized := f
	if normalized.IndicatorType == FilterAll {
		normalized.IndicatorType = ""
	}
	if normalized.Outcome == FilterAll {
		normalized.Outcome = ""
	}
	return query.Values(normalized)
}

// Encode returns the filter as an encoded query string.
func (f Filter) Encode() string {
	v, err := f.Values()
	if err != nil {
		return ""
	}
	return v.Encode()
}
