// Package extract turns raw job-listing HTML into a normalized JobPosting
// using a layered heuristic pipeline. No site-specific adapters are
// maintained; the heuristics are intentionally tolerant and the final record
// is gated by invariant validation instead.
package extract

// JobPosting is the normalized record describing a role, derived from an
// arbitrary web page. It is immutable after extraction.
type JobPosting struct {
	Title            string   `json:"title"`
	URL              string   `json:"url"`
	Description      string   `json:"description,omitempty"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	ExperienceLevel  string   `json:"experience_level,omitempty"`
}

// HasContent reports whether at least one of requirements, responsibilities
// or description is populated. A posting without any of them is degenerate
// and must not be returned to callers.
func (p *JobPosting) HasContent() bool {
	return len(p.Requirements) > 0 || len(p.Responsibilities) > 0 || p.Description != ""
}

// validate enforces the posting invariants, returning an ExtractionError
// describing the first unmet one.
func (p *JobPosting) validate() error {
	if p.Title == "" {
		return &ExtractionError{URL: p.URL, Reason: "no title found"}
	}
	if !p.HasContent() {
		return &ExtractionError{URL: p.URL, Reason: "no content found"}
	}
	return nil
}
