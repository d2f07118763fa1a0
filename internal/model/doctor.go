package model

// DoctorRecord is one row of the doctor directory. The backing store is
// loaded once and treated as read-only for the process lifetime; the ID is
// assigned by the loader in table order.
type DoctorRecord struct {
	ID           int64  `json:"id" db:"id"`
	Provider     string `json:"provider" db:"provider"`
	Department   string `json:"department" db:"department"`
	District     string `json:"district" db:"district"`
	Upazila      string `json:"upazila" db:"upazila"`
	Address      string `json:"address" db:"address"`
	Degree       string `json:"degree" db:"degree"`
	Post         string `json:"post" db:"post"`
	ContactNo    string `json:"contact_no" db:"contact_no"`
	Professional string `json:"professional" db:"professional"`
}

// DoctorSearchResult is a directory row plus the per-query availability
// flag. The flag is recomputed on every query and never stored.
type DoctorSearchResult struct {
	DoctorRecord
	IsAvailable bool `json:"is_available"`
}

// SearchRequest represents a doctor search query.
type SearchRequest struct {
	Specialty string `json:"specialty" binding:"required"`
	Location  string `json:"location,omitempty"`
}

// SearchResponse represents a doctor search result set.
// Total counts specialty+location matches before the availability draw,
// so Results may be shorter than Total but never longer.
type SearchResponse struct {
	Results   []DoctorSearchResult `json:"results"`
	Total     int                  `json:"total"`
	Specialty string               `json:"specialty"`
	Took      int64                `json:"took_ms"`
}

// TriageRequest bundles a concern with the search preferences the host
// collected alongside it.
type TriageRequest struct {
	UserConcern
	Location string `json:"location,omitempty"`
}

// TriageResponse is the combined classify-then-search outcome.
type TriageResponse struct {
	Specialty string               `json:"specialty"`
	Results   []DoctorSearchResult `json:"results"`
	Total     int                  `json:"total"`
	Took      int64                `json:"took_ms"`
}

// SuggestRequest asks for department suggestions for a free-text snippet.
type SuggestRequest struct {
	Text string `json:"text" binding:"required"`
	TopK int    `json:"top_k,omitempty"`
}

// DepartmentSuggestion is one nearest-neighbour department match.
type DepartmentSuggestion struct {
	Department string  `json:"department" db:"department"`
	Distance   float64 `json:"distance" db:"distance"`
}

// SuggestResponse lists suggested departments, nearest first.
type SuggestResponse struct {
	Suggestions []DepartmentSuggestion `json:"suggestions"`
}

// DepartmentEmbeddingRequest seeds or refreshes the stored embeddings for
// a set of department names.
type DepartmentEmbeddingRequest struct {
	Departments []string `json:"departments" binding:"required"`
}

// DepartmentEmbeddingResponse reports how many departments were embedded.
type DepartmentEmbeddingResponse struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}
