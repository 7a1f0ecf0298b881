package models

import "encoding/json"

// RawJob mirrors the subset of the JSearch response we extract. The rest
// of the payload is treated as opaque.
type RawJob struct {
	Title          string   `json:"job_title"`
	EmployerName   string   `json:"employer_name"`
	City           string   `json:"job_city"`
	Country        string   `json:"job_country"`
	ApplyLink      string   `json:"job_apply_link"`
	Description    string   `json:"job_description"`
	RequiredSkills []string `json:"job_required_skills"`
	MinSalary      float64  `json:"job_min_salary"`
	MaxSalary      float64  `json:"job_max_salary"`
	IsRemote       bool     `json:"job_is_remote"`
}

func (r RawJob) MarshalBinary() ([]byte, error) {
	return json.Marshal(r)
}

func (r *RawJob) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, r)
}

// SearchResults wraps a cached page of raw results so the whole response
// can round-trip through the cache as one value.
type SearchResults struct {
	Jobs []RawJob `json:"jobs"`
}

func (s SearchResults) MarshalBinary() ([]byte, error) {
	return json.Marshal(s)
}

func (s *SearchResults) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, s)
}
