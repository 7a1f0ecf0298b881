package models

import (
	"encoding/json"
	"time"
)

// JobPosting is the canonical stored row for a relocation-friendly job.
// Rows are written once at ingestion; re-ingestion of the same natural key
// (title+company+location) overwrites the stale copy.
type JobPosting struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Company           string    `json:"company"`
	Location          string    `json:"location"`
	RemoteFriendly    bool      `json:"remote_friendly"`
	JobURL            string    `json:"job_url"`
	VisaSponsorship   bool      `json:"visa_sponsorship"`
	HousingAssistance bool      `json:"housing_assistance"`
	MovingAllowance   string    `json:"moving_allowance"`
	RelocationType    string    `json:"relocation_type"`
	RelocationPackage string    `json:"relocation_package"`
	HREmail           string    `json:"hr_email"`
	CompanyEmail      string    `json:"company_email"`
	Description       string    `json:"description"`
	Requirements      string    `json:"requirements"`
	SalaryRange       string    `json:"salary_range"`
	JobType           string    `json:"job_type"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (p JobPosting) MarshalBinary() ([]byte, error) {
	return json.Marshal(p)
}

func (p *JobPosting) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, p)
}

// Relocation type classifications derived from description keywords.
const (
	RelocationVisaSponsorship  = "visa_sponsorship"
	RelocationInternalTransfer = "internal_transfer"
	RelocationRemoteToOffice   = "remote_to_office"
	RelocationGeneral          = "general_relocation"
)
