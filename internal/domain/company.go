package domain

import (
	"errors"
	"time"
)

// ErrCompanyNotFound is returned by stores when a company id has no row.
var ErrCompanyNotFound = errors.New("company not found")

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Company is a tracked startup. Created by spreadsheet import, referenced
// by the ranking computation but owned by the company CRUD endpoints.
type Company struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	CleanedName string    `db:"cleaned_name" json:"cleaned_name"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CompetitorProfile is one row of the curated competitor sheet: a market
// player, its business description, and its named competitors.
type CompetitorProfile struct {
	Rank         int          `json:"rank"`
	Company      string       `json:"company"`
	CoreBusiness string       `json:"core_business"`
	Industry     string       `json:"industry"`
	Competitors  []Competitor `json:"competitors"`
}

// Competitor is a single competitor of a profiled company. Overlap marks
// competitors that are themselves tracked portfolio companies.
type Competitor struct {
	Name          string `json:"name"`
	Overlap       bool   `json:"is_overlap"`
	InvestorNames string `json:"investor_info,omitempty"`
	FamousVC      bool   `json:"famous_vc,omitempty"`
}
