package domain

import "time"

type MemberStatus string

const (
	MemberStatusActive    MemberStatus = "ACTIVE"
	MemberStatusInactive  MemberStatus = "INACTIVE"
	MemberStatusSuspended MemberStatus = "SUSPENDED"
)

// Employment is one tagged variant of a member's employment list. Exactly one
// of the detail fields is set, matching Type.
type Employment struct {
	Type       EmploymentTag      `json:"type"`
	Employed   *EmploymentDetails `json:"employmentDetails,omitempty"`
	Businesses []Business         `json:"businesses,omitempty"`
	Student    *StudentDetails    `json:"student,omitempty"`
	IsActive   bool               `json:"isActive"`
	StartDate  time.Time          `json:"startDate"`
}

// Member is the approved, persistent directory entry. It is created exactly
// once per identity at approval time and mutated only by admin edits.
type Member struct {
	ID          string       `json:"id"`
	Identity    string       `json:"identity"`
	Personal    PersonalInfo `json:"personal"`
	Contact     ContactInfo  `json:"contact"`
	Employments []Employment `json:"employments"`
	Visibility  Visibility   `json:"visibility"`
	Status      MemberStatus `json:"status"`
	MemberSince time.Time    `json:"memberSince"`
	CreatedOn   time.Time    `json:"createdOn"`
	UpdatedOn   time.Time    `json:"updatedOn"`
}
