package model

// Package model contains the portal's domain entities.
// These are pure data shapes with no storage-specific dependencies or tags;
// they are shared across the record, service and HTTP layers.

// Semester is one of the eight study terms the portal organizes content by.
// ID is an opaque string assigned at creation and never changes.
// Order drives the default listing (ascending), with Name as tie-breaker.
type Semester struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
}

// Subject belongs to a Semester via SemesterID. The reference is not
// enforced: deleting a Semester leaves its Subjects in place.
type Subject struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	SemesterID string `json:"semesterId"`
}
