// Razzie - Worst Picture Award Interval Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/razzie

package models

// Movie is one worst picture nomination. Producers holds the raw credits
// string ("A, B and C"); awards.ParseProducers splits it when needed.
//
// Movie carries no validation rules: the API checks request bodies, and the
// CSV import stores every row whose year parses, blank cells included.
type Movie struct {
	ID        int64  `json:"id"`
	Year      int    `json:"year"`
	Title     string `json:"title"`
	Studios   string `json:"studios"`
	Producers string `json:"producers"`
	Winner    bool   `json:"winner"`
}

// MoviePatch describes a partial update. Nil fields are left unchanged.
type MoviePatch struct {
	Year      *int
	Title     *string
	Studios   *string
	Producers *string
	Winner    *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p MoviePatch) IsEmpty() bool {
	return p.Year == nil && p.Title == nil && p.Studios == nil && p.Producers == nil && p.Winner == nil
}

// Apply returns a copy of m with the patch fields set.
func (p MoviePatch) Apply(m Movie) Movie {
	if p.Year != nil {
		m.Year = *p.Year
	}
	if p.Title != nil {
		m.Title = *p.Title
	}
	if p.Studios != nil {
		m.Studios = *p.Studios
	}
	if p.Producers != nil {
		m.Producers = *p.Producers
	}
	if p.Winner != nil {
		m.Winner = *p.Winner
	}
	return m
}

// DeleteResult is returned after a movie is removed.
type DeleteResult struct {
	ID      int64 `json:"id"`
	Deleted bool  `json:"deleted"`
}

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Database      string  `json:"database"`
	Movies        int64   `json:"movies"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}
