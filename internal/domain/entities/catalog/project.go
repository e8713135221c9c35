// Package catalog defines the project catalog entities.
// Projects are append-only for the lifetime of a session: they are created
// by seed data or by the publish operation and never updated or deleted.
package catalog

import "strings"

// Configuration is a unit configuration of a Project. All three fields are
// opaque display strings; no numeric parsing happens anywhere in the system.
type Configuration struct {
	Type  string `json:"type"`  // e.g. "2 BHK"
	Size  string `json:"size"`  // e.g. "1200 Sq. Ft."
	Price string `json:"price"` // e.g. "₹ 1.5 Cr"
}

// Project is a catalog entry. StartingPrice is display-only, never parsed.
type Project struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Location       string          `json:"location"`
	StartingPrice  string          `json:"startingPrice"`
	Image          string          `json:"image"`
	Description    string          `json:"description"`
	Amenities      []string        `json:"amenities"`
	Configurations []Configuration `json:"configurations"`
	IsFeatured     bool            `json:"isFeatured"`
}

// Summary is the ungated projection of a Project: the fields a locked
// visitor is always allowed to see on listing pages. Full detail
// (description, amenities, per-configuration pricing) stays behind the
// capture gate.
type Summary struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Location           string   `json:"location"`
	StartingPrice      string   `json:"startingPrice"`
	Image              string   `json:"image"`
	ConfigurationTypes []string `json:"configurationTypes"`
	IsFeatured         bool     `json:"isFeatured"`
}

// Summarize returns the ungated projection of a project.
func (p *Project) Summarize() Summary {
	types := make([]string, 0, len(p.Configurations))
	for _, c := range p.Configurations {
		types = append(types, c.Type)
	}
	return Summary{
		ID:                 p.ID,
		Name:               p.Name,
		Location:           p.Location,
		StartingPrice:      p.StartingPrice,
		Image:              p.Image,
		ConfigurationTypes: types,
		IsFeatured:         p.IsFeatured,
	}
}

// NormalizeAmenities splits a comma-separated amenities string into an
// ordered list of trimmed, non-empty labels. Input order is preserved.
func NormalizeAmenities(raw string) []string {
	parts := strings.Split(raw, ",")
	amenities := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}
	return amenities
}
