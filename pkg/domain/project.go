package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Project is a community showcase entry.
type Project struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	ProjectURL      string    `json:"projectUrl"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	Tags            []string  `json:"tags"`
	Status          string    `json:"status,omitempty"` // "pending", "approved", "rejected"; empty on the public feed
	RejectionReason string    `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Moderation statuses for a submitted project. Only the owner sees them.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is the payload for a new project submission.
type Submission struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProjectURL  string   `json:"projectUrl"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	Tags        []string `json:"tags"`
}

// Categories drive the showcase filter tabs, in display order.
// "all" disables category filtering.
var Categories = []string{
	"all",
	"hardware",
	"software",
	"iot",
	"robotics",
	"wearables",
	"audio",
	"tools",
}

var categorySet = func() map[string]bool {
	m := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		m[c] = true
	}
	return m
}()

// ValidCategory returns true if the given name is a known category.
func ValidCategory(name string) bool {
	return categorySet[strings.ToLower(name)]
}

// ParseTags splits a comma-separated tag string into clean tags.
// Whitespace is trimmed and empty segments are dropped.
func ParseTags(s string) []string {
	var tags []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// HasTag reports whether the project carries the given tag, ignoring case.
func (p Project) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}
