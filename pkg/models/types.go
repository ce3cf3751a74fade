package models

import "time"

// RecentFile represents a recently opened or saved file
type RecentFile struct {
	Path        string    `yaml:"path" json:"path"`
	Name        string    `yaml:"name" json:"name"`
	LastUsed    time.Time `yaml:"last_used" json:"last_used"`
	AccessCount int       `yaml:"access_count" json:"access_count"`
}

// RecentFiles is the on-disk layout of the recent files list
type RecentFiles struct {
	Files []RecentFile `yaml:"files" json:"files"`
}
