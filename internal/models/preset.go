package models

import "time"

// Preset is a named, saved filter value for one domain
type Preset struct {
	ID         string    `yaml:"id" json:"id"`
	Name       string    `yaml:"name" json:"name"`
	Domain     Domain    `yaml:"domain" json:"domain"`
	Filter     string    `yaml:"filter" json:"filter"` // YAML encoded filter value
	CreatedAt  time.Time `yaml:"created_at" json:"createdAt"`
	UpdatedAt  time.Time `yaml:"updated_at" json:"updatedAt"`
	LastUsed   time.Time `yaml:"last_used" json:"lastUsed"`
	UsageCount int       `yaml:"usage_count" json:"usageCount"`
}
