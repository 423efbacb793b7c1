package model

type Role struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name" validate:"required"`
	Percent int    `json:"percent" yaml:"percent" validate:"gte=0,lte=100"` // целевая доля, 0-100
}

// DefaultRoles is the registry used until the first mutation is persisted.
// The percents are informational and are not required to sum to 100.
func DefaultRoles() []Role {
	return []Role{
		{ID: 1, Name: "Devops", Percent: 25},
		{ID: 2, Name: "Father of the family", Percent: 35},
		{ID: 3, Name: "Sportsman", Percent: 20},
		{ID: 4, Name: "Master of the house", Percent: 15},
		{ID: 5, Name: "Other", Percent: 5},
	}
}
