package model

// Column is a workflow stage. Columns are configured externally and seeded
// at startup; the board never creates or deletes them. A column dropped
// from the configuration keeps its row with Configured false.
type Column struct {
	ID         string `gorm:"primaryKey" yaml:"id"`
	Name       string `gorm:"not null" yaml:"name"`
	Color      string `yaml:"color"`
	Position   int    `gorm:"not null" yaml:"-"`
	Configured bool   `gorm:"not null" yaml:"-"`
}
