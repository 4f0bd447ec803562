package designation

import (
	"time"

	"github.com/google/uuid"
)

// Designation is one entry of the two-level post taxonomy, e.g.
// "District Surgeon" under Group A / Doctors. Rank orders posts within the
// service for seniority comparison; higher means more senior.
type Designation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	Group     string    `gorm:"index"`
	SubGroup  string
	Rank      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
