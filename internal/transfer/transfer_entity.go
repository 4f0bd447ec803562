package transfer

import (
	"time"

	"github.com/google/uuid"
)

// Transfer is one recorded posting change. From* snapshots the posting the
// employee held when the order was recorded; the employee row itself carries
// the new posting afterwards.
type Transfer struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"uniqueIndex:uq_transfer_order_number"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;index"`

	FromInstitution string
	FromDistrict    string
	FromTaluk       string
	FromCity        string
	FromPosition    string

	ToInstitution string
	ToDistrict    string
	ToTaluk       string
	ToCity        string
	ToPosition    string

	EffectiveFrom time.Time
	CreatedAt     time.Time
}
