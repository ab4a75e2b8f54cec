package models

import "time"

// DefaultDailyCapacity is the number of bookings a practitioner can take for
// a given therapy on one calendar day when the therapy does not override it.
const DefaultDailyCapacity = 5

// Therapy describes a multi-day treatment course. DurationDays is the number
// of daily sessions a booking of this therapy expands into.
type Therapy struct {
	ID               string    `bson:"id" json:"id"`
	Name             string    `bson:"name" json:"name"`
	Description      string    `bson:"description" json:"description"`
	DurationDays     int       `bson:"duration_days" json:"durationDays"`
	Price            float64   `bson:"price" json:"price"`
	DailyCapacity    int       `bson:"daily_capacity" json:"dailyCapacity"`
	PreInstructions  []string  `bson:"pre_instructions" json:"preInstructions"`
	PostInstructions []string  `bson:"post_instructions" json:"postInstructions"`
	IsActive         bool      `bson:"is_active" json:"isActive"`
	CreatedBy        string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
	CreatedAt        time.Time `bson:"created_at" json:"createdAt"`
}

// Capacity returns the effective daily capacity for slot allocation.
func (t Therapy) Capacity() int {
	if t.DailyCapacity > 0 {
		return t.DailyCapacity
	}
	return DefaultDailyCapacity
}
