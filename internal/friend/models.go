package friend

import "time"

// Friend is the persistent record for one friend. Name is the unique key.
// Age is a pointer so that a stored age of 0 is distinguishable from a
// record whose age was never set.
type Friend struct {
	ID        string    `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Age       *int      `json:"age,omitempty" bson:"age,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// HasAge reports whether an age has been recorded. An age of 0 counts.
func (f *Friend) HasAge() bool {
	return f != nil && f.Age != nil
}
