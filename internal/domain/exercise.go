package domain

// Exercise is a single logged activity entry, always embedded in exactly
// one User document.
type Exercise struct {
	Description string  `bson:"description" json:"description"`
	Duration    float64 `bson:"duration" json:"duration"` // minutes; unit not validated
	Date        string  `bson:"date" json:"date"`         // YYYY-MM-DD
}
