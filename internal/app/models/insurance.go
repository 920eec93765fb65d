package models

type Insurance struct {
	ID                 string  `bson:"_id,omitempty"`
	Name               string  `bson:"name"`
	CoveragePercentage float64 `bson:"coveragePercentage"`
	TimeModel          `bson:",inline"`
}
