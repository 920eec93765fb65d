package models

type Medication struct {
	ID            string  `bson:"_id,omitempty"`
	PharmacyID    string  `bson:"pharmacyId"`
	Name          string  `bson:"name"`
	Description   string  `bson:"description,omitempty"`
	UnitPrice     float64 `bson:"unitPrice"`
	StockQuantity int     `bson:"stockQuantity"`
	TimeModel     `bson:",inline"`
}
