package models

type Notification struct {
	ID          string `bson:"_id,omitempty" json:"id"`
	UserID      string `bson:"userId" json:"user_id"`
	Type        string `bson:"type" json:"type"`
	Title       string `bson:"title" json:"title"`
	Message     string `bson:"message" json:"message"`
	ReferenceID string `bson:"referenceId,omitempty" json:"reference_id,omitempty"`
	Read        bool   `bson:"read" json:"read"`
	TimeModel   `bson:",inline"`
}
