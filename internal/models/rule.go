package models

type Rule struct {
	BaseModel

	GoalID uint   `gorm:"not null;index"`
	Text   string `gorm:"not null"`

	// Relationships
	Goal Goal `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
