package models

// DefaultHearts is the lives counter a goal starts with. Hearts stay
// within [0, MaxHearts]; handlers reject updates outside that range.
const (
	DefaultHearts = 3
	MaxHearts     = 3
)

type Goal struct {
	BaseModel

	CategoryID uint   `gorm:"not null;index"`
	Title      string `gorm:"not null"`
	Hearts     int    `gorm:"not null;default:3"`

	// Relationships
	Category  Category  `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Rules     []Rule    `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Processes []Process `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
