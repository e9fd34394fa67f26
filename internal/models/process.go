package models

// Process carries UserID redundantly next to the Goal chain so that
// per-user completion stats aggregate without joins.
type Process struct {
	BaseModel

	GoalID  uint   `gorm:"not null;index"`
	UserID  uint   `gorm:"not null;index"`
	Text    string `gorm:"not null"`
	Checked bool   `gorm:"not null;default:false"`

	// Relationships
	Goal Goal `gorm:"foreignKey:GoalID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	User User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
}
