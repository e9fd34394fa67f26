package models

type Category struct {
	BaseModel

	Name   string `gorm:"not null"`
	UserID uint   `gorm:"not null;index"`

	// Relationships
	User  User   `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Goals []Goal `gorm:"foreignKey:CategoryID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}
