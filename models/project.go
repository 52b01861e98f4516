package models

import "time"

// Project represents a portfolio entry written in a single language
type Project struct {
	ID           uint                `json:"id" gorm:"primaryKey;autoIncrement"`
	LanguageID   uint                `json:"languageId" gorm:"not null;index:idx_project_language_id"`
	Title        string              `json:"title" gorm:"type:varchar(200);not null"`
	Description  string              `json:"description" gorm:"type:text;not null"`
	ImageURL     *string             `json:"imageUrl" gorm:"type:varchar(500)"`
	DemoLink     *string             `json:"demoLink" gorm:"type:varchar(500)"`
	CodeLink     *string             `json:"codeLink" gorm:"type:varchar(500)"`
	Featured     bool                `json:"featured" gorm:"not null;default:false"`
	ShowDemo     bool                `json:"showDemo" gorm:"not null"`
	ShowCode     bool                `json:"showCode" gorm:"not null"`
	OrderIndex   int                 `json:"orderIndex" gorm:"not null;default:0"`
	CreatedAt    time.Time           `json:"createdAt" gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time           `json:"updatedAt" gorm:"not null;autoUpdateTime"`
	Language     *Language           `json:"language,omitempty" gorm:"foreignKey:LanguageID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Technologies []ProjectTechnology `json:"technologies,omitempty" gorm:"foreignKey:ProjectID;references:ID;constraint:OnDelete:CASCADE"`
}

// TechnologyNames flattens the technology rows into their labels, keeping their order
func (p Project) TechnologyNames() []string {
	names := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		names = append(names, tech.Technology)
	}
	return names
}
