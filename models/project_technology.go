package models

// ProjectTechnology is a single ordered technology label of a project
type ProjectTechnology struct {
	ID         uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID  uint   `json:"projectId" gorm:"not null;index:idx_project_technology_project_id"`
	Technology string `json:"technology" gorm:"type:varchar(100);not null"`
	OrderIndex int    `json:"orderIndex" gorm:"not null;default:0"`
}

// NewProjectTechnologies builds the rows for a technology list, using the position as the order index
func NewProjectTechnologies(projectID uint, technologies []string) []ProjectTechnology {
	rows := make([]ProjectTechnology, 0, len(technologies))
	for i, tech := range technologies {
		rows = append(rows, ProjectTechnology{
			ProjectID:  projectID,
			Technology: tech,
			OrderIndex: i,
		})
	}
	return rows
}
