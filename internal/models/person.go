package models

// Person is a staff member. Referenced by assignments as the responsible
// party and by assignment work items as the executor.
type Person struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255;index" json:"full_name"`
	Login    string `gorm:"size:255;uniqueIndex" json:"login"`
	Password string `gorm:"size:255" json:"password"`
	Age      int    `json:"age"`
	RoleID   uint   `gorm:"index" json:"role_id"`
	IsActive bool   `json:"is_active"`
}

// TableName keeps the original table name; GORM would otherwise
// pluralize Person to "people".
func (Person) TableName() string { return "persons" }
