package models

// Role identifies a job function within the shop (e.g. painter, master).
type Role struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Ident    string `gorm:"size:255;index" json:"ident"`
	Name     string `gorm:"size:255;index" json:"name"`
	IsActive bool   `json:"is_active"`
}

// Car is a vehicle model catalog entry, not an individual physical vehicle.
// Physical vehicle identity is carried on the assignment via VIN / car number.
type Car struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;index" json:"name"`
	IsActive bool   `json:"is_active"`
}

// Color is a paint color catalog entry.
type Color struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:255;index" json:"name"`
	IsActive bool   `json:"is_active"`
}

// Work is a catalog entry for a type of job (e.g. oil change, repaint).
type Work struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Ident       string `gorm:"size:255;index" json:"ident"`
	Name        string `gorm:"size:255;index" json:"name"`
	Description string `gorm:"size:2000" json:"description"`
	IsActive    bool   `json:"is_active"`
}
