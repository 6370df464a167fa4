package models

// VehicleType is a size class (porte) that prices a service.
type VehicleType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:30;uniqueIndex" json:"name"`
	Description string `gorm:"size:255" json:"description"`
	Active      bool   `gorm:"default:true" json:"active"`
}
