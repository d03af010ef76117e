package models

import "time"

// Product represents a product in the catalog.
// Availability defaults to true when a product is created and is only ever
// changed through a full replace (PUT) or the availability toggle (PATCH).
type Product struct {
	ID           int     `json:"id" gorm:"primaryKey"`
	Name         string  `json:"name" gorm:"type:varchar(100)" validate:"required,max=100"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Availability bool    `json:"availability" gorm:"default:true"`
	// Audit timestamps are maintained by GORM but never serialized in API
	// responses. Deletes are hard deletes, so there is no DeletedAt column;
	// a soft-delete visibility flag was considered and not implemented.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName overrides the default GORM table name.
func (Product) TableName() string {
	return "products"
}
