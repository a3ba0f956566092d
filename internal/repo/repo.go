package repo

import "gorm.io/gorm"

// GormRepo is the ownership store: users, brands and products behind one
// gorm handle.
type GormRepo struct {
	DB *gorm.DB
}
