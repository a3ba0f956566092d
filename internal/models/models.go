package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"        json:"id"`
	Email        string    `gorm:"size:128;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:256;not null"           json:"-"`
	Name         string    `gorm:"size:32;not null"            json:"name"`
	IsActive     bool      `gorm:"default:true"                json:"is_active"`
	IsSuperuser  bool      `gorm:"default:false"               json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	Brands       []Brand   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type Brand struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"                           json:"id"`
	Name        string    `gorm:"size:64;not null;uniqueIndex:idx_owner_name"    json:"name"`
	About       string    `json:"about"`
	SocialMedia string    `gorm:"size:256"  json:"social_media"`
	Website     string    `gorm:"size:256"  json:"website"`
	Email       string    `gorm:"size:128"  json:"email"`
	Phone       string    `gorm:"size:128"  json:"phone"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_owner_name"  json:"owner_id"`
	Products    []Product `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (b *Brand) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

type Product struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"                          json:"id"`
	Title        string    `gorm:"size:128;not null;uniqueIndex:idx_brand_title" json:"title"`
	Description  string    `json:"description"`
	DiscountRate float64   `gorm:"not null" json:"discount_rate"`
	Image        []byte    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	BrandID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_brand_title" json:"brand_id"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
