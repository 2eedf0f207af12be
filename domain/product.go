package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_name TEXT NOT NULL,
//     description  TEXT,
//     price        NUMERIC NOT NULL,
//     category     TEXT NOT NULL,
//     image_url    TEXT,
//     available    INTEGER NOT NULL DEFAULT 0,
//     created_at   TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductName string    `gorm:"column:product_name;type:text;not null" json:"product_name"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	Price       float64   `gorm:"column:price;type:numeric" json:"price"`
	Category    Category  `gorm:"column:category;type:text" json:"category"`
	ImageURL    string    `gorm:"column:image_url;type:text" json:"image_url"`
	Available   int       `gorm:"column:available;default:0" json:"available"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
