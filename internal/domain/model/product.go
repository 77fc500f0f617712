package model

// Product 商品（単一テーブル。他エンティティとの関連なし）
type Product struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Price        float64 `gorm:"not null" json:"price"`
	Availability bool    `gorm:"not null;default:true" json:"availability"`
}
