package generator

import (
	"time"

	"github.com/shopspring/decimal"
)

// 生成レコードは作成後に変更しない値オブジェクト。
// 参照は外部キー文字列のコピーのみで表現する。
// JSONキーはrawデータのペイロード形式（create_time/delete_time）に合わせる。

type User struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Username    string    `gorm:"column:user_name" json:"username"`
	RealName    string    `json:"real_name"`
	PhoneNumber string    `json:"phone_number"`
	Sex         string    `json:"sex"`
	Job         string    `json:"job"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Password    string    `json:"password"`
	BirthOfDate time.Time `gorm:"column:birth_of_date" json:"birth_of_date"`
	Age         int       `json:"age"`
	CreatedAt   time.Time `json:"create_time"`
	DeletedAt   time.Time `json:"delete_time"`
}

func (User) TableName() string { return "users" }

type Address struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index" json:"user_id"`
	Title       string    `json:"title"`
	AddressLine string    `json:"address_line"`
	Country     string    `json:"country"`
	City        string    `json:"city"`
	PostalCode  string    `json:"postal_code"`
	CreatedAt   time.Time `json:"create_time"`
	DeletedAt   time.Time `json:"delete_time"`
}

func (Address) TableName() string { return "addresses" }

type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"create_time"`
	DeletedAt   time.Time `json:"delete_time"`
}

func (Category) TableName() string { return "categories" }

type Subcategory struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	ParentID    string    `gorm:"index" json:"parent_id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"create_time"`
	DeletedAt   time.Time `json:"delete_time"`
}

func (Subcategory) TableName() string { return "sub_categories" }

type Product struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	CategoryID  string    `gorm:"index" json:"category_id"`
	CreatedAt   time.Time `json:"create_time"`
	DeletedAt   time.Time `json:"delete_time"`
}

func (Product) TableName() string { return "products" }

// SkuのIDは祖先IDの末尾3文字を連結した複合ID（refid.go参照）。
type Sku struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	ProductID string          `gorm:"index" json:"product_id"`
	Price     decimal.Decimal `gorm:"type:numeric(10,2)" json:"price"`
	Quantity  int64           `gorm:"column:stock" json:"quantity"`
	CreatedAt time.Time       `json:"create_time"`
	DeletedAt time.Time       `json:"delete_time"`
}

func (Sku) TableName() string { return "products_skus" }

type Wishlist struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"index" json:"user_id"`
	ProductsSkuID string    `gorm:"index" json:"products_sku_id"`
	CreatedAt     time.Time `json:"create_time"`
	DeletedAt     time.Time `json:"delete_time"`
}

func (Wishlist) TableName() string { return "wishlist" }

type PaymentStatus string

const (
	PaymentStatusSuccess  PaymentStatus = "Success"
	PaymentStatusPending  PaymentStatus = "Pending"
	PaymentStatusFailed   PaymentStatus = "Failed"
	PaymentStatusRefunded PaymentStatus = "Refunded"
)

type PaymentDetails struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2)" json:"amount"`
	Provider  string          `json:"provider"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"create_time"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (PaymentDetails) TableName() string { return "payment_details" }

type OrderDetails struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index" json:"user_id"`
	PaymentID string    `gorm:"index" json:"payment_id"`
	CreatedAt time.Time `json:"create_time"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderDetails) TableName() string { return "order_details" }

type OrderItem struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"index" json:"order_id"`
	ProductsSkuID string    `gorm:"index" json:"products_sku_id"`
	Quantity      int64     `json:"quantity"`
	CreatedAt     time.Time `json:"create_time"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (OrderItem) TableName() string { return "order_item" }

type Cart struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	OrderID       string    `gorm:"index" json:"order_id"`
	ProductsSkuID string    `gorm:"index" json:"products_sku_id"`
	Quantity      int64     `json:"quantity"`
	CreatedAt     time.Time `json:"create_time"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func (Cart) TableName() string { return "cart" }
