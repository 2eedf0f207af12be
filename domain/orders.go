package domain

import (
	"time"

	"gorm.io/datatypes"
)

const (
	OrderStatusPendingPayment  = "pending_payment"
	OrderStatusPendingDelivery = "pending_delivery"
	OrderStatusDelivered       = "product_delivered"
)

const (
	PaymentMethodCOD   = "cod"
	PaymentMethodEsewa = "esewa"
)

const (
	SearchByTransactionID = "transaction_id"
	SearchByCustomerName  = "customer_name"
)

// DeliveryDetails is stored as a JSONB column on the order. ContactNumber is
// a fixed-length digit string, not a number.
type DeliveryDetails struct {
	UserID        string `json:"user_id"`
	FullName      string `json:"full_name" validate:"required"`
	Province      string `json:"province" validate:"required"`
	District      string `json:"district" validate:"required"`
	LocalArea     string `json:"local_area" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,len=10,numeric"`
}

// OrderLine snapshots a product at order time so later catalog edits do not
// rewrite order history.
type OrderLine struct {
	ProductID   uint64  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

// CREATE TABLE public.orders (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     transaction_uuid TEXT NOT NULL,
//     total_amount     NUMERIC NOT NULL,
//     status           TEXT NOT NULL,
//     payment          BOOLEAN NOT NULL DEFAULT FALSE,
//     payment_method   TEXT NOT NULL,
//     delivery_details JSONB NOT NULL,
//     products         JSONB NOT NULL,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type Orders struct {
	ID              uint64                              `gorm:"primaryKey;autoIncrement" json:"id"`
	TransactionUUID string                              `gorm:"column:transaction_uuid;type:text;not null" json:"transaction_uuid"`
	TotalAmount     float64                             `gorm:"column:total_amount;type:numeric" json:"total_amount"`
	Status          string                              `gorm:"column:status;type:text" json:"status"`
	Payment         bool                                `gorm:"column:payment;default:false" json:"payment"`
	PaymentMethod   string                              `gorm:"column:payment_method;type:text" json:"payment_method"`
	DeliveryDetails datatypes.JSONType[DeliveryDetails] `gorm:"column:delivery_details;type:jsonb" json:"delivery_details"`
	Products        datatypes.JSONSlice[OrderLine]      `gorm:"column:products;type:jsonb" json:"products"`
	CreatedAt       time.Time                           `gorm:"column:created_at" json:"created_at"`
}

func (Orders) TableName() string {
	return "orders"
}

// OrderFilter is an AND-conjunction; zero values mean "no filter". Payment is
// a pointer so the console can ask for paid, unpaid, or either.
type OrderFilter struct {
	Status        string
	PaymentMethod string
	Payment       *bool
	Search        string
	SearchBy      string
}
