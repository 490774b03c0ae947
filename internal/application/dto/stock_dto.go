package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiveRequest body para POST /api/stock/receipts.
type ReceiveRequest struct {
	ItemID         string          `json:"item_id" validate:"required"`
	Quantity       int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	Supplier       string          `json:"supplier"`
	BatchNumber    string          `json:"batch_number"`
	ProductionDate *time.Time      `json:"production_date,omitempty"`
	ExpiryDate     *time.Time      `json:"expiry_date,omitempty"`
	OperatorID     string          `json:"operator_id" validate:"required"`
	Notes          string          `json:"notes"`
}

// IssueRequest body para POST /api/stock/issues.
type IssueRequest struct {
	ItemID     string          `json:"item_id" validate:"required"`
	Quantity   int64           `json:"quantity" validate:"required,gt=0"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Recipient  string          `json:"recipient"`
	Purpose    string          `json:"purpose"`
	OperatorID string          `json:"operator_id" validate:"required"`
	Notes      string          `json:"notes"`
}

// StockStatusResponse fila de estado de inventario por item.
type StockStatusResponse struct {
	ItemID       string `json:"item_id"`
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	CategoryName string `json:"category_name"`
	Unit         string `json:"unit"`
	MinStock     int64  `json:"min_stock"`
	MaxStock     int64  `json:"max_stock"`
	CurrentStock int64  `json:"current_stock"`
	Status       string `json:"status"`
}

// TransactionResponse fila de historial de entradas o salidas.
type TransactionResponse struct {
	ID           string          `json:"id"`
	Kind         string          `json:"kind"`
	ItemName     string          `json:"item_name"`
	Unit         string          `json:"unit"`
	Quantity     int64           `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Counterparty string          `json:"counterparty"` // proveedor en entradas, destinatario en salidas
	Purpose      string          `json:"purpose,omitempty"`
	BatchNumber  string          `json:"batch_number,omitempty"`
	OperatorName string          `json:"operator_name"`
	OccurredAt   time.Time       `json:"occurred_at"`
	Notes        string          `json:"notes,omitempty"`
}

// AlertSummaryResponse conteos agregados del evaluador de estado.
type AlertSummaryResponse struct {
	Insufficient int `json:"insufficient"`
	Excess       int `json:"excess"`
}

// AlertItem item destacado dentro de una notificación.
type AlertItem struct {
	ItemCode     string `json:"item_code"`
	ItemName     string `json:"item_name"`
	CurrentStock int64  `json:"current_stock"`
	MinStock     int64  `json:"min_stock"`
	MaxStock     int64  `json:"max_stock"`
}

// NotificationResponse payload de notificación de alertas: los primeros 5
// items de cada clase más el conteo restante.
type NotificationResponse struct {
	InsufficientCount int         `json:"insufficient_count"`
	ExcessCount       int         `json:"excess_count"`
	TopInsufficient   []AlertItem `json:"top_insufficient"`
	MoreInsufficient  int         `json:"more_insufficient"`
	TopExcess         []AlertItem `json:"top_excess"`
	MoreExcess        int         `json:"more_excess"`
	GeneratedAt       time.Time   `json:"generated_at"`
}
