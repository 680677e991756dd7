package http

// CreateOrderRequest is the body of POST /api/v1/orders. OrderType defaults
// to Special and ScheduledDate to today when omitted; scheduler-created
// Standard orders do not come through this endpoint.
type CreateOrderRequest struct {
	ClientID      string `json:"clientId"`
	TotalUnits    int    `json:"totalUnits"`
	OrderType     string `json:"orderType,omitempty"`
	ScheduledDate string `json:"scheduledDate,omitempty"`
}

// CreateOrderResponse returns the generated order identifier.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// ConfirmDeliveryRequest is the body of POST /api/v1/orders/:id/deliver.
// Every order item must appear in Items; quantities may differ from the
// allocation.
type ConfirmDeliveryRequest struct {
	DeliveredAt string               `json:"deliveredAt,omitempty"`
	Items       []DeliveredItemInput `json:"items"`
}

// DeliveredItemInput is one per-product delivered quantity.
type DeliveredItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ReturnOrderRequest is the body of POST /api/v1/orders/:id/return.
type ReturnOrderRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelOrderRequest is the body of POST /api/v1/orders/:id/cancel.
type CancelOrderRequest struct {
	Note string `json:"note,omitempty"`
}

// PendingOrderResponse is one entry of GET /api/v1/orders/pending.
type PendingOrderResponse struct {
	ID                  string `json:"id"`
	ClientID            string `json:"clientId"`
	OrderType           string `json:"orderType"`
	Status              string `json:"status"`
	Substatus           string `json:"substatus"`
	RequestedTotalUnits int    `json:"requestedTotalUnits"`
	ScheduledDate       string `json:"scheduledDate"`
}

// ClientReplenishmentResponse is the body of
// GET /api/v1/clients/:id/replenishment.
type ClientReplenishmentResponse struct {
	ClientID                  string  `json:"clientId"`
	Name                      string  `json:"name"`
	StandardQuantity          int     `json:"standardQuantity"`
	StandardPeriodicityDays   int     `json:"standardPeriodicityDays"`
	LastEffectiveDeliveryDate *string `json:"lastEffectiveDeliveryDate,omitempty"`
	NextDueDate               *string `json:"nextDueDate,omitempty"`
	Active                    bool    `json:"active"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
