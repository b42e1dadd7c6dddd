package model

type OrderItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type TrackingInfo struct {
	Number  string `json:"number"`
	Carrier string `json:"carrier"`
}

type OrderShipping struct {
	Method   string         `json:"method"`
	Tracking []TrackingInfo `json:"tracking,omitempty"`
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type OrderDates struct {
	Ordered string `json:"ordered"`
	Updated string `json:"updated,omitempty"`
}

// OrderDetails is the normalized shape of a storefront order, independent
// of the Magento wire format.
type OrderDetails struct {
	OrderNumber string        `json:"orderNumber"`
	Status      string        `json:"status"`
	Items       []OrderItem   `json:"items"`
	Shipping    OrderShipping `json:"shipping"`
	Totals      OrderTotals   `json:"totals"`
	Dates       OrderDates    `json:"dates"`
}
