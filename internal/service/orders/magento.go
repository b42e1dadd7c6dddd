package orders

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"support-chat-backend/internal/env"
	"support-chat-backend/internal/model"

	"github.com/tidwall/gjson"
)

// Service looks orders up in Magento by increment id via the REST
// searchCriteria API.
type Service struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

func New() *Service {
	return NewWithConfig(
		env.MustGet(env.MagentoAPIURL),
		env.MustGet(env.MagentoAPIToken),
		&http.Client{Timeout: 15 * time.Second},
	)
}

func NewWithConfig(baseURL, apiToken string, client *http.Client) *Service {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Service{
		baseURL:  baseURL,
		apiToken: apiToken,
		client:   client,
	}
}

// GetOrderDetails returns the order matching the given number, or nil
// when Magento has no such order.
func (s *Service) GetOrderDetails(ctx context.Context, orderNumber string) (*model.OrderDetails, error) {
	body, err := s.get(ctx, "/rest/V1/orders", orderNumber)
	if err != nil {
		return nil, fmt.Errorf("fetch order %s: %w", orderNumber, err)
	}

	order := gjson.GetBytes(body, "items.0")
	if !order.Exists() {
		return nil, nil
	}

	tracking, err := s.getTrackingInfo(ctx, orderNumber)
	if err != nil {
		// Tracking is best-effort; the order itself is still useful.
		log.Printf("orders: tracking lookup for %s failed: %v", orderNumber, err)
		tracking = nil
	}

	return formatOrderDetails(order, tracking), nil
}

func (s *Service) getTrackingInfo(ctx context.Context, orderNumber string) ([]model.TrackingInfo, error) {
	body, err := s.get(ctx, "/rest/V1/shipments", orderNumber)
	if err != nil {
		return nil, err
	}

	var tracks []model.TrackingInfo
	gjson.GetBytes(body, "items").ForEach(func(_, shipment gjson.Result) bool {
		shipment.Get("tracks").ForEach(func(_, track gjson.Result) bool {
			tracks = append(tracks, model.TrackingInfo{
				Number:  track.Get("track_number").String(),
				Carrier: track.Get("carrier_code").String(),
			})
			return true
		})
		return true
	})
	return tracks, nil
}

func (s *Service) get(ctx context.Context, path, orderNumber string) ([]byte, error) {
	query := url.Values{}
	query.Set("searchCriteria[filterGroups][0][filters][0][field]", "increment_id")
	query.Set("searchCriteria[filterGroups][0][filters][0][value]", orderNumber)
	query.Set("searchCriteria[filterGroups][0][filters][0][condition_type]", "eq")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("magento api: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

func formatOrderDetails(order gjson.Result, tracking []model.TrackingInfo) *model.OrderDetails {
	items := make([]model.OrderItem, 0)
	order.Get("items").ForEach(func(_, item gjson.Result) bool {
		items = append(items, model.OrderItem{
			Name:     item.Get("name").String(),
			Quantity: item.Get("qty_ordered").Float(),
			Price:    item.Get("price").Float(),
		})
		return true
	})

	return &model.OrderDetails{
		OrderNumber: order.Get("increment_id").String(),
		Status:      order.Get("status").String(),
		Items:       items,
		Shipping: model.OrderShipping{
			Method:   order.Get("shipping_description").String(),
			Tracking: tracking,
		},
		Totals: model.OrderTotals{
			Subtotal: order.Get("subtotal").Float(),
			Shipping: order.Get("shipping_amount").Float(),
			Tax:      order.Get("tax_amount").Float(),
			Total:    order.Get("grand_total").Float(),
		},
		Dates: model.OrderDates{
			Ordered: order.Get("created_at").String(),
			Updated: order.Get("updated_at").String(),
		},
	}
}
