package orders

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const orderJSON = `{
	"items": [{
		"increment_id": "000141624567",
		"status": "complete",
		"subtotal": 80.0,
		"shipping_amount": 10.0,
		"tax_amount": 9.99,
		"grand_total": 99.99,
		"shipping_description": "Flat Rate - Fixed",
		"created_at": "2024-05-01 10:00:00",
		"updated_at": "2024-05-03 09:30:00",
		"items": [
			{"name": "Blue Hoodie", "qty_ordered": 2, "price": 30.0},
			{"name": "Socks", "qty_ordered": 1, "price": 20.0}
		]
	}]
}`

const shipmentJSON = `{
	"items": [{
		"tracks": [
			{"track_number": "1Z999AA10123456784", "carrier_code": "ups"}
		]
	}]
}`

func newMagentoStub(t *testing.T, ordersBody, shipmentsBody string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		if got := r.URL.Query().Get("searchCriteria[filterGroups][0][filters][0][field]"); got != "increment_id" {
			t.Errorf("unexpected filter field: %q", got)
		}

		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/rest/V1/orders"):
			w.Write([]byte(ordersBody))
		case strings.HasSuffix(r.URL.Path, "/rest/V1/shipments"):
			w.Write([]byte(shipmentsBody))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestGetOrderDetails(t *testing.T) {
	server := newMagentoStub(t, orderJSON, shipmentJSON)
	defer server.Close()

	service := NewWithConfig(server.URL, "test-token", server.Client())

	details, err := service.GetOrderDetails(context.Background(), "000141624567")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details == nil {
		t.Fatal("expected order details")
	}
	if details.OrderNumber != "000141624567" || details.Status != "complete" {
		t.Fatalf("unexpected order: %+v", details)
	}
	if details.Totals.Total != 99.99 || details.Totals.Subtotal != 80.0 {
		t.Fatalf("unexpected totals: %+v", details.Totals)
	}
	if len(details.Items) != 2 || details.Items[0].Name != "Blue Hoodie" || details.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items: %+v", details.Items)
	}
	if details.Shipping.Method != "Flat Rate - Fixed" {
		t.Fatalf("unexpected shipping: %+v", details.Shipping)
	}
	if len(details.Shipping.Tracking) != 1 || details.Shipping.Tracking[0].Number != "1Z999AA10123456784" {
		t.Fatalf("unexpected tracking: %+v", details.Shipping.Tracking)
	}
	if details.Dates.Ordered != "2024-05-01 10:00:00" {
		t.Fatalf("unexpected dates: %+v", details.Dates)
	}
}

func TestGetOrderDetailsNoMatch(t *testing.T) {
	server := newMagentoStub(t, `{"items": []}`, `{"items": []}`)
	defer server.Close()

	service := NewWithConfig(server.URL, "test-token", server.Client())

	details, err := service.GetOrderDetails(context.Background(), "999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details != nil {
		t.Fatalf("expected nil for unknown order, got %+v", details)
	}
}

func TestGetOrderDetailsSurvivesTrackingFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/rest/V1/orders") {
			w.Write([]byte(orderJSON))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	service := NewWithConfig(server.URL, "test-token", server.Client())

	details, err := service.GetOrderDetails(context.Background(), "000141624567")
	if err != nil {
		t.Fatalf("tracking failure must not fail the lookup: %v", err)
	}
	if details == nil || len(details.Shipping.Tracking) != 0 {
		t.Fatalf("expected order without tracking, got %+v", details)
	}
}

func TestGetOrderDetailsServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	service := NewWithConfig(server.URL, "bad-token", server.Client())

	if _, err := service.GetOrderDetails(context.Background(), "000141624567"); err == nil {
		t.Fatal("expected error on non-200 status")
	}
}
