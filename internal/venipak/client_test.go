package venipak

import (
	"context"
	"encoding/xml"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ScriptVenture/checkout-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest_XMLShape(t *testing.T) {
	req := SendRequest{
		User: User{Name: "shop", Pass: "secret", APIKey: "key"},
		Shipments: []Shipment{
			{
				Consignee: Party{Name: "Jonas Jonaitis", Country: "LT", City: "Vilnius", Address: "Gedimino pr. 1", PostalCode: "01103"},
				Consignor: Party{Name: "Shop UAB", Country: "LT", City: "Kaunas", Address: "Laisvės al. 10", PostalCode: "44240"},
				Packs:     []ParcelXML{{Weight: 1.5, DocNo: "order_1"}},
			},
		},
	}

	out, err := xml.Marshal(req)
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<send_request>")
	assert.Contains(t, s, "<user><name>shop</name>")
	assert.Contains(t, s, "<consignee>")
	assert.Contains(t, s, "<consignor>")
	assert.Contains(t, s, "<pack>")
}

func TestClient_CreateShipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/import/send.php", r.URL.Path)

		var req SendRequest
		require.NoError(t, xml.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "shop", req.User.Name)
		require.Len(t, req.Shipments, 1)

		w.Header().Set("Content-Type", "text/xml")
		_, _ = w.Write([]byte(`<response><text>ok</text><pack pack_no="V0012345678" doc_no="order_1"/></response>`))
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	shipment, err := client.CreateShipment(context.Background(), Shipment{
		Consignee: Party{Name: "Jonas", Country: "LT", City: "Vilnius", Address: "x", PostalCode: "01103"},
		Packs:     []ParcelXML{{Weight: 1.5, DocNo: "order_1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "V0012345678", shipment.TrackingNumber)
	assert.Equal(t, "venipak", shipment.Carrier)
}

func TestClient_CreateShipment_CarrierError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<response><error><code>1002</code><text>invalid post code</text></error></response>`))
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	_, err := client.CreateShipment(context.Background(), Shipment{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid post code")
}

func TestClient_CreateShipment_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	_, err := client.CreateShipment(context.Background(), Shipment{})
	assert.Error(t, err)
}

func TestClient_TrackShipment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ws/tracking", r.URL.Path)
		assert.Equal(t, "V0012345678", r.URL.Query().Get("number"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"date":"2026-08-01 10:00","status":"Delivered","terminal":"Vilnius T1"}]`))
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	events, err := client.TrackShipment(context.Background(), "V0012345678")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Delivered", events[0].Status)
	assert.Equal(t, "Vilnius T1", events[0].Location)
}

func TestClient_TrackShipment_EmptyNumber(t *testing.T) {
	client := NewClient("key", "shop", "secret")
	_, err := client.TrackShipment(context.Background(), "")
	assert.Error(t, err)
}

func TestClient_ListPickupPoints_BestEffortUnion(t *testing.T) {
	// The locker endpoint fails; the lookup must still return the union of
	// the two remaining endpoints.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ws/get_pickup_points":
			_, _ = w.Write([]byte(`[{"id":1,"name":"Vilnius PP","city":"Vilnius","country":"LT","zip":"01103"}]`))
		case "/ws/get_lockers":
			w.WriteHeader(http.StatusInternalServerError)
		case "/ws/get_post_offices":
			_, _ = w.Write([]byte(`[{"id":2,"name":"Kaunas PO","city":"Kaunas","country":"LT","zip":"44240"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	points, err := client.ListPickupPoints(context.Background(), PickupPointFilter{Country: "LT"})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, TypePickupPoint, points[0].Type)
	assert.Equal(t, TypePostOffice, points[1].Type)
}

func TestClient_ListPickupPoints_TypeFilterSkipsOtherEndpoints(t *testing.T) {
	var calledPaths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calledPaths = append(calledPaths, r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient("key", "shop", "secret", WithBaseURL(srv.URL))

	_, err := client.ListPickupPoints(context.Background(), PickupPointFilter{Type: TypeLocker})
	require.NoError(t, err)
	assert.Equal(t, []string{"/ws/get_lockers"}, calledPaths)
}

func TestDedupePoints(t *testing.T) {
	tests := []struct {
		name     string
		input    []model.PickupPoint
		expected []string // expected types in order
	}{
		{
			name: "pickup point wins over locker with same id",
			input: []model.PickupPoint{
				{ID: "1", Type: TypeLocker, Available: true},
				{ID: "1", Type: TypePickupPoint, Available: true},
			},
			expected: []string{TypePickupPoint},
		},
		{
			name: "pickup point seen first is kept",
			input: []model.PickupPoint{
				{ID: "1", Type: TypePickupPoint, Available: true},
				{ID: "1", Type: TypeLocker, Available: true},
			},
			expected: []string{TypePickupPoint},
		},
		{
			name: "distinct ids are all kept",
			input: []model.PickupPoint{
				{ID: "1", Type: TypeLocker, Available: true},
				{ID: "2", Type: TypePostOffice, Available: true},
			},
			expected: []string{TypeLocker, TypePostOffice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DedupePoints(tt.input)
			require.Len(t, result, len(tt.expected))
			for i, typ := range tt.expected {
				assert.Equal(t, typ, result[i].Type)
			}
		})
	}
}

func TestFilterPoints(t *testing.T) {
	points := []model.PickupPoint{
		{ID: "1", City: "Vilnius", Country: "LT", Zip: "01103", Type: TypePickupPoint, Available: true},
		{ID: "2", City: "Kaunas", Country: "LT", Zip: "44240", Type: TypeLocker, Available: true},
		{ID: "3", City: "Riga", Country: "LV", Zip: "1010", Type: TypePickupPoint, Available: true},
		{ID: "4", City: "Vilnius", Country: "LT", Zip: "01104", Type: TypePickupPoint, Available: false},
	}

	t.Run("filters unavailable points", func(t *testing.T) {
		result := FilterPoints(points, PickupPointFilter{})
		assert.Len(t, result, 3)
	})

	t.Run("filters by country case-insensitively", func(t *testing.T) {
		result := FilterPoints(points, PickupPointFilter{Country: "lt"})
		assert.Len(t, result, 2)
	})

	t.Run("filters by city", func(t *testing.T) {
		result := FilterPoints(points, PickupPointFilter{City: "vilnius"})
		require.Len(t, result, 1)
		assert.Equal(t, "1", result[0].ID)
	})

	t.Run("filters by type", func(t *testing.T) {
		result := FilterPoints(points, PickupPointFilter{Type: TypeLocker})
		require.Len(t, result, 1)
		assert.Equal(t, "2", result[0].ID)
	})

	t.Run("applies limit", func(t *testing.T) {
		result := FilterPoints(points, PickupPointFilter{Limit: 1})
		assert.Len(t, result, 1)
	})
}
