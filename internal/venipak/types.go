// Package venipak implements the client for the Venipak parcel carrier API:
// XML shipment import and JSON pickup point, locker and post office listings.
package venipak

import "encoding/xml"

// SendRequest is the XML envelope for shipment registration.
type SendRequest struct {
	XMLName   xml.Name   `xml:"send_request"`
	User      User       `xml:"user"`
	Shipments []Shipment `xml:"shipment"`
}

// User carries the API credentials inside the request body, as the
// import endpoint requires.
type User struct {
	Name   string `xml:"name"`
	Pass   string `xml:"pass"`
	APIKey string `xml:"api_key,omitempty"`
}

// Shipment is a single consignment inside a send request.
type Shipment struct {
	Consignee  Party       `xml:"consignee"`
	Consignor  Party       `xml:"consignor"`
	Attributes Attributes  `xml:"attribute"`
	Packs      []ParcelXML `xml:"pack"`
}

// Party is one side of a shipment.
type Party struct {
	Name        string `xml:"name"`
	Company     string `xml:"company_name,omitempty"`
	Country     string `xml:"country"`
	City        string `xml:"city"`
	Address     string `xml:"address"`
	PostalCode  string `xml:"post_code"`
	ContactTel  string `xml:"contact_tel,omitempty"`
	ContactMail string `xml:"contact_email,omitempty"`
}

// Attributes holds shipment-level delivery options.
type Attributes struct {
	// ShipmentType is "nwo" for standard door delivery or "pickup_point"
	// for terminal delivery.
	ShipmentType string `xml:"shipment_type,omitempty"`
	// PickupPointID targets a concrete pickup point or locker.
	PickupPointID string `xml:"pickup_point_id,omitempty"`
	// DeliveryType is "express" for the express service, empty otherwise.
	DeliveryType string `xml:"delivery_type,omitempty"`
	Comment      string `xml:"comment_text,omitempty"`
}

// ParcelXML describes one physical parcel of a shipment.
type ParcelXML struct {
	// Weight is the parcel weight in kilograms.
	Weight float64 `xml:"weight"`
	// Volume is the parcel volume in cubic meters.
	Volume float64 `xml:"volume,omitempty"`
	// Dimensions in centimeters.
	Length float64 `xml:"length,omitempty"`
	Width  float64 `xml:"width,omitempty"`
	Height float64 `xml:"height,omitempty"`
	// DocNo is the order reference printed on the label.
	DocNo string `xml:"doc_no,omitempty"`
}

// SendResponse is the XML reply of the import endpoint.
type SendResponse struct {
	XMLName xml.Name `xml:"response"`
	Type    string   `xml:"type,attr,omitempty"`
	Text    string   `xml:"text"`
	// Packs lists assigned tracking numbers, one per parcel.
	Packs []ResponsePack `xml:"pack"`
	Error *ResponseError `xml:"error"`
}

// ResponsePack carries one assigned tracking number.
type ResponsePack struct {
	PackNo string `xml:"pack_no,attr"`
	DocNo  string `xml:"doc_no,attr,omitempty"`
}

// ResponseError is the carrier-side error element.
type ResponseError struct {
	Code int    `xml:"code"`
	Text string `xml:"text"`
}

// pickupPointJSON mirrors the carrier's pickup point listing payload.
// The three listing endpoints (pickup points, lockers, post offices)
// share this shape.
type pickupPointJSON struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Code         string  `json:"code"`
	Address      string  `json:"address"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Zip          string  `json:"zip"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	WorkingHours string  `json:"working_hours"`
	MaxWeight    float64 `json:"max_weight"`
	Available    *bool   `json:"available"`
}

// trackingEventJSON mirrors one scan event of the tracking endpoint.
type trackingEventJSON struct {
	Date     string `json:"date"`
	Status   string `json:"status"`
	Terminal string `json:"terminal"`
}
