package container

import "time"

// TrackingInfo holds the carrier metadata recorded when a container is sent.
// None of the fields are mandatory: shipment progress must never be blocked
// by missing metadata, so incompleteness is surfaced as a data-quality
// warning instead of a validation error.
type TrackingInfo struct {
	Number  string
	Carrier string
	Link    string
	ETA     *time.Time
}

// IsComplete reports whether the metadata identifies the shipment: a
// tracking number and a carrier name are both present.
func (t TrackingInfo) IsComplete() bool {
	return t.Number != "" && t.Carrier != ""
}

// IsEmpty reports whether no metadata was supplied at all.
func (t TrackingInfo) IsEmpty() bool {
	return t.Number == "" && t.Carrier == "" && t.Link == "" && t.ETA == nil
}
