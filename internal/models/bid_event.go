package models

// BidEvent represents an accepted bid published to Kafka.
type BidEvent struct {
	EventID   string  `json:"event_id"`   // EventID is a unique identifier for the event.
	Timestamp int64   `json:"timestamp"`  // Timestamp is the Unix timestamp (in seconds) when the bid was accepted.
	Amount    float64 `json:"amount"`     // Amount is the accepted bid amount.
	BidderID  string  `json:"bidder_id"`  // BidderID is the identifier of the bidding user.
	VehicleID string  `json:"vehicle_id"` // VehicleID is the identifier of the vehicle the bid targets.
	SellerID  string  `json:"seller_id"`  // SellerID is the identifier of the listing's seller.
}
