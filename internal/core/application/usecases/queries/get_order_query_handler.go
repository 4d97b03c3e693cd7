package queries

import (
	"context"
	"encoding/json"

	"shiptrack/internal/core/domain/model/kernel"

	"github.com/cockroachdb/pebble"
)

// orderRecord mirrors the stored JSON layout of an order.
type orderRecord struct {
	ID               string         `json:"id"`
	Description      string         `json:"description"`
	Weight           float64        `json:"weight"`
	SenderID         string         `json:"sender_id"`
	ReceiverID       string         `json:"receiver_id"`
	SenderLocation   geoPointRecord `json:"sender_location"`
	ReceiverLocation geoPointRecord `json:"receiver_location"`
	Status           string         `json:"status"`
	InitialAmount    float64        `json:"initial_amount"`
	CreatedAt        int64          `json:"created_at"`
	UpdatedAt        *int64         `json:"updated_at"`
}

func (r orderRecord) toResponse() (GetOrderQueryResponse, error) {
	id, err := kernel.UUIDFromString(r.ID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	sender, err := kernel.UUIDFromString(r.SenderID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	receiver, err := kernel.UUIDFromString(r.ReceiverID)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	senderLocation, err := r.SenderLocation.toGeoPoint()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	receiverLocation, err := r.ReceiverLocation.toGeoPoint()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:               id,
		Description:      r.Description,
		Weight:           r.Weight,
		Sender:           sender,
		Receiver:         receiver,
		SenderLocation:   senderLocation,
		ReceiverLocation: receiverLocation,
		Status:           r.Status,
		InitialAmount:    r.InitialAmount,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}, nil
}

// GetOrderQueryHandler retrieves a single order record from storage.
type GetOrderQueryHandler struct {
	db *pebble.DB
}

// NewGetOrderQueryHandler creates a handler for single-order retrieval.
func NewGetOrderQueryHandler(db *pebble.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns an object not found error when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	raw, err := getRecord(h.db, ordersNamespace, query.OrderID().String())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	var record orderRecord
	if err = json.Unmarshal(raw, &record); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return record.toResponse()
}
