package pubsub

import (
	"gallery/internal/domain/service"
)

// Message attribute keys. The mailer reads request_id for log correlation.
const (
	attrEventType     = "event_type"
	attrEntitlementID = "entitlement_id"
	attrRequestID     = "request_id"

	eventTypePurchaseConfirmed = "purchase.confirmed"
)

// PubSubPushMessage is the envelope Pub/Sub push subscriptions POST to HTTP
// endpoints. The local publisher produces the same shape.
type PubSubPushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

func purchaseConfirmedAttributes(event *service.PurchaseConfirmedEvent) map[string]string {
	attributes := map[string]string{
		attrEventType:     eventTypePurchaseConfirmed,
		attrEntitlementID: event.EntitlementID,
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return attributes
}
