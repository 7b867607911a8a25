package entity

import (
	"strconv"
	"strings"

	"gallery/internal/errors"

	"github.com/google/uuid"
)

// PurchasePurpose tags what a checkout session was opened for.
type PurchasePurpose string

const (
	PurposePromptPurchase PurchasePurpose = "prompt_purchase"
	PurposePrintOrder     PurchasePurpose = "print_order"
)

// Checkout metadata keys. legacyOrderIDKey is what the print shop checkout sets.
const (
	metadataPurposeKey   = "type"
	metadataUserIDKey    = "user_id"
	metadataArtworkIDKey = "artwork_id"
	metadataPriceKey     = "price_at_checkout"
	metadataOrderIDKey   = "order_id"
	legacyOrderIDKey     = "orderId"
)

var (
	// ErrUnknownPurpose means the metadata belongs to a checkout this service does not reconcile.
	ErrUnknownPurpose = errors.New("unknown checkout purpose")
	// ErrMalformedIntent means the purpose is known but a required field is missing or invalid.
	ErrMalformedIntent = errors.New("malformed purchase intent")
)

// PurchaseIntent is the typed form of checkout metadata. The concrete type is
// either PromptPurchaseIntent or PrintOrderIntent.
type PurchaseIntent interface {
	Purpose() PurchasePurpose
	// Metadata encodes the intent for the payment provider to echo back.
	Metadata() map[string]string
}

// PromptPurchaseIntent records who is buying which prompt at what price.
type PromptPurchaseIntent struct {
	UserID          uuid.UUID
	ArtworkID       string
	PriceAtCheckout int64
}

func (PromptPurchaseIntent) Purpose() PurchasePurpose { return PurposePromptPurchase }

func (i PromptPurchaseIntent) Metadata() map[string]string {
	return map[string]string{
		metadataPurposeKey:   string(PurposePromptPurchase),
		metadataUserIDKey:    i.UserID.String(),
		metadataArtworkIDKey: i.ArtworkID,
		metadataPriceKey:     strconv.FormatInt(i.PriceAtCheckout, 10),
	}
}

// PrintOrderIntent points at a print shop order awaiting payment.
type PrintOrderIntent struct {
	OrderID int64
}

func (PrintOrderIntent) Purpose() PurchasePurpose { return PurposePrintOrder }

func (i PrintOrderIntent) Metadata() map[string]string {
	return map[string]string{
		metadataPurposeKey: string(PurposePrintOrder),
		metadataOrderIDKey: strconv.FormatInt(i.OrderID, 10),
	}
}

// ParsePurchaseIntent validates checkout metadata into a typed intent.
// Print shop sessions predate the purpose tag, so a bare orderId is accepted.
func ParsePurchaseIntent(metadata map[string]string) (PurchaseIntent, error) {
	purpose := PurchasePurpose(strings.TrimSpace(metadata[metadataPurposeKey]))
	if purpose == "" && (metadata[legacyOrderIDKey] != "" || metadata[metadataOrderIDKey] != "") {
		purpose = PurposePrintOrder
	}

	switch purpose {
	case PurposePromptPurchase:
		return parsePromptPurchase(metadata)
	case PurposePrintOrder:
		return parsePrintOrder(metadata)
	default:
		return nil, errors.Wrapf(ErrUnknownPurpose, "purpose %q", purpose)
	}
}

func parsePromptPurchase(metadata map[string]string) (PurchaseIntent, error) {
	rawUserID := strings.TrimSpace(metadata[metadataUserIDKey])
	if rawUserID == "" {
		return nil, errors.Wrap(ErrMalformedIntent, "missing user_id")
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedIntent, "invalid user_id %q", rawUserID)
	}

	artworkID := strings.TrimSpace(metadata[metadataArtworkIDKey])
	if artworkID == "" {
		return nil, errors.Wrap(ErrMalformedIntent, "missing artwork_id")
	}

	rawPrice := strings.TrimSpace(metadata[metadataPriceKey])
	if rawPrice == "" {
		return nil, errors.Wrap(ErrMalformedIntent, "missing price_at_checkout")
	}
	price, err := strconv.ParseInt(rawPrice, 10, 64)
	if err != nil || price < 0 {
		return nil, errors.Wrapf(ErrMalformedIntent, "invalid price_at_checkout %q", rawPrice)
	}

	return PromptPurchaseIntent{
		UserID:          userID,
		ArtworkID:       artworkID,
		PriceAtCheckout: price,
	}, nil
}

func parsePrintOrder(metadata map[string]string) (PurchaseIntent, error) {
	raw := strings.TrimSpace(metadata[metadataOrderIDKey])
	if raw == "" {
		raw = strings.TrimSpace(metadata[legacyOrderIDKey])
	}
	if raw == "" {
		return nil, errors.Wrap(ErrMalformedIntent, "missing order_id")
	}

	orderID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || orderID <= 0 {
		return nil, errors.Wrapf(ErrMalformedIntent, "invalid order_id %q", raw)
	}

	return PrintOrderIntent{OrderID: orderID}, nil
}
