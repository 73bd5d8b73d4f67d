package receipt

import (
	"regexp"
	"time"
)

const (
	purchaseDateLayout = "2006-01-02"
	purchaseTimeLayout = "15:04"
)

var (
	nonWhitespacePattern = regexp.MustCompile(`\S`)
	amountPattern        = regexp.MustCompile(`^\d+\.\d{2}$`)
	descriptionPattern   = regexp.MustCompile(`^[\w\s-]+$`)
)

var requiredReceiptFields = []string{"retailer", "total", "items", "purchaseDate", "purchaseTime"}

// Validate checks a decoded JSON document against the receipt rules and
// materializes the typed Receipt on success. On failure it returns the first
// violated rule as a *ValidationError whose message is the exact client-facing
// error string.
//
// The input is the generic document produced by encoding/json, not a Receipt:
// the shape rules (missing fields, wrong JSON types) must be checked before
// any struct coercion happens, otherwise e.g. a numeric retailer would decode
// away instead of being rejected.
func Validate(doc map[string]any) (Receipt, error) {
	var rec Receipt

	for _, name := range requiredReceiptFields {
		value, present := doc[name]
		if !present {
			return rec, errMissingField(name)
		}
		if name == "items" {
			continue
		}
		if _, isString := value.(string); !isString {
			return rec, errInvalidFieldFormat(name)
		}
	}

	rawItems, isList := doc["items"].([]any)
	if !isList {
		return rec, errInvalidItemsListFormat()
	}
	if len(rawItems) == 0 {
		return rec, errEmptyItemsList()
	}

	rec.Retailer = doc["retailer"].(string)
	rec.Total = doc["total"].(string)
	rec.PurchaseDate = doc["purchaseDate"].(string)
	rec.PurchaseTime = doc["purchaseTime"].(string)
	rec.Items = make([]Item, 0, len(rawItems))

	for _, rawItem := range rawItems {
		obj, isObject := rawItem.(map[string]any)
		if !isObject {
			return rec, errInvalidItemFormat()
		}
		description, isString := obj["shortDescription"].(string)
		if !isString {
			return rec, errInvalidItemFormat()
		}
		price, isString := obj["price"].(string)
		if !isString {
			return rec, errInvalidItemFormat()
		}
		rec.Items = append(rec.Items, Item{ShortDescription: description, Price: price})
	}

	if !nonWhitespacePattern.MatchString(rec.Retailer) {
		return rec, errInvalidRetailerName(rec.Retailer)
	}
	if !amountPattern.MatchString(rec.Total) {
		return rec, errInvalidTotal(rec.Total)
	}
	// Per-item format checks run item by item, description before price, so
	// the first bad item wins regardless of which of its fields is malformed.
	for _, item := range rec.Items {
		if !descriptionPattern.MatchString(item.ShortDescription) {
			return rec, errInvalidItemDescription(item.ShortDescription)
		}
		if !amountPattern.MatchString(item.Price) {
			return rec, errInvalidItemPrice(item.Price)
		}
	}
	// time.Parse accepts year zero, which is not a calendar date
	if date, err := time.Parse(purchaseDateLayout, rec.PurchaseDate); err != nil || date.Year() < 1 {
		return rec, errInvalidPurchaseDate(rec.PurchaseDate)
	}
	if _, err := time.Parse(purchaseTimeLayout, rec.PurchaseTime); err != nil {
		return rec, errInvalidPurchaseTime(rec.PurchaseTime)
	}

	return rec, nil
}
