package receipt

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// Scoring rules. Points are awarded per rule and summed; the rules never
// interact or cap each other.
const (
	pointsPerRetailerAlphanumeric = 1
	pointsTotalHasNoCents         = 50
	pointsTotalMultipleOfQuarter  = 25
	pointsPerTwoItems             = 5
	pointsOddPurchaseDay          = 6
	pointsAfternoonPurchase       = 10

	descriptionLengthFactor = 3
	rewardHourStart         = 14
	rewardHourEnd           = 16
)

var (
	quarter              = decimal.New(25, -2) // 0.25
	descriptionBonusRate = decimal.New(2, -1)  // 0.2
)

// Score computes the reward points for a validated receipt:
//  1. +1 point for every alphanumeric character in the retailer name.
//  2. +50 points if the total is a round dollar amount with no cents,
//     +25 points if the total is a multiple of 0.25 (both can apply).
//  3. +5 points for every two items on the receipt, and for each item whose
//     trimmed description length is a multiple of 3, the item price times 0.2
//     rounded up to the nearest integer.
//  4. +6 points if the purchase day is odd, +10 points if the purchase time
//     falls in [14:00, 16:00).
//
// Score must only be called on a receipt that passed Validate; the amount and
// date/time fields are parsed here without re-checking their format.
func Score(rec Receipt) int {
	points := scoreRetailer(rec.Retailer)
	points += scoreTotal(rec.Total)
	points += scoreItems(rec.Items)
	points += scoreDateTime(rec.PurchaseDate, rec.PurchaseTime)
	return points
}

func scoreRetailer(retailer string) int {
	points := 0
	for _, r := range retailer {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			points += pointsPerRetailerAlphanumeric
		}
	}
	return points
}

// scoreTotal compares exact decimal values, not binary floats: the validated
// format guarantees exactly two fractional digits, so every total is exactly
// representable.
func scoreTotal(total string) int {
	amount := decimal.RequireFromString(total)
	points := 0
	if amount.IsInteger() {
		points += pointsTotalHasNoCents
	}
	if amount.Mod(quarter).IsZero() {
		points += pointsTotalMultipleOfQuarter
	}
	return points
}

func scoreItems(items []Item) int {
	points := (len(items) / 2) * pointsPerTwoItems
	for _, item := range items {
		if len(strings.TrimSpace(item.ShortDescription))%descriptionLengthFactor == 0 {
			price := decimal.RequireFromString(item.Price)
			points += int(price.Mul(descriptionBonusRate).Ceil().IntPart())
		}
	}
	return points
}

func scoreDateTime(purchaseDate, purchaseTime string) int {
	date, _ := time.Parse(purchaseDateLayout, purchaseDate)
	clock, _ := time.Parse(purchaseTimeLayout, purchaseTime)
	points := 0
	if date.Day()%2 != 0 {
		points += pointsOddPurchaseDay
	}
	if clock.Hour() >= rewardHourStart && clock.Hour() < rewardHourEnd {
		points += pointsAfternoonPurchase
	}
	return points
}
