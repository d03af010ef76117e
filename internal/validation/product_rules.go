package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Failure messages for the product rule tables. The integration tests assert
// these strings verbatim.
const (
	MsgNameRequired        = "Must assign a name to the Product"
	MsgPriceNumeric        = "Must enter numbers only"
	MsgPriceRequired       = "Must assign a price to the Product"
	MsgPriceGreaterThan0   = "Price must be greater than zero"
	MsgInvalidID           = "Invalid Id"
	MsgInvalidAvailability = "Invalid value for availability"
)

// CreateProduct validates the request body for create and replace operations.
// The three price rules are independent: a missing price fails all three,
// while a price of 0 fails only the greater-than-zero rule.
var CreateProduct = RuleSet{
	{Field: "name", Location: LocationBody, Message: MsgNameRequired, Valid: notEmpty},
	{Field: "price", Location: LocationBody, Message: MsgPriceNumeric, Valid: isNumeric},
	{Field: "price", Location: LocationBody, Message: MsgPriceRequired, Valid: notEmpty},
	{Field: "price", Location: LocationBody, Message: MsgPriceGreaterThan0, Valid: greaterThanZero},
}

// ProductID validates the ":id" path parameter on item routes. Negative ids
// are well-formed; they simply never match a record.
var ProductID = RuleSet{
	{Field: "id", Location: LocationParams, Message: MsgInvalidID, Valid: isInt},
}

// Availability validates the availability field required by a full replace.
var Availability = RuleSet{
	{Field: "availability", Location: LocationBody, Message: MsgInvalidAvailability, Valid: isBoolean},
}

var validate = validator.New()

// notEmpty fails on absent fields, JSON null and empty strings. Any number,
// including 0, is considered non-empty.
func notEmpty(value interface{}, present bool) bool {
	if !present || value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return s != ""
	}
	return true
}

// isNumeric accepts JSON numbers and numeric strings.
func isNumeric(value interface{}, present bool) bool {
	if !present {
		return false
	}
	if _, ok := value.(float64); ok {
		return true
	}
	if s, ok := value.(string); ok {
		return validate.Var(s, "numeric") == nil
	}
	return false
}

func greaterThanZero(value interface{}, present bool) bool {
	if !present {
		return false
	}
	switch v := value.(type) {
	case float64:
		return v > 0
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return err == nil && f > 0
	default:
		return false
	}
}

func isInt(value interface{}, present bool) bool {
	if !present {
		return false
	}
	s, ok := value.(string)
	if !ok {
		return false
	}
	_, err := strconv.Atoi(s)
	return err == nil
}

// isBoolean accepts JSON booleans and boolean-ish strings ("true", "0", ...).
func isBoolean(value interface{}, present bool) bool {
	if !present {
		return false
	}
	if _, ok := value.(bool); ok {
		return true
	}
	if s, ok := value.(string); ok {
		return validate.Var(s, "boolean") == nil
	}
	return false
}
