package validation

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"
)

// Location identifies where a validated field is read from.
type Location string

const (
	LocationBody   Location = "body"
	LocationParams Location = "params"
)

// FieldError describes one failed rule, in the shape the API returns inside
// the "errors" array of a 400 response.
type FieldError struct {
	Msg      string      `json:"msg"`
	Param    string      `json:"param"`
	Location Location    `json:"location"`
	Value    interface{} `json:"value,omitempty"`
}

// Rule is a single independent field check with a fixed failure message.
// Valid receives the raw field value and whether the field was present at all.
type Rule struct {
	Field    string
	Location Location
	Message  string
	Valid    func(value interface{}, present bool) bool
}

// RuleSet is an ordered collection of rules applied to one request. Every
// rule in the set runs; failures accumulate rather than short-circuiting.
type RuleSet []Rule

// RequestView is the request as the rules see it: the decoded JSON body and
// the route's path parameters.
type RequestView struct {
	Body   map[string]interface{}
	Params map[string]string
}

// NewRequestView builds a RequestView from a Fiber context. A missing or
// undecodable body is treated as an empty object so that presence rules can
// report every missing field.
func NewRequestView(c *fiber.Ctx) RequestView {
	body := map[string]interface{}{}
	if raw := c.Body(); len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			body = map[string]interface{}{}
		}
	}
	return RequestView{
		Body:   body,
		Params: c.AllParams(),
	}
}

func (v RequestView) lookup(field string, loc Location) (interface{}, bool) {
	if loc == LocationParams {
		value, ok := v.Params[field]
		return value, ok
	}
	value, ok := v.Body[field]
	return value, ok
}

// Apply evaluates every rule of the set against the request view and returns
// the accumulated failures, in rule order.
func (rs RuleSet) Apply(view RequestView) []FieldError {
	var errs []FieldError
	for _, rule := range rs {
		value, present := view.lookup(rule.Field, rule.Location)
		if rule.Valid(value, present) {
			continue
		}
		fe := FieldError{
			Msg:      rule.Message,
			Param:    rule.Field,
			Location: rule.Location,
		}
		if present {
			fe.Value = value
		}
		errs = append(errs, fe)
	}
	return errs
}

// Validate returns a Fiber middleware that runs the given rule sets in order
// and rejects the request with 400 and the accumulated errors before the
// handler runs. With no failures, control passes through unchanged.
func Validate(sets ...RuleSet) fiber.Handler {
	return func(c *fiber.Ctx) error {
		view := NewRequestView(c)
		var errs []FieldError
		for _, set := range sets {
			errs = append(errs, set.Apply(view)...)
		}
		if len(errs) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"errors": errs,
			})
		}
		return c.Next()
	}
}
