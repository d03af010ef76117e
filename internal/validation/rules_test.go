package validation_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productapi/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func bodyView(body map[string]interface{}) validation.RequestView {
	return validation.RequestView{Body: body, Params: map[string]string{}}
}

func paramsView(params map[string]string) validation.RequestView {
	return validation.RequestView{Body: map[string]interface{}{}, Params: params}
}

func TestCreateProductRules_EmptyBody(t *testing.T) {
	errs := validation.CreateProduct.Apply(bodyView(map[string]interface{}{}))

	assert.Len(t, errs, 4)
	assert.Equal(t, validation.MsgNameRequired, errs[0].Msg)
	assert.Equal(t, validation.MsgPriceNumeric, errs[1].Msg)
	assert.Equal(t, validation.MsgPriceRequired, errs[2].Msg)
	assert.Equal(t, validation.MsgPriceGreaterThan0, errs[3].Msg)
}

func TestCreateProductRules_ZeroPrice(t *testing.T) {
	errs := validation.CreateProduct.Apply(bodyView(map[string]interface{}{
		"name":  "Monitor - Testing",
		"price": float64(0),
	}))

	// A price of 0 is present and numeric; only the greater-than-zero rule fails.
	assert.Len(t, errs, 1)
	assert.Equal(t, validation.MsgPriceGreaterThan0, errs[0].Msg)
	assert.Equal(t, "price", errs[0].Param)
}

func TestCreateProductRules_NonNumericPrice(t *testing.T) {
	errs := validation.CreateProduct.Apply(bodyView(map[string]interface{}{
		"name":  "Monitor - Testing",
		"price": "hola",
	}))

	// A non-empty string fails the numeric and greater-than-zero rules but
	// passes the presence rule.
	assert.Len(t, errs, 2)
	assert.Equal(t, validation.MsgPriceNumeric, errs[0].Msg)
	assert.Equal(t, validation.MsgPriceGreaterThan0, errs[1].Msg)
}

func TestCreateProductRules_Valid(t *testing.T) {
	errs := validation.CreateProduct.Apply(bodyView(map[string]interface{}{
		"name":  "Mouse - Testing",
		"price": float64(10000),
	}))

	assert.Empty(t, errs)
}

func TestCreateProductRules_NumericStringPrice(t *testing.T) {
	errs := validation.CreateProduct.Apply(bodyView(map[string]interface{}{
		"name":  "Keyboard",
		"price": "300",
	}))

	assert.Empty(t, errs)
}

func TestProductIDRule(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		wantErr bool
	}{
		{"positive integer", "10", false},
		{"negative integer", "-1", false},
		{"not an integer", "not-valid-id", true},
		{"float", "1.5", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.ProductID.Apply(paramsView(map[string]string{"id": tc.id}))
			if tc.wantErr {
				assert.Len(t, errs, 1)
				assert.Equal(t, validation.MsgInvalidID, errs[0].Msg)
				assert.Equal(t, "id", errs[0].Param)
				assert.Equal(t, validation.LocationParams, errs[0].Location)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

func TestAvailabilityRule(t *testing.T) {
	tests := []struct {
		name    string
		body    map[string]interface{}
		wantErr bool
	}{
		{"boolean true", map[string]interface{}{"availability": true}, false},
		{"boolean false", map[string]interface{}{"availability": false}, false},
		{"boolean string", map[string]interface{}{"availability": "true"}, false},
		{"missing", map[string]interface{}{}, true},
		{"number", map[string]interface{}{"availability": float64(1)}, true},
		{"arbitrary string", map[string]interface{}{"availability": "yes"}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.Availability.Apply(bodyView(tc.body))
			if tc.wantErr {
				assert.Len(t, errs, 1)
				assert.Equal(t, validation.MsgInvalidAvailability, errs[0].Msg)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}

// TestValidateMiddleware drives the middleware through a real Fiber app:
// failures answer 400 with the accumulated errors and the handler never
// runs; a clean request passes through unchanged.
func TestValidateMiddleware(t *testing.T) {
	app := fiber.New()
	handlerRan := false
	app.Post("/products", validation.Validate(validation.CreateProduct), func(c *fiber.Ctx) error {
		handlerRan = true
		return c.SendStatus(fiber.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.False(t, handlerRan)

	var body struct {
		Errors []validation.FieldError `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Errors, 4)
	resp.Body.Close()

	valid, _ := json.Marshal(map[string]interface{}{"name": "Mouse", "price": 25.0})
	req = httptest.NewRequest(http.MethodPost, "/products", bytes.NewReader(valid))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, handlerRan)
	resp.Body.Close()
}

// TestValidateMiddleware_CombinedSets mirrors the replace route: the create,
// id and availability sets all run and their failures accumulate.
func TestValidateMiddleware_CombinedSets(t *testing.T) {
	app := fiber.New()
	app.Put("/products/:id", validation.Validate(validation.CreateProduct, validation.ProductID, validation.Availability), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPut, "/products/1", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body struct {
		Errors []validation.FieldError `json:"errors"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Errors, 5)
	resp.Body.Close()
}
