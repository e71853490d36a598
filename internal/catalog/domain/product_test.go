package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDAcceptsStringAndNumber(t *testing.T) {
	var numeric, text ID
	require.NoError(t, json.Unmarshal([]byte(`42`), &numeric))
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &text))

	assert.Equal(t, numeric, text)
	assert.Equal(t, "42", numeric.String())

	var bad ID
	assert.Error(t, json.Unmarshal([]byte(`{"x":1}`), &bad))
}

func TestIDCanonicalizesIntegralNumbers(t *testing.T) {
	tests := map[string]ID{
		`1.0`:   "1",
		`1`:     "1",
		`"1.0"`: "1.0",
		`2.5`:   "2.5",
		`1e2`:   "100",
	}
	for raw, want := range tests {
		t.Run(raw, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(raw), &id))
			assert.Equal(t, want, id)
		})
	}
}

func TestIDMarshalKeepsNumbersNumeric(t *testing.T) {
	out, err := json.Marshal([]ID{"7", "abc", "007"})
	require.NoError(t, err)
	assert.JSONEq(t, `[7, "abc", "007"]`, string(out))
}

func TestDecodeProduct(t *testing.T) {
	t.Run("minimal product", func(t *testing.T) {
		p, err := DecodeProduct([]byte(`{"id":1,"brand":"Test","name":"Product","price":9.99}`))
		require.NoError(t, err)
		assert.Equal(t, ID("1"), p.ID)
		assert.Equal(t, 9.99, p.Price)
		assert.Nil(t, p.SaveAmount)
	})

	t.Run("full product", func(t *testing.T) {
		p, err := DecodeProduct([]byte(`{
			"id": "abc", "brand": "Brand", "name": "Full Product", "description": "A description",
			"price": 24.5, "originalPrice": 30, "saveAmount": 5.5,
			"image": "https://example.com/img.jpg", "images": ["https://example.com/1.jpg"],
			"rating": 4.5, "reviews": 100, "category": "skincare",
			"meta": {"caresPoints": 200}, "badges": [{"label": "SALE", "color": "warning"}]
		}`))
		require.NoError(t, err)
		assert.Equal(t, 5.5, p.Savings())
		assert.Equal(t, "skincare", p.Category)
		require.Len(t, p.Badges, 1)
		assert.Equal(t, BadgeWarning, p.Badges[0].Color)
	})

	t.Run("missing required fields", func(t *testing.T) {
		_, err := DecodeProduct([]byte(`{"id":1}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("invalid badge color", func(t *testing.T) {
		_, err := DecodeProduct([]byte(`{"id":1,"brand":"T","name":"P","price":1,"badges":[{"label":"SALE","color":"invalid-color"}]}`))
		assert.ErrorIs(t, err, ErrInvalidPayload)
	})

	t.Run("every palette color is accepted", func(t *testing.T) {
		for _, color := range []string{"primary", "secondary", "success", "info", "warning", "error", "neutral"} {
			_, err := DecodeProduct([]byte(`{"id":1,"brand":"T","name":"P","price":1,"badges":[{"label":"x","color":"` + color + `"}]}`))
			assert.NoError(t, err, color)
		}
	})
}

func TestDecodeCategory(t *testing.T) {
	c, err := DecodeCategory([]byte(`{"id":1,"name":"Skincare","slug":"skincare","productCount":42}`))
	require.NoError(t, err)
	require.NotNil(t, c.ProductCount)
	assert.Equal(t, 42, *c.ProductCount)

	_, err = DecodeCategory([]byte(`{"id":1,"name":"Skincare"}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestDecodeLists(t *testing.T) {
	list, err := DecodeProductList([]byte(`{"products":[{"id":1,"brand":"B","name":"N","price":2}],"total":1}`))
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Len(t, list.Products, 1)

	_, err = DecodeProductList([]byte(`{"products":[]}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = DecodeProductList([]byte(`{"products":[{"id":1}],"total":1}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	cats, err := DecodeCategoryList([]byte(`{"categories":[{"id":"a","name":"A","slug":"a"}]}`))
	require.NoError(t, err)
	assert.Len(t, cats.Categories, 1)

	_, err = DecodeCategoryList([]byte(`{}`))
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
