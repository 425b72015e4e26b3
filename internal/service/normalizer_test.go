package service

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jafarshop/storefront/internal/shopify"
)

// remoteProduct builds a RemoteProduct from raw JSON, the same path the
// live decoder takes.
func remoteProduct(t *testing.T, raw string) shopify.RemoteProduct {
	t.Helper()
	var p shopify.RemoteProduct
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestNormalizeProduct(t *testing.T) {
	p := remoteProduct(t, `{
		"id": "gid://shopify/Product/123",
		"title": "Bella Skirt",
		"handle": "bella-skirt",
		"description": "A beautiful flowing skirt",
		"images": {"edges": [
			{"node": {"url": "https://cdn/a.png", "altText": "front"}},
			{"node": {"url": ""}},
			{"node": {"url": "https://cdn/b.png"}}
		]},
		"variants": {"edges": [
			{"node": {
				"id": "gid://shopify/ProductVariant/999",
				"title": "M",
				"price": {"amount": "89.99", "currencyCode": "USD"},
				"availableForSale": true,
				"selectedOptions": [{"name": "Size", "value": "M"}]
			}}
		]},
		"options": [{"name": "Size", "values": ["S", "M", "L"]}]
	}`)

	got := NormalizeProduct(p)

	assert.Equal(t, "123", got.ID)
	assert.Equal(t, "gid://shopify/Product/123", got.ShopifyID)
	assert.Equal(t, "Bella Skirt", got.Name)
	assert.Equal(t, "bella-skirt", got.Slug)
	assert.Equal(t, "90", got.Price)

	// Empty image URLs are dropped; the first survivor doubles as Image.
	assert.Equal(t, []string{"https://cdn/a.png", "https://cdn/b.png"}, got.Images)
	assert.Equal(t, "https://cdn/a.png", got.Image)

	require.Len(t, got.Variants, 1)
	v := got.Variants[0]
	assert.Equal(t, "gid://shopify/ProductVariant/999", v.ID)
	assert.Equal(t, "999", v.ShortID)
	assert.True(t, v.AvailableForSale)
	require.Len(t, v.SelectedOptions, 1)
	assert.Equal(t, "Size", v.SelectedOptions[0].Name)

	assert.Equal(t, []string{"S", "M", "L"}, got.Sizes)
}

func TestNormalizeProductEmptyInputDegrades(t *testing.T) {
	got := NormalizeProduct(shopify.RemoteProduct{})

	assert.Equal(t, "", got.ID)
	assert.Equal(t, "", got.Price)
	assert.Equal(t, "", got.Image)
	assert.Empty(t, got.Images)
	assert.Empty(t, got.Variants)
	assert.Empty(t, got.Sizes)
	assert.Equal(t, "", got.SizeChart)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"89.99", "90"},
		{"90.00", "90"},
		{"25.4", "25"},
		{"150", "150"},
		{"invalid", "invalid"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPrice(tt.amount), "amount %q", tt.amount)
	}
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "999", shortID("gid://shopify/ProductVariant/999"))
	assert.Equal(t, "no-slashes", shortID("no-slashes"))
	assert.Equal(t, "", shortID("trailing/"))
}

func TestSizeOptionMatchIsCaseInsensitive(t *testing.T) {
	p := remoteProduct(t, `{
		"options": [
			{"name": "Color", "values": ["Red"]},
			{"name": "SIZES", "values": ["S", "M"]}
		]
	}`)
	assert.Equal(t, []string{"S", "M"}, NormalizeProduct(p).Sizes)
}

func TestSizeChartFromValue(t *testing.T) {
	p := remoteProduct(t, `{
		"metafields": [
			null,
			{"key": "", "namespace": "custom", "value": "skipped"},
			{"key": "size_chart", "namespace": "custom", "value": "<table>...</table>"}
		]
	}`)
	assert.Equal(t, "<table>...</table>", NormalizeProduct(p).SizeChart)
}

func TestSizeChartSubstringMatch(t *testing.T) {
	p := remoteProduct(t, `{
		"metafields": [
			{"key": "my_size_chart_v2", "namespace": "custom", "value": "chart here"}
		]
	}`)
	assert.Equal(t, "chart here", NormalizeProduct(p).SizeChart)
}

func TestSizeChartFromReferencedImage(t *testing.T) {
	p := remoteProduct(t, `{
		"metafields": [{
			"key": "size-chart",
			"namespace": "shopify",
			"value": "gid://shopify/MediaImage/5",
			"reference": {"image": {"url": "https://cdn/chart.png", "altText": ""}}
		}]
	}`)
	assert.Equal(t, `<img src="https://cdn/chart.png" alt="Size chart" />`, NormalizeProduct(p).SizeChart)
}

func TestSizeChartIgnoresUnrelatedMetafields(t *testing.T) {
	p := remoteProduct(t, `{
		"metafields": [
			{"key": "care_instructions", "namespace": "custom", "value": "wash cold"}
		]
	}`)
	assert.Equal(t, "", NormalizeProduct(p).SizeChart)
}
