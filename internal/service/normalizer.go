package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jafarshop/storefront/internal/domain"
	"github.com/jafarshop/storefront/internal/shopify"
)

// NormalizeProduct flattens a raw Storefront product into the internal
// Product shape. It is a pure transform: malformed or missing nested fields
// degrade to empty defaults, never errors.
func NormalizeProduct(remote shopify.RemoteProduct) domain.Product {
	images := make([]string, 0, len(remote.Images.Edges))
	for _, edge := range remote.Images.Edges {
		if edge.Node.URL != "" {
			images = append(images, edge.Node.URL)
		}
	}
	firstImage := ""
	if len(images) > 0 {
		firstImage = images[0]
	}

	price := ""
	if len(remote.Variants.Edges) > 0 {
		price = formatPrice(remote.Variants.Edges[0].Node.Price.Amount)
	}

	variants := make([]domain.Variant, 0, len(remote.Variants.Edges))
	for _, edge := range remote.Variants.Edges {
		variants = append(variants, normalizeVariant(edge.Node))
	}

	return domain.Product{
		ID:          shortID(remote.ID),
		ShopifyID:   remote.ID,
		Name:        remote.Title,
		Price:       price,
		Image:       firstImage,
		Images:      images,
		Description: remote.Description,
		Slug:        remote.Handle,
		Variants:    variants,
		Sizes:       sizeValues(remote.Options),
		SizeChart:   sizeChart(remote.Metafields),
	}
}

func normalizeVariant(remote shopify.RemoteVariant) domain.Variant {
	options := make([]domain.SelectedOption, 0, len(remote.SelectedOptions))
	for _, opt := range remote.SelectedOptions {
		options = append(options, domain.SelectedOption{Name: opt.Name, Value: opt.Value})
	}

	return domain.Variant{
		// ID stays the full GID: checkout mutations reject truncated ids.
		ID:               remote.ID,
		ShortID:          shortID(remote.ID),
		Title:            remote.Title,
		Price:            domain.VariantPrice{Amount: remote.Price.Amount, CurrencyCode: remote.Price.CurrencyCode},
		AvailableForSale: remote.AvailableForSale,
		SelectedOptions:  options,
	}
}

// shortID extracts the numeric tail of a GID
// ("gid://shopify/ProductVariant/999" -> "999"). Identifiers without a
// slash pass through unchanged.
func shortID(gid string) string {
	if idx := strings.LastIndex(gid, "/"); idx >= 0 {
		return gid[idx+1:]
	}
	return gid
}

// formatPrice rounds a decimal amount to whole units ("89.99" -> "90").
// Unparseable amounts pass through unchanged.
func formatPrice(amount string) string {
	f, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return amount
	}
	return strconv.FormatInt(int64(math.Round(f)), 10)
}

func sizeValues(options []shopify.RemoteOption) []string {
	for _, opt := range options {
		name := strings.ToLower(opt.Name)
		if name == "size" || name == "sizes" {
			return opt.Values
		}
	}
	return []string{}
}

// sizeChart scans metafield entries for a size-chart candidate and renders
// it: referenced images become an <img> tag, anything else is passed
// through as opaque HTML-or-text. First match wins.
func sizeChart(metafields []*shopify.RemoteMetafield) string {
	for _, mf := range metafields {
		if mf == nil || mf.Key == "" || mf.Namespace == "" {
			continue
		}
		if !isSizeChartKey(mf.Key) && !isSizeChartKey(mf.Namespace) {
			continue
		}
		if ref := mf.Reference; ref != nil && ref.Image != nil && ref.Image.URL != "" {
			alt := ref.Image.AltText
			if alt == "" {
				alt = "Size chart"
			}
			return fmt.Sprintf(`<img src=%q alt=%q />`, ref.Image.URL, alt)
		}
		return mf.Value
	}
	return ""
}

func isSizeChartKey(s string) bool {
	s = strings.ToLower(s)
	switch s {
	case "size_chart", "sizechart", "size-chart":
		return true
	}
	return strings.Contains(s, "size") && strings.Contains(s, "chart")
}
