package domain

// Product is the normalized catalog record served to the storefront.
// ID is the short catalog identifier (last segment of the Shopify GID);
// ShopifyID keeps the full global identifier when the product came from
// the remote catalog.
type Product struct {
	ID          string    `json:"id"`
	ShopifyID   string    `json:"shopifyId,omitempty"`
	Name        string    `json:"name"`
	Price       string    `json:"price"`
	Image       string    `json:"image"`
	Images      []string  `json:"images"`
	Description string    `json:"description"`
	Slug        string    `json:"slug"`
	Variants    []Variant `json:"variants"`
	Sizes       []string  `json:"sizes"`
	SizeChart   string    `json:"sizeChart,omitempty"`
}

// Variant keeps the full Shopify GID in ID - checkout mutations require it
// verbatim. ShortID is display-only.
type Variant struct {
	ID               string           `json:"id"`
	ShortID          string           `json:"shortId"`
	Title            string           `json:"title"`
	Price            VariantPrice     `json:"price"`
	AvailableForSale bool             `json:"availableForSale"`
	SelectedOptions  []SelectedOption `json:"selectedOptions"`
}

type VariantPrice struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CartItem is one line of a session cart. VariantID is empty for products
// that never came from the remote catalog (seed/demo products).
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	VariantID string `json:"variantId,omitempty"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image"`
	Size      string `json:"size,omitempty"`
	Quantity  int    `json:"quantity"`
}

// LineItem is the (variant, quantity) pair handed to checkout creation.
type LineItem struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}
