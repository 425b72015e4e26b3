package shopify

// CartCreateMutation creates a cart and returns its hosted checkout URL
// (2022-10+ Storefront API).
const CartCreateMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart {
      id
      checkoutUrl
    }
    userErrors {
      field
      message
    }
  }
}
`

// CheckoutCreateMutation is the legacy checkout mutation. Stores pinned to
// pre-cart API versions answer in this shape; the response parser in
// CreateCheckout accepts it as a fallback.
const CheckoutCreateMutation = `
mutation checkoutCreate($input: CheckoutCreateInput!) {
  checkoutCreate(input: $input) {
    checkout {
      id
      webUrl
    }
    checkoutUserErrors {
      field
      message
    }
  }
}
`

// CartLineInput is one line of the cartCreate input. MerchandiseID must be
// the full variant GID (gid://shopify/ProductVariant/<id>).
type CartLineInput struct {
	MerchandiseID string `json:"merchandiseId"`
	Quantity      int    `json:"quantity"`
}

// CartInput is the input object for cartCreate.
type CartInput struct {
	Lines []CartLineInput `json:"lines"`
}
