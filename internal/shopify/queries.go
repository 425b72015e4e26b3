package shopify

// ProductsQuery fetches the full catalog with images, variants, options and
// the size-chart metafield candidates.
const ProductsQuery = `
query getProducts {
  products(first: 250) {
    edges {
      node {
        id
        title
        handle
        description
        images(first: 10) {
          edges {
            node {
              url
              altText
            }
          }
        }
        variants(first: 100) {
          edges {
            node {
              id
              title
              price {
                amount
                currencyCode
              }
              availableForSale
              selectedOptions {
                name
                value
              }
            }
          }
        }
        options {
          name
          values
        }
        metafields(identifiers: [
          {namespace: "custom", key: "size_chart"},
          {namespace: "custom", key: "sizechart"},
          {namespace: "descriptors", key: "size_chart"},
          {namespace: "shopify", key: "size-chart"}
        ]) {
          key
          namespace
          value
          reference {
            ... on MediaImage {
              image {
                url
                altText
              }
            }
          }
        }
      }
    }
  }
}
`
