package shopify

const imageFragment = `
fragment image on Image {
  url
  altText
  width
  height
}
`

const seoFragment = `
fragment seo on SEO {
  title
  description
}
`

const productFragment = `
fragment product on Product {
  id
  handle
  availableForSale
  title
  description
  descriptionHtml
  options {
    id
    name
    values
  }
  priceRange {
    maxVariantPrice {
      amount
      currencyCode
    }
    minVariantPrice {
      amount
      currencyCode
    }
  }
  variants(first: 250) {
    edges {
      node {
        id
        title
        availableForSale
        selectedOptions {
          name
          value
        }
        price {
          amount
          currencyCode
        }
      }
    }
  }
  featuredImage {
    ...image
  }
  images(first: 20) {
    edges {
      node {
        ...image
      }
    }
  }
  seo {
    ...seo
  }
  tags
  updatedAt
}
` + imageFragment + seoFragment

const cartFragment = `
fragment cart on Cart {
  id
  checkoutUrl
  cost {
    subtotalAmount {
      amount
      currencyCode
    }
    totalAmount {
      amount
      currencyCode
    }
    totalTaxAmount {
      amount
      currencyCode
    }
  }
  lines(first: 100) {
    edges {
      node {
        id
        quantity
        cost {
          totalAmount {
            amount
            currencyCode
          }
        }
        merchandise {
          ... on ProductVariant {
            id
            title
            selectedOptions {
              name
              value
            }
            product {
              ...product
            }
          }
        }
      }
    }
  }
  totalQuantity
}
` + productFragment

const collectionFields = `
  handle
  title
  description
  seo {
    ...seo
  }
  updatedAt
`

const pageFields = `
  id
  title
  handle
  body
  bodySummary
  seo {
    ...seo
  }
  createdAt
  updatedAt
`

const (
	createCartMutation = `
mutation createCart {
  cartCreate {
    cart {
      ...cart
    }
  }
}
` + cartFragment

	createCartWithLinesMutation = `
mutation createCartWithLines($lines: [CartLineInput!]!) {
  cartCreate(input: { lines: $lines }) {
    cart {
      ...cart
    }
  }
}
` + cartFragment

	addToCartMutation = `
mutation addToCart($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart {
      ...cart
    }
  }
}
` + cartFragment

	removeFromCartMutation = `
mutation removeFromCart($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart {
      ...cart
    }
  }
}
` + cartFragment

	updateCartMutation = `
mutation updateCart($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart {
      ...cart
    }
  }
}
` + cartFragment

	getCartQuery = `
query getCart($cartId: ID!) {
  cart(id: $cartId) {
    ...cart
  }
}
` + cartFragment

	getProductQuery = `
query getProduct($handle: String!) {
  product(handle: $handle) {
    ...product
  }
}
` + productFragment

	getProductsQuery = `
query getProducts($query: String, $sortKey: ProductSortKeys, $reverse: Boolean, $first: Int) {
  products(query: $query, sortKey: $sortKey, reverse: $reverse, first: $first) {
    edges {
      node {
        ...product
      }
    }
  }
}
` + productFragment

	getProductRecommendationsQuery = `
query getProductRecommendations($productId: ID!) {
  productRecommendations(productId: $productId) {
    ...product
  }
}
` + productFragment

	getCollectionsQuery = `
query getCollections {
  collections(first: 100) {
    edges {
      node {` + collectionFields + `      }
    }
  }
}
` + seoFragment

	getCollectionQuery = `
query getCollection($handle: String!) {
  collection(handle: $handle) {` + collectionFields + `  }
}
` + seoFragment

	getCollectionProductsQuery = `
query getCollectionProducts($handle: String!, $sortKey: ProductCollectionSortKeys, $reverse: Boolean, $first: Int) {
  collection(handle: $handle) {
    products(sortKey: $sortKey, reverse: $reverse, first: $first) {
      edges {
        node {
          ...product
        }
      }
    }
  }
}
` + productFragment

	getMenuQuery = `
query getMenu($handle: String!) {
  menu(handle: $handle) {
    items {
      title
      url
    }
  }
}
`

	getPagesQuery = `
query getPages {
  pages(first: 100) {
    edges {
      node {` + pageFields + `      }
    }
  }
}
` + seoFragment

	getPageQuery = `
query getPage($handle: String!) {
  page(handle: $handle) {` + pageFields + `  }
}
` + seoFragment
)
