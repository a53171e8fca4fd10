package commerce

const draftOrderFields = `
fragment DraftOrderFields on DraftOrder {
  id
  name
  email
  status
  note2
  invoiceUrl
  createdAt
  updatedAt
  totalPriceSet { shopMoney { amount currencyCode } }
  customer { email }
  lineItems(first: 100) {
    edges {
      node {
        id
        title
        quantity
        originalUnitPriceSet { shopMoney { amount currencyCode } }
        customAttributes { key value }
      }
    }
  }
}
`

const getDraftOrderQuery = `
query DraftOrder($id: ID!) {
  draftOrder(id: $id) { ...DraftOrderFields }
}
` + draftOrderFields

const listDraftOrdersQuery = `
query DraftOrders($first: Int!, $query: String) {
  draftOrders(first: $first, query: $query, sortKey: UPDATED_AT, reverse: true) {
    edges { node { ...DraftOrderFields } }
  }
}
` + draftOrderFields

const createDraftOrderMutation = `
mutation DraftOrderCreate($input: DraftOrderInput!) {
  draftOrderCreate(input: $input) {
    draftOrder { ...DraftOrderFields }
    userErrors { field message }
  }
}
` + draftOrderFields

const updateDraftOrderMutation = `
mutation DraftOrderUpdate($id: ID!, $input: DraftOrderInput!) {
  draftOrderUpdate(id: $id, input: $input) {
    draftOrder { ...DraftOrderFields }
    userErrors { field message }
  }
}
` + draftOrderFields

const deleteDraftOrderMutation = `
mutation DraftOrderDelete($input: DraftOrderDeleteInput!) {
  draftOrderDelete(input: $input) {
    deletedId
    userErrors { field message }
  }
}
`

const sendDraftOrderInvoiceMutation = `
mutation DraftOrderInvoiceSend($id: ID!, $email: EmailInput) {
  draftOrderInvoiceSend(id: $id, email: $email) {
    draftOrder { ...DraftOrderFields }
    userErrors { field message }
  }
}
` + draftOrderFields

const stagedUploadsCreateMutation = `
mutation StagedUploadsCreate($input: [StagedUploadInput!]!) {
  stagedUploadsCreate(input: $input) {
    stagedTargets {
      url
      resourceUrl
      parameters { name value }
    }
    userErrors { field message }
  }
}
`

const fileCreateMutation = `
mutation FileCreate($files: [FileCreateInput!]!) {
  fileCreate(files: $files) {
    files {
      id
      ... on GenericFile { url originalFileSize }
    }
    userErrors { field message }
  }
}
`
