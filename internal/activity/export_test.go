package activity

// GraphQLEndpoint exposes graphQLEndpoint to tests.
var GraphQLEndpoint = graphQLEndpoint
