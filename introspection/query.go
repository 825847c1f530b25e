package introspection

// Introspection is the query used to fetch a schema. Type references are
// requested seven levels deep below the field type, which is the deepest
// wrapper chain the generator accepts.
const Introspection = `query IntrospectionQuery($includeDeprecated: Boolean = true) {
  __schema {
    queryType { name }
    mutationType { name }
    subscriptionType { name }
    types {
      ...FullType
    }
    directives {
      name
      description
      locations
      args {
        ...InputValue
      }
    }
  }
}

fragment FullType on __Type {
  kind
  name
  description
  fields(includeDeprecated: $includeDeprecated) {
    ...Field
  }
  inputFields {
    ...InputValue
  }
  interfaces {
    ...TypeRef
  }
  enumValues(includeDeprecated: $includeDeprecated) {
    ...EnumValue
  }
  possibleTypes {
    ...TypeRef
  }
}

fragment Field on __Field {
  name
  description
  args {
    ...InputValue
  }
  type {
    ...TypeRef
  }
  isDeprecated
  deprecationReason
}

fragment InputValue on __InputValue {
  name
  description
  type {
    ...TypeRef
  }
  defaultValue
}

fragment EnumValue on __EnumValue {
  name
  description
  isDeprecated
  deprecationReason
}

fragment TypeRef on __Type {
  kind
  name
  ofType {
    kind
    name
    ofType {
      kind
      name
      ofType {
        kind
        name
        ofType {
          kind
          name
          ofType {
            kind
            name
            ofType {
              kind
              name
              ofType {
                kind
                name
              }
            }
          }
        }
      }
    }
  }
}
`

// OperationName is the operation name of Introspection.
const OperationName = "IntrospectionQuery"
