package common

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// outbound gateway requests.
const AuthorizationHeader = "Authorization"

// BearerPrefix is prepended to the credential in the Authorization header.
const BearerPrefix = "Bearer "
