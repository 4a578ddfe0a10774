package common

// AuthHeaderName is the HTTP header used to carry the bearer token on
// outbound requests to the cloud backend.
const AuthHeaderName = "Authorization"
