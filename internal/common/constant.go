package common

// SessionTokenHeaderName is the HTTP header that carries the session token
// on authenticated requests. Header lookup is case-insensitive, so both
// "X-Session-Token" and "x-session-token" are recognized.
const SessionTokenHeaderName = "X-Session-Token"
