package sessions

// Token is the opaque session identifier issued at login and carried on
// subsequent requests. It is a distinct type so it cannot be mixed up with
// other string-keyed lookups.
type Token string

// Session is one row of the sessions table. TTL is an absolute expiry
// instant in epoch seconds; a session is valid only while now < TTL.
// Expired rows are never deleted, expiry is evaluated lazily on access.
type Session struct {
	Token     Token  `dynamodbav:"session_token" json:"session_token"`
	Email     string `dynamodbav:"email" json:"email"`
	CreatedAt int64  `dynamodbav:"created_at" json:"created_at"`
	TTL       int64  `dynamodbav:"ttl" json:"ttl"`
}
