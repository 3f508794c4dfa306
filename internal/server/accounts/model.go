package accounts

// Account is one row of the accounts table. Email is the primary key,
// stored lower-cased and trimmed. The password is an opaque credential
// stored as given; hardening it is out of scope.
type Account struct {
	Email    string `dynamodbav:"email"`
	UserName string `dynamodbav:"user_name"`
	Password string `dynamodbav:"password"`
}
