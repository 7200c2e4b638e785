package model

// Identity is the user identity claim embedded in tokens. It is rebuilt from
// the stored User at issuance and trusted verbatim on verified requests.
type Identity struct {
	ID    string `json:"id"    validate:"required"`
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// JWTPayload is the decoded token content handlers read from the gin context.
type JWTPayload struct {
	User Identity `json:"user" validate:"required"`
}
