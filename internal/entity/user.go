package entity

// User is one entry of the fixed identity set. The set is loaded once at
// startup and never mutated at runtime. PasswordHash is a bcrypt hash;
// Token is the identity's single fixed bearer credential.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	IsAdmin      bool   `json:"is_admin"`
	Token        string `json:"token"`
}
