package store

// Keys written to the durable store.
const (
	KeyToken           = "token"
	KeyID              = "id"
	KeyName            = "name"
	KeyEmail           = "email"
	KeyProfileImageURL = "profileImageUrl"
	KeyCategories      = "categories"
	KeyDarkMode        = "darkMode"
)

// SessionKeys are the keys owned by the session; logout removes exactly these.
var SessionKeys = []string{
	KeyToken,
	KeyID,
	KeyName,
	KeyEmail,
	KeyProfileImageURL,
	KeyCategories,
}
