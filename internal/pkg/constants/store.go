package constants

// Document store collections
const (
	CollectionOTPs      = "otps"
	CollectionUsers     = "users"
	CollectionSuppliers = "suppliers"
	CollectionProducts  = "products"
)

// Document fields used in queries
const (
	FieldPhoneNumber = "phone_number"
	FieldUID         = "uid"
	FieldUsed        = "used"
	FieldExpiresAt   = "expires_at"
	FieldProductID   = "product_id"
	FieldSupplierID  = "supplier_id"
)

// Redis key formats
const (
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{path}:{ip}
)
