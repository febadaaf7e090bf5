package models

// Address is a shipping or billing address embedded on users and orders.
type Address struct {
	Name        string `bson:"name,omitempty" json:"name,omitempty"` // Optional recipient override.
	PhoneNumber string `bson:"phone_number,omitempty" json:"phone_number,omitempty"`
	Street      string `bson:"street" json:"street"`
	City        string `bson:"city" json:"city"`
	Zip         string `bson:"zip,omitempty" json:"zip,omitempty"`
}

// PaymentInfo captures how an order was (or will be) paid.
type PaymentInfo struct {
	Method        string `bson:"method" json:"method"`                                     // e.g., "card", "cod"
	Status        string `bson:"status" json:"status"`                                     // e.g., "paid", "pending"
	TransactionID string `bson:"transaction_id,omitempty" json:"transaction_id,omitempty"` // Gateway reference, if any.
}
