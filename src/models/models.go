package models

// All lists every table managed by AutoMigrate, in dependency order.
func All() []any {
	return []any{
		&User{},
		&Hotel{},
		&Room{},
		&Booking{},
		&PaymentOrder{},
		&Feedback{},
	}
}
