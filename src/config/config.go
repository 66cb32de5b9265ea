package config

import (
	"fmt"
	"os"
	"strconv"
)

// const dsn = "host=localhost user=postgres password=password dbname=hbsdb port=5432 sslmode=disable TimeZone=UTC"

func GetDSN() string {
	DATABASE_HOST := os.Getenv("DATABASE_HOST")
	DATABASE_PORT := os.Getenv("DATABASE_PORT")
	DATABASE_SSLMODE := os.Getenv("DATABASE_SSLMODE")
	DATABASE_TIMEZONE := GetEnv("DATABASE_TIMEZONE", "UTC")
	DATABASE_USER := os.Getenv("DATABASE_USER")
	DATABASE_PASSWORD := os.Getenv("DATABASE_PASSWORD")
	DATABASE_NAME := os.Getenv("DATABASE_NAME")
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s", DATABASE_HOST, DATABASE_USER, DATABASE_PASSWORD, DATABASE_NAME, DATABASE_PORT, DATABASE_SSLMODE, DATABASE_TIMEZONE)
	return dsn
}

// GetEnv returns the value of key or fallback when it is unset or empty.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// GetBool parses key as a boolean. Unset or unparsable values yield fallback.
func GetBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func GetInt(key string, fallback int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func IsProd() bool {
	return os.Getenv("API_ENV") == "production"
}

// CancelledBlocksAvailability keeps cancelled bookings counted as occupancy.
func CancelledBlocksAvailability() bool {
	return GetBool("CANCELLED_BLOCKS_AVAILABILITY", true)
}

func CurrencySymbol() string {
	return GetEnv("CURRENCY_SYMBOL", "$")
}

const (
	DATE_FORMAT = "2006-01-02"

	STRIPE_CURRENCY   = "usd"
	RAZORPAY_CURRENCY = "INR"

	DEFAULT_PAYMENT_METHOD  = "Pay At Hotel"
	PAYMENT_METHOD_STRIPE   = "Stripe"
	PAYMENT_METHOD_RAZORPAY = "Razorpay"

	MAX_RECENT_CITIES       = 3
	APPROVED_FEEDBACK_LIMIT = 20
	MAX_ROOM_IMAGES         = 5
)
