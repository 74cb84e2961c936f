package model

import "time"

const DefaultTimeout = 500 * time.Millisecond

const HeaderContentType = "Content-Type"

type ContextKey string

const (
	KeyContextLogger ContextKey = "logger"
	KeyContextUserID ContextKey = "user_id"
)

const KeyLoggerError = "error"

// PointsPerCurrencyUnit is the fixed redemption rate: 100 points are worth 1.
const PointsPerCurrencyUnit = 100
