package configs

// Paging limits for list endpoints.
const (
	DefaultLimitList          = 20
	MaxLimitList              = 100
	DefaultLimitNotifications = 50
	MaxLimitNotifications     = 200
)

// Upload limits.
const (
	MaxUploadSizeBytes = 5 * 1024 * 1024
	MaxImageEdgePx     = 1280
)

// Default per-type leave balances granted to a new agent.
var DefaultLeaveBalances = map[string]float64{
	"annual": 14,
	"sick":   10,
	"casual": 5,
	"unpaid": 365,
}
