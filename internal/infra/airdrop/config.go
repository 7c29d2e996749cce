package airdrop

import "time"

// Default endpoint settings of the 0G Foundation airdrop service.
const (
	DefaultBaseURL  = "https://airdrop.0gfoundation.ai"
	DefaultEndpoint = "/api/eligibility"

	// QueryParam carries one or more comma-joined addresses.
	QueryParam = "walletAddresses"
)

// Config holds client settings.
type Config struct {
	BaseURL    string        `yaml:"base_url"`
	Endpoint   string        `yaml:"endpoint"`
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
}

// browserHeaders mimic the airdrop web app; the service rejects bare clients.
var browserHeaders = map[string]string{
	"Accept":                 "application/json, text/plain, */*",
	"Accept-Language":        "ru,ru-RU;q=0.9,en-US;q=0.8,en;q=0.7",
	"Content-Type":           "application/json",
	"clq-app-id":             "0g",
	"DNT":                    "1",
	"Priority":               "u=1, i",
	"Referer":                "https://airdrop.0gfoundation.ai/flow",
	"Sec-Ch-Ua":              `"Chromium";v="140", "Not=A?Brand";v="24", "Google Chrome";v="140"`,
	"Sec-Ch-Ua-Mobile":       "?0",
	"Sec-Ch-Ua-Platform":     `"Windows"`,
	"Sec-Fetch-Dest":         "empty",
	"Sec-Fetch-Mode":         "cors",
	"Sec-Fetch-Site":         "same-origin",
	"User-Agent":             "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/140.0.0.0 Safari/537.36",
	"X-Kl-Saas-Ajax-Request": "Ajax_Request",
}
