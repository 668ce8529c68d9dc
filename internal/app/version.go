package app

// Build metadata, stamped by the release build:
//
//	go build -ldflags "-X github.com/heartmarshall/voucher-backend/internal/app.Version=1.4.0 \
//	  -X github.com/heartmarshall/voucher-backend/internal/app.Commit=$(git rev-parse --short HEAD)" ./cmd/...
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version reported by /health and the startup log.
func BuildVersion() string {
	v := Version + "+" + Commit
	if BuildTime != "unknown" {
		v += " " + BuildTime
	}
	return v
}
