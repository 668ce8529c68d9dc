package config

import (
	"fmt"

	"github.com/heartmarshall/voucher-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if len(c.Auth.AdminRoleList()) == 0 {
		return fmt.Errorf("auth.admin_roles must name at least one role")
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.RateLimit.Enabled && (c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0) {
		return fmt.Errorf("rate_limit: requests and window must be > 0")
	}

	if err := c.Statistics.validate(); err != nil {
		return fmt.Errorf("statistics: %w", err)
	}

	if c.Vouchers.MaxExtensionDays <= 0 {
		return fmt.Errorf("vouchers.max_extension_days must be > 0 (got %d)", c.Vouchers.MaxExtensionDays)
	}

	return nil
}

func (s *StatisticsConfig) validate() error {
	if !domain.BookingStatus(s.CountedStatus).IsValid() {
		return fmt.Errorf("counted_status %q is not a booking status", s.CountedStatus)
	}
	if s.MaxRangeYears < 0 {
		return fmt.Errorf("max_range_years must be >= 0 (got %d)", s.MaxRangeYears)
	}
	return nil
}
