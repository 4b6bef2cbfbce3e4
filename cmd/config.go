package cmd

import "time"

type Config struct {
	HTTPPort          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
	DurationFactor    int64
	MaxPriority       int
	RetentionPeriod   time.Duration
	RetentionSchedule string
}
