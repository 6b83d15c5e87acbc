package cmd

// Config carries the environment-derived process configuration.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// StatisticsReportSchedule is the cron expression of the periodic
	// statistics report job, e.g. "0 * * * *".
	StatisticsReportSchedule string
}
