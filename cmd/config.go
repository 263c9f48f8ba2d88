package cmd

type Config struct {
	HTTPPort       string
	OwnerID        string
	AmqpURL        string
	ReportSchedule string
}
