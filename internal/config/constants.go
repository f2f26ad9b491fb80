package config

const (
	envSeasonXML       = "SEASON_XML"
	envSquadXML        = "SQUAD_XML"
	envReportXLSX      = "REPORT_XLSX"
	envProvider        = "PROVIDER"
	envBadgeImage      = "BADGE_IMAGE"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envAliasesFile     = "COMPETITION_ALIASES_FILE"
	envConsoleOutput   = "CONSOLE_OUTPUT"
	envLeadersSkipZero = "LEADERS_SKIP_ZERO"
	envMinutesPercent  = "MINUTES_PERCENTILE"
	envMetricsOn       = "METRICS_ENABLED"
	envMetricsTextfile = "METRICS_TEXTFILE"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envDotenvFile      = "DOTENV_FILE"
	envSnapshotKeep    = "SNAPSHOT_RETENTION_DAYS"

	defaultSeasonXML    = "sample.xml"
	defaultSquadXML     = "2021_squads.xml"
	defaultReportXLSX   = "pen_pictures.xlsx"
	defaultProvider     = "opta"
	defaultDotenvFile   = ".env"
	defaultServiceName  = "pen-pictures"
	defaultConsole      = true
	defaultSkipZero     = false
	defaultMetricsOn    = false
	defaultOtelInsecure = true
	// Percentile of squad minutes used as the "regular player" threshold.
	defaultMinutesPercentile = 33.0
)
