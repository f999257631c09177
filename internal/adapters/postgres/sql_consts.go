package postgres

const (
	sqlTableLinks      = "links"
	sqlTableStatistics = "link_statistics"
	sqlTableSettings   = "settings"

	sqlColID        = "id"
	sqlColTargetURL = "target_url"
	sqlColCreatedAt = "created_at"

	sqlColLinkID    = "link_id"
	sqlColReferer   = "referer"
	sqlColUserAgent = "user_agent"

	sqlColGlobalAPIKey = "encrypted_global_api_key"

	// Sentinel id of the singleton settings row, provisioned out-of-band.
	settingsRowID = "DEFAULT_SETTINGS"
)
