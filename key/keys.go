// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 13

// Account Credentials - these keys supply the optional platform login used for members-only content.
const (
	AuthUsername   = "auth.username"
	AuthPassword   = "auth.password"
	AuthUseKeyring = "auth.use_keyring"
)

// Platform API Endpoints - these keys pin the authority and base paths per deployment.
const (
	APIDomain   = "api.domain"
	APIBase     = "api.base"
	APIAuthBase = "api.auth_base"
	APIPerPage  = "api.per_page"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)
