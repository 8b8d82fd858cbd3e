// Package config loads the server configuration.
//
// Sources, lowest precedence first:
//
//	defaults
//	YAML file (optional)
//	environment: OSDAG_ADDR, OSDAG_LOG_LEVEL, OSDAG_AUTH_ENABLED,
//	             TOKEN_KEY, ADMIN_PASSWORD_HASH
//
// A .env file in the working directory populates the environment first.
// Secrets are never read from the YAML file.
package config
