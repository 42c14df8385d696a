package main

import (
	"errors"
	"strings"
	"testing"

	"PortfolioSite/internal/validation"

	"github.com/stretchr/testify/require"
)

func productionConfig() config {
	return config{
		env: "production",
		auth: authConfig{
			secret:            strings.Repeat("k", 32),
			adminEmail:        "admin@example.com",
			adminPasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		},
		mail: mailConfig{host: "smtp.example.com", owner: "owner@example.com"},
	}
}

func requireInvalidKeys(t *testing.T, err error, keys ...string) {
	t.Helper()

	var verr *validation.ValidationError
	require.True(t, errors.As(err, &verr), "%v", err)
	for _, k := range keys {
		require.True(t, verr.Has(k), "falta %s en %v", k, verr.Fields)
	}
}

func TestConfigValidate_ProductionIsComplete(t *testing.T) {
	require.NoError(t, productionConfig().validate())
}

func TestConfigValidate_ProductionRequiresAdminAuth(t *testing.T) {
	cfg := productionConfig()
	cfg.auth = authConfig{}

	requireInvalidKeys(t, cfg.validate(), "AUTH_TOKEN_SECRET", "ADMIN_EMAIL", "ADMIN_PASSWORD_HASH")

	cfg = productionConfig()
	cfg.auth.secret = "corto"
	requireInvalidKeys(t, cfg.validate(), "AUTH_TOKEN_SECRET")
}

func TestConfigValidate_DevelopmentAllowsMissingAdmin(t *testing.T) {
	cfg := productionConfig()
	cfg.env = "development"
	cfg.auth = authConfig{}

	require.NoError(t, cfg.validate())
}

func TestConfigValidate_MailOwnerAlwaysRequired(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		cfg := productionConfig()
		cfg.env = env
		cfg.mail.owner = ""
		cfg.mail.host = ""

		requireInvalidKeys(t, cfg.validate(), "MAIL_OWNER", "SMTP_HOST")
	}

	cfg := productionConfig()
	cfg.mail.owner = "no-es-email"
	requireInvalidKeys(t, cfg.validate(), "MAIL_OWNER")
}
