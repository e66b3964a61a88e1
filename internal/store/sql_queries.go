package store

import (
	"time"

	"github.com/MKhiriev/go-admin-config/models"
	sq "github.com/Masterminds/squirrel"
)

const configTable = "admin_config"

func buildSelectAllConfigsQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	return sq.Select("domain", "payload").
		From(configTable).
		OrderBy("domain").
		PlaceholderFormat(ph).
		ToSql()
}

func buildSelectConfigQuery(ph sq.PlaceholderFormat, domain models.Domain) (string, []any, error) {
	return sq.Select("payload").
		From(configTable).
		Where(sq.Eq{"domain": string(domain)}).
		PlaceholderFormat(ph).
		ToSql()
}

// buildUpsertConfigQuery renders an INSERT ... ON CONFLICT understood by both
// PostgreSQL and SQLite 3.24+.
func buildUpsertConfigQuery(ph sq.PlaceholderFormat, domain models.Domain, payload []byte, now time.Time) (string, []any, error) {
	return sq.Insert(configTable).
		Columns("domain", "payload", "updated_at").
		Values(string(domain), string(payload), now.UTC()).
		Suffix("ON CONFLICT (domain) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at").
		PlaceholderFormat(ph).
		ToSql()
}

func buildDeleteConfigsQuery(ph sq.PlaceholderFormat, domains []models.Domain) (string, []any, error) {
	keys := make([]string, 0, len(domains))
	for _, d := range domains {
		keys = append(keys, string(d))
	}

	return sq.Delete(configTable).
		Where(sq.Eq{"domain": keys}).
		PlaceholderFormat(ph).
		ToSql()
}
