package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

var steps = []migrationStep{
	{
		Name: "create_extension_uuid_ossp",
		SQL:  `CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	},
	{
		Name: "create_table_lawyers",
		SQL: `CREATE TABLE IF NOT EXISTS lawyers (
  id          UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name  TEXT        NOT NULL,
  last_name   TEXT        NOT NULL,
  email       TEXT        NOT NULL UNIQUE,
  specialty   TEXT,
  phone       TEXT,
  hourly_rate NUMERIC(10,2),
  created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_clients",
		SQL: `CREATE TABLE IF NOT EXISTS clients (
  id         UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  first_name TEXT        NOT NULL,
  last_name  TEXT        NOT NULL,
  email      TEXT        NOT NULL UNIQUE,
  phone      TEXT,
  address    TEXT,
  created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_table_cases",
		SQL: `CREATE TABLE IF NOT EXISTS cases (
  id                    UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  case_title            TEXT        NOT NULL,
  case_description      TEXT,
  case_status           TEXT        NOT NULL DEFAULT 'Open' CHECK (case_status IN ('Open', 'In-Progress', 'Closed')),
  client_id             UUID        NOT NULL REFERENCES clients (id),
  lawyer_id             UUID        NOT NULL REFERENCES lawyers (id),
  opened_date           TIMESTAMPTZ NOT NULL DEFAULT now(),
  updated_at            TIMESTAMPTZ NOT NULL DEFAULT now(),
  document_with_weights TSVECTOR
);`,
	},
	{
		Name: "create_function_cases_tsvector_update",
		SQL: `CREATE OR REPLACE FUNCTION cases_tsvector_update() RETURNS trigger AS $$
BEGIN
  NEW.document_with_weights :=
    setweight(to_tsvector('spanish', coalesce(NEW.case_title, '')), 'A') ||
    setweight(to_tsvector('spanish', coalesce(NEW.case_description, '')), 'B');
  RETURN NEW;
END
$$ LANGUAGE plpgsql;`,
	},
	{
		Name: "create_trigger_cases_tsvector",
		SQL: `CREATE TRIGGER trg_cases_tsvector
  BEFORE INSERT OR UPDATE OF case_title, case_description ON cases
  FOR EACH ROW EXECUTE FUNCTION cases_tsvector_update();`,
	},
	{
		Name: "create_index_cases_document_with_weights",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_document_with_weights ON cases USING GIN (document_with_weights);`,
	},
	{
		Name: "create_index_cases_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_client_id ON cases (client_id);`,
	},
	{
		Name: "create_index_cases_lawyer_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_lawyer_id ON cases (lawyer_id);`,
	},
	{
		Name: "create_index_cases_case_status",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_cases_case_status ON cases (case_status);`,
	},
	{
		Name: "create_table_receipts",
		SQL: `CREATE TABLE IF NOT EXISTS receipts (
  id             UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  client_id      UUID          NOT NULL REFERENCES clients (id),
  lawyer_id      UUID          NOT NULL REFERENCES lawyers (id),
  case_id        UUID          REFERENCES cases (id),
  amount         NUMERIC(12,2) NOT NULL,
  concept        TEXT          NOT NULL,
  payment_method TEXT,
  payment_date   TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_receipts_client_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receipts_client_id ON receipts (client_id);`,
	},
	{
		Name: "create_index_receipts_lawyer_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receipts_lawyer_id ON receipts (lawyer_id);`,
	},
	{
		Name: "create_index_receipts_case_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_receipts_case_id ON receipts (case_id);`,
	},
	{
		Name: "create_table_invoices",
		SQL: `CREATE TABLE IF NOT EXISTS invoices (
  id             UUID          PRIMARY KEY DEFAULT uuid_generate_v4(),
  receipt_id     UUID          NOT NULL REFERENCES receipts (id),
  invoice_number TEXT          NOT NULL UNIQUE,
  due_date       TIMESTAMPTZ,
  tax_amount     NUMERIC(12,2),
  total_amount   NUMERIC(12,2) NOT NULL,
  status         TEXT          NOT NULL DEFAULT 'Pending',
  created_at     TIMESTAMPTZ   NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_invoices_receipt_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_invoices_receipt_id ON invoices (receipt_id);`,
	},
	{
		Name: "create_table_case_documents",
		SQL: `CREATE TABLE IF NOT EXISTS case_documents (
  id           UUID        PRIMARY KEY DEFAULT uuid_generate_v4(),
  case_id      UUID        NOT NULL REFERENCES cases (id),
  filename     TEXT        NOT NULL,
  storage_path TEXT        NOT NULL UNIQUE,
  size         BIGINT      NOT NULL CHECK (size >= 0),
  content_type TEXT        NOT NULL,
  uploaded_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_case_documents_case_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_case_documents_case_id ON case_documents (case_id);`,
	},
}

// StepSQL returns the SQL text of the named migration step.
func StepSQL(name string) (string, bool) {
	for _, s := range steps {
		if s.Name == name {
			return s.SQL, true
		}
	}
	return "", false
}

// EnsureMigrated checks if the 'cases' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	query := "SELECT to_regclass('public.cases') IS NOT NULL"
	err := db.QueryRowContext(ctx, query).Scan(&exists)
	if err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "in_progress",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
