package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

// Las cinco relaciones del maestro más la tabla de balances materializados.
// Entradas y salidas comparten tabla como variante etiquetada (kind), lo que
// simplifica la verificación de la ley de reconciliación.
const schemaDDL = `
CREATE TABLE IF NOT EXISTS users (
	id            UUID PRIMARY KEY,
	username      TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	full_name     TEXT NOT NULL,
	role          TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS categories (
	id          UUID PRIMARY KEY,
	name        TEXT UNIQUE NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	parent_id   UUID REFERENCES categories(id),
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS items (
	id             UUID PRIMARY KEY,
	code           TEXT UNIQUE NOT NULL,
	name           TEXT NOT NULL,
	category_id    UUID NOT NULL REFERENCES categories(id),
	specification  TEXT NOT NULL DEFAULT '',
	unit           TEXT NOT NULL,
	supplier       TEXT NOT NULL DEFAULT '',
	purchase_price NUMERIC(14,2) NOT NULL DEFAULT 0,
	selling_price  NUMERIC(14,2) NOT NULL DEFAULT 0,
	min_stock      BIGINT NOT NULL DEFAULT 0 CHECK (min_stock >= 0),
	max_stock      BIGINT NOT NULL DEFAULT 1000 CHECK (max_stock >= 0),
	created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS stock_transactions (
	id              UUID PRIMARY KEY,
	kind            TEXT NOT NULL CHECK (kind IN ('receipt', 'issue')),
	item_id         UUID NOT NULL REFERENCES items(id),
	quantity        BIGINT NOT NULL CHECK (quantity > 0),
	unit_price      NUMERIC(14,2) NOT NULL DEFAULT 0,
	total_amount    NUMERIC(14,2) NOT NULL DEFAULT 0,
	supplier        TEXT NOT NULL DEFAULT '',
	batch_number    TEXT NOT NULL DEFAULT '',
	production_date DATE,
	expiry_date     DATE,
	recipient       TEXT NOT NULL DEFAULT '',
	purpose         TEXT NOT NULL DEFAULT '',
	operator_id     UUID NOT NULL REFERENCES users(id),
	occurred_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
	notes           TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_stock_transactions_kind_time
	ON stock_transactions (kind, occurred_at DESC);
CREATE INDEX IF NOT EXISTS idx_stock_transactions_item
	ON stock_transactions (item_id);

CREATE TABLE IF NOT EXISTS balances (
	id              UUID PRIMARY KEY,
	item_id         UUID NOT NULL REFERENCES items(id),
	batch_number    TEXT NOT NULL DEFAULT '',
	quantity        BIGINT NOT NULL CHECK (quantity > 0),
	production_date DATE,
	expiry_date     DATE,
	created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (item_id, batch_number)
);

CREATE INDEX IF NOT EXISTS idx_balances_item ON balances (item_id, created_at);
`

// Credenciales del administrador sembrado en el primer arranque.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
	defaultAdminFullName = "Administrador del sistema"
)

// EnsureSchema crea las tablas si no existen y siembra el usuario
// administrador por defecto exactamente una vez (solo si no existe ya un
// usuario con ese username).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("crear esquema: %w", err)
	}
	return seedDefaultAdmin(ctx, pool)
}

func seedDefaultAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	err := pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE username = $1`, defaultAdminUsername,
	).Scan(&count)
	if err != nil {
		return fmt.Errorf("verificar admin: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash de contraseña: %w", err)
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, full_name, role)
		VALUES ($1, $2, $3, $4, 'admin')`,
		uuid.New().String(), defaultAdminUsername, string(hash), defaultAdminFullName,
	)
	if err != nil {
		// Carrera benigna con otro arranque simultáneo.
		if isUniqueViolation(err) {
			return nil
		}
		return fmt.Errorf("sembrar admin: %w", err)
	}
	return nil
}
