package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS transactions (
    id                      TEXT PRIMARY KEY,
    file_path               TEXT NOT NULL,
    account_id              TEXT,
    date                    TEXT NOT NULL,
    amount                  INTEGER NOT NULL,
    category_id             TEXT,
    category_name           TEXT,
    payee_id                TEXT,
    payee_name              TEXT,
    is_transfer             INTEGER NOT NULL DEFAULT 0,
    is_off_budget           INTEGER NOT NULL DEFAULT 0,
    transfer_to_off_budget  INTEGER NOT NULL DEFAULT 0,
    is_income               INTEGER NOT NULL DEFAULT 0,
    parsed_at               TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS file_tracker (
    file_path            TEXT PRIMARY KEY,
    mtime_ns             INTEGER NOT NULL,
    size_bytes           INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_txn_file ON transactions(file_path);
CREATE INDEX IF NOT EXISTS idx_txn_date ON transactions(date);
`
