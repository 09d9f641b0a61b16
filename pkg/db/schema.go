package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Lookup history: one row per successful dictionary lookup
CREATE TABLE IF NOT EXISTS lookups (
    lookup_id INTEGER PRIMARY KEY AUTOINCREMENT,
    word TEXT NOT NULL,
    lang TEXT NOT NULL,
    variant TEXT NOT NULL,          -- network, bilingual, basic
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_lookups_word ON lookups(word);
CREATE INDEX IF NOT EXISTS idx_lookups_created ON lookups(created_at);

-- Raw-response cache, keyed by full request URL
CREATE TABLE IF NOT EXISTS response_cache (
    url TEXT PRIMARY KEY,
    body BLOB NOT NULL,
    fetched_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`
