package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Analyses table: one row per classified piece of content
CREATE TABLE IF NOT EXISTS analyses (
    analysis_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT,
    title TEXT,
    byline TEXT,
    content_hash TEXT,

    -- Language detection
    language TEXT,
    language_confidence REAL,

    -- Classification result
    primary_beats TEXT NOT NULL,     -- JSON array, rank order
    secondary_beats TEXT NOT NULL,   -- JSON array, rank order
    confidence REAL NOT NULL,        -- 0-1
    reasoning TEXT,
    evidence_count INTEGER DEFAULT 0,

    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_analyses_url ON analyses(url);
CREATE INDEX IF NOT EXISTS idx_analyses_hash ON analyses(content_hash);
CREATE INDEX IF NOT EXISTS idx_analyses_confidence ON analyses(confidence);
CREATE INDEX IF NOT EXISTS idx_analyses_created ON analyses(created_at);

-- Per-beat rows for stats queries (which beats dominate, at what rank)
CREATE TABLE IF NOT EXISTS analysis_beats (
    beat_id INTEGER PRIMARY KEY AUTOINCREMENT,
    analysis_id INTEGER NOT NULL,
    beat TEXT NOT NULL,
    rank TEXT NOT NULL CHECK (rank IN ('primary', 'secondary')),
    position INTEGER NOT NULL,
    FOREIGN KEY (analysis_id) REFERENCES analyses(analysis_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_analysis_beats_beat ON analysis_beats(beat);
CREATE INDEX IF NOT EXISTS idx_analysis_beats_analysis ON analysis_beats(analysis_id);
`
