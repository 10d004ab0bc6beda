package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"
)

// OpenDB opens the seller-directory database and installs the demo seed. The
// default DSN is ":memory:"; nothing here outlives the process.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	if err := seedUsers(db); err != nil {
		return nil, err
	}

	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Seller directory (read-only after seeding; deep links resolve here)
CREATE TABLE IF NOT EXISTS sellers(
  id TEXT PRIMARY KEY,
  store_name TEXT NOT NULL,
  established TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS seller_listings(
  id TEXT PRIMARY KEY,
  seller_id TEXT NOT NULL REFERENCES sellers(id) ON DELETE CASCADE,
  title TEXT NOT NULL,
  author TEXT NOT NULL,
  genre TEXT NOT NULL DEFAULT '',
  price NUMERIC NOT NULL CHECK (price >= 0)
);
CREATE INDEX IF NOT EXISTS idx_seller_listings_seller ON seller_listings(seller_id);

-- Local accounts for the swappable authenticator
CREATE TABLE IF NOT EXISTS users(
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  name TEXT NOT NULL,
  password_hash TEXT NOT NULL,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM sellers`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo seller directory")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO sellers(id,store_name,established) VALUES
	  ('seller-paperback-palace','Paperback Palace','March 2020'),
	  ('seller-dusty-jackets','Dusty Jackets','August 2018'),
	  ('seller-chapter-two','Chapter Two Books','January 2022')`)

	tx.MustExec(`INSERT INTO seller_listings(id,seller_id,title,author,genre,price) VALUES
	  ('sl-001','seller-paperback-palace','East of Eden','John Steinbeck','Fiction',24.00),
	  ('sl-002','seller-paperback-palace','The Left Hand of Darkness','Ursula K. Le Guin','Science Fiction',18.50),
	  ('sl-003','seller-dusty-jackets','A Brief History of Time','Stephen Hawking','Science',32.00),
	  ('sl-004','seller-dusty-jackets','In Cold Blood','Truman Capote','True Crime',27.99),
	  ('sl-005','seller-chapter-two','Goodnight Moon','Margaret Wise Brown','Children',9.99)`)

	return tx.Commit()
}

// seedUsers ensures one demo account exists (idempotent). The stub
// authenticator never reads it; the local authenticator does.
func seedUsers(db *sqlx.DB) error {
	h, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), 12)
	if err != nil {
		return err
	}

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO users(id,email,name,password_hash)
		VALUES('u-demo','reader@bookworm.test','Demo Reader',?)
		ON CONFLICT(email) DO NOTHING
	`, string(h)); err != nil {
		return err
	}

	return tx.Commit()
}
