package output

import (
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/orthologr/gestimator/pairwise"
)

const createTable = `CREATE TABLE results (
	query TEXT NOT NULL,
	subject TEXT NOT NULL,
	codons INTEGER NOT NULL,
	sites INTEGER NOT NULL,
	differences INTEGER NOT NULL,
	synonymous INTEGER NOT NULL,
	nonsynonymous INTEGER NOT NULL,
	undetermined INTEGER NOT NULL,
	transitions INTEGER NOT NULL,
	transversions INTEGER NOT NULL,
	excluded INTEGER NOT NULL,
	pdistance REAL NOT NULL
)`

const insertRow = `INSERT INTO results VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

func init() {
	register("sqlite", ".sqlite", WriteSQLite)
}

// WriteSQLite writes results into a new sqlite database with a single
// table "results".
func WriteSQLite(fileName string, results []pairwise.Result) (err error) {
	f, err := tempFile(fileName)
	if err != nil {
		return err
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if err = f.Chmod(0644); err != nil {
		f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", tmpName)
	if err != nil {
		return err
	}
	if err = fillDB(db, results); err != nil {
		db.Close()
		return err
	}
	if err = db.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, fileName)
}

func fillDB(db *sql.DB, results []pairwise.Result) error {
	if _, err := db.Exec(createTable); err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(insertRow)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, r := range results {
		_, err := stmt.Exec(r.Query, r.Subject, r.Codons, r.Sites, r.Differences,
			r.Synonymous, r.Nonsynonymous, r.Undetermined,
			r.Transitions, r.Transversions, r.Excluded, r.PDistance())
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
