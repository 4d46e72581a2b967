package server

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strings"

	"github.com/gchaincl/sqlhooks"
	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"
)

var DB *sqlx.DB

var logSql = log.New(os.Stdout, "sql: ", log.LstdFlags)

type Hooks struct{}

func (h *Hooks) Before(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	return ctx, nil
}

func (h *Hooks) After(ctx context.Context, query string, args ...interface{}) (context.Context, error) {
	logSql.Println(strings.Join(strings.Fields(query), " "))
	logSql.Println(args...)
	return ctx, nil
}

func init() {
	sql.Register("sqlite3log", sqlhooks.Wrap(&sqlite3.SQLiteDriver{}, &Hooks{}))
}

var schema = `
create table if not exists user (
  id text primary key,
  description text not null default '',
  password text not null
);
create table if not exists party (
  id integer primary key autoincrement,
  name text not null,
  contact text not null default '',
  address text not null default '',
  gstin text not null default ''
);
create table if not exists challan (
  id integer primary key autoincrement,
  challan_number text not null,
  party_id integer not null references party(id),
  date text not null default '',
  amount real not null default 0,
  description text not null default ''
);
create table if not exists payment (
  id integer primary key autoincrement,
  party_id integer not null references party(id),
  amount real not null default 0,
  payment_date text not null default '',
  notes text not null default ''
);
create table if not exists employee (
  id integer primary key autoincrement,
  name text not null,
  contact text not null default '',
  role text not null default '',
  joining_date text not null default ''
);
create table if not exists salary (
  id integer primary key autoincrement,
  employee_id integer not null references employee(id),
  month text not null default '',
  year integer not null default 0,
  amount real not null,
  paid_date text not null default '',
  notes text not null default ''
);
create table if not exists office_expense (
  id integer primary key autoincrement,
  category text not null default '',
  description text not null default '',
  amount real not null,
  date text not null default ''
);`

// OpenDB connects to the sqlite file through the logging driver and
// bootstraps the schema. Foreign keys are enforced so a challan or payment
// can never reference a missing party.
func OpenDB(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3log", path)
	if err != nil {
		return nil, err
	}
	// one connection so the PRAGMA sticks and writes serialize
	db.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys = ON;")
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// SeedUser creates the login user if it does not exist yet.
func SeedUser(db *sqlx.DB, username, password string) error {
	var n int
	if err := db.Get(&n, "select count(*) from user where id=?", username); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	_, err = db.Exec("insert into user(id, description, password) values(?,?,?)", username, "Administrator", string(hash))
	return err
}
