package postgresql_test

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stafflane/hradmin-backend-go/internal/pkg/database"
)

var (
	testDB     *database.DB
	testDBErr  error
	testDBOnce sync.Once
)

const testSchema = `
CREATE TABLE IF NOT EXISTS admins (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS employees (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	emp_id TEXT NOT NULL,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	department TEXT NOT NULL,
	country TEXT NOT NULL,
	state TEXT NOT NULL,
	city TEXT NOT NULL,
	date_of_joining DATE NOT NULL,
	dob DATE NOT NULL,
	email TEXT NOT NULL,
	mobile TEXT NOT NULL,
	address TEXT NOT NULL,
	photo_url TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT employees_email_key UNIQUE (email),
	CONSTRAINT employees_emp_id_key UNIQUE (emp_id)
);

CREATE TABLE IF NOT EXISTS attendance (
	id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	employee_id UUID NOT NULL REFERENCES employees (id) ON DELETE CASCADE,
	date DATE NOT NULL,
	status TEXT NOT NULL,
	check_in_time TIMESTAMPTZ,
	check_out_time TIMESTAMPTZ,
	work_hours DOUBLE PRECISION,
	notes TEXT,
	location TEXT,
	employee_name TEXT NOT NULL,
	employee_emp_id TEXT NOT NULL,
	department TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	CONSTRAINT attendance_employee_id_date_key UNIQUE (employee_id, date)
);
`

// requireTestDB connects to the database named by TEST_DATABASE_URL and
// ensures the schema exists. Tests are skipped when the variable is unset.
func requireTestDB(t *testing.T) *database.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	testDBOnce.Do(func() {
		testDB, testDBErr = database.NewPostgreSQLDB(dsn)
		if testDBErr != nil {
			return
		}
		_, testDBErr = testDB.Exec(context.Background(), testSchema)
	})
	if testDBErr != nil {
		t.Fatalf("failed to set up test database: %v", testDBErr)
	}

	return testDB
}

func truncateTables(t *testing.T, ctx context.Context) {
	t.Helper()

	for _, table := range []string{"attendance", "employees", "admins"} {
		_, err := testDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			t.Fatalf("failed to truncate table %s: %v", table, err)
		}
	}
}
