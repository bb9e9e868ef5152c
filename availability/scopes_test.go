package availability

import (
	"strings"
	"testing"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// dryRunDB opens a gorm session that builds SQL without touching a database.
func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       "tester:tester@tcp(127.0.0.1:3306)/rental_test?charset=utf8mb4&parseTime=True",
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	if err != nil {
		t.Fatalf("open dry-run session: %v", err)
	}
	return db
}

func TestOverlapConditionSQL(t *testing.T) {
	db := dryRunDB(t)
	w := window(t, "2024-03-01", "2024-03-12")

	type booking struct{ ID uint }
	tx := db.Table("bookings").Scopes(OverlapCondition(w)).Find(&[]booking{})
	if tx.Error != nil {
		t.Fatalf("build query: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	for _, clause := range []string{
		"bookings.start_date BETWEEN ? AND ?",
		"bookings.end_date BETWEEN ? AND ?",
		"bookings.start_date <= ? AND bookings.end_date >= ?",
	} {
		if !strings.Contains(sql, clause) {
			t.Errorf("generated SQL missing clause %q:\n%s", clause, sql)
		}
	}
	if got := len(tx.Statement.Vars); got != 6 {
		t.Errorf("expected 6 bound vars, got %d", got)
	}
}

func TestExcludeBookedSQL(t *testing.T) {
	w := window(t, "2024-05-01", "2024-05-31")

	t.Run("loose checks only end date", func(t *testing.T) {
		db := dryRunDB(t)
		type property struct{ ID uint }
		tx := db.Table("properties").Scopes(ExcludeBooked(w, Policy{})).Find(&[]property{})
		if tx.Error != nil {
			t.Fatalf("build query: %v", tx.Error)
		}

		sql := tx.Statement.SQL.String()
		if !strings.Contains(sql, "NOT EXISTS") {
			t.Fatalf("exclusion must be an anti-join subquery:\n%s", sql)
		}
		if !strings.Contains(sql, "bookings.end_date BETWEEN ? AND ?") {
			t.Errorf("loose exclusion must test end_date in range:\n%s", sql)
		}
		if strings.Contains(sql, "bookings.start_date") {
			t.Errorf("loose exclusion must not test start_date:\n%s", sql)
		}
		if !strings.Contains(sql, "bookings.deleted_at IS NULL") {
			t.Errorf("soft-deleted bookings must not block search results:\n%s", sql)
		}
	})

	t.Run("strict applies full overlap", func(t *testing.T) {
		db := dryRunDB(t)
		type property struct{ ID uint }
		tx := db.Table("properties").
			Scopes(ExcludeBooked(w, Policy{StrictSearchExclusion: true})).
			Find(&[]property{})
		if tx.Error != nil {
			t.Fatalf("build query: %v", tx.Error)
		}

		sql := tx.Statement.SQL.String()
		if !strings.Contains(sql, "bookings.start_date <= ? AND bookings.end_date >= ?") {
			t.Errorf("strict exclusion must test full interval intersection:\n%s", sql)
		}
		if got := len(tx.Statement.Vars); got != 6 {
			t.Errorf("expected 6 bound vars under strict policy, got %d", got)
		}
	})
}
