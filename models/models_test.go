package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rpupo63/portfolio-backend/auth"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func TestBaseAssignsID(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(All()...))

	skill := Skill{Name: "Go", Category: "Backend", Level: 5}
	require.NoError(t, db.Create(&skill).Error)
	assert.NotEqual(t, uuid.Nil, skill.ID)
	assert.False(t, skill.CreatedAt.IsZero())
}

func TestColumnMismatchReport(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(All()...))
	require.NoError(t, db.Exec("ALTER TABLE articles ADD COLUMN category TEXT").Error)

	report, err := FindColumnMismatches(db)
	require.NoError(t, err)
	require.Len(t, report, len(All()))

	for _, entry := range report {
		assert.False(t, entry.Missing, entry.Table)
		if entry.Table == "articles" {
			assert.Equal(t, []string{"category"}, entry.Columns)
		} else {
			assert.Empty(t, entry.Columns, entry.Table)
		}
	}
}

func TestColumnMismatchReportMissingTable(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.AutoMigrate(&Skill{}))

	report, err := FindColumnMismatches(db)
	require.NoError(t, err)

	missing := 0
	for _, entry := range report {
		if entry.Missing {
			missing++
		}
	}
	assert.Equal(t, len(All())-1, missing)
}

func TestJSONShape(t *testing.T) {
	svc := Service{Name: "Consulting", Price: decimal.RequireFromString("49.50"), Unit: DefaultServiceUnit}
	raw, err := json.Marshal(svc)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, 49.5, out["price"])
	assert.Equal(t, []any{}, out["features"])
	assert.Contains(t, out, "createdAt")

	name := "Admin"
	u := User{Email: "a@example.com", Password: "hash", Name: &name, Role: auth.RoleAdmin}
	raw, err = json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "hash")
	assert.Equal(t, auth.Identity{UserID: u.ID.String(), Email: "a@example.com", Name: "Admin", Role: auth.RoleAdmin}, u.Identity())
}
