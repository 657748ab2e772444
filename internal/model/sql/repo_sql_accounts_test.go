package sql

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"alumnihub/internal/entity"
)

func newRepoWithMock(t *testing.T) (*GormRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open error: %v", err)
	}
	return NewGormRepository(gormDB), mock, db
}

func accountColumns() []string {
	return []string{
		"id", "created_at", "updated_at", "email", "password_hash",
		"first_name", "last_name", "role", "approval_status", "is_active",
		"email_verified", "external_id", "graduation_year", "degree",
		"major", "phone", "chapter",
	}
}

func accountRow(rows *sqlmock.Rows, id uint, createdAt time.Time, email, role string) *sqlmock.Rows {
	return rows.AddRow(
		id, createdAt, createdAt, email, "$2a$10$hash",
		"Ada", "Lovelace", role, entity.ApprovalStatusApproved, true,
		true, "", 1984, "BSc", "Mathematics", "000-0000", "headquarters",
	)
}

func TestCreateAccount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectCommit()

	account := &entity.DbAccount{
		Email:          "ada@alumni.org",
		PasswordHash:   "$2a$10$hash",
		FirstName:      "Ada",
		LastName:       "Lovelace",
		Role:           entity.AccountRoleSuperAdmin,
		ApprovalStatus: entity.ApprovalStatusApproved,
		IsActive:       true,
		EmailVerified:  true,
	}
	if err := repo.CreateAccount(context.Background(), account); err != nil {
		t.Fatalf("CreateAccount error: %v", err)
	}
	if account.ID != 7 {
		t.Fatalf("expected returned id 7, got %d", account.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAccountNil(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.CreateAccount(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil account")
	}
}

func TestGetAccountByEmailLowercasesLookup(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := accountRow(sqlmock.NewRows(accountColumns()), 3, time.Now(), "ada@alumni.org", entity.AccountRoleMember)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE LOWER\(email\) = \$1`).
		WillReturnRows(rows)

	account, err := repo.GetAccountByEmail(context.Background(), "  ADA@Alumni.ORG ")
	if err != nil {
		t.Fatalf("GetAccountByEmail error: %v", err)
	}
	if account.ID != 3 || account.Email != "ada@alumni.org" {
		t.Fatalf("unexpected account: %+v", account)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetAccountByEmailNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE LOWER\(email\) = \$1`).
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	_, err := repo.GetAccountByEmail(context.Background(), "ghost@alumni.org")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}

func TestFindAccountByRole(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := accountRow(sqlmock.NewRows(accountColumns()), 1, time.Now(), "root@alumni.org", entity.AccountRoleSuperAdmin)
	mock.ExpectQuery(`SELECT \* FROM "accounts" WHERE role = \$1`).
		WillReturnRows(rows)

	account, err := repo.FindAccountByRole(context.Background(), entity.AccountRoleSuperAdmin)
	if err != nil {
		t.Fatalf("FindAccountByRole error: %v", err)
	}
	if account.Role != entity.AccountRoleSuperAdmin {
		t.Fatalf("unexpected role: %s", account.Role)
	}
}

func TestListRecentAccountsOrdersByCreationDesc(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(accountColumns())
	accountRow(rows, 9, now, "new@alumni.org", entity.AccountRoleMember)
	accountRow(rows, 8, now.Add(-time.Hour), "older@alumni.org", entity.AccountRoleMember)

	mock.ExpectQuery(`SELECT \* FROM "accounts" ORDER BY created_at DESC LIMIT`).
		WillReturnRows(rows)

	accounts, err := repo.ListRecentAccounts(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListRecentAccounts error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].Email != "new@alumni.org" {
		t.Fatalf("expected newest account first, got %s", accounts[0].Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCountAccounts(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "accounts"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(42)))

	count, err := repo.CountAccounts(context.Background())
	if err != nil {
		t.Fatalf("CountAccounts error: %v", err)
	}
	if count != 42 {
		t.Fatalf("expected 42, got %d", count)
	}
}

func TestUpdateAccountSkipsEmptyUpdates(t *testing.T) {
	repo, _, db := newRepoWithMock(t)
	defer db.Close()

	// no expectations registered: an issued query would fail the test
	if err := repo.UpdateAccount(context.Background(), 1, entity.AccountUpdates{}); err != nil {
		t.Fatalf("UpdateAccount error: %v", err)
	}
}

func TestUpdateAccountAppliesFields(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "accounts" SET .*"approval_status"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	approved := entity.ApprovalStatusApproved
	err := repo.UpdateAccount(context.Background(), 5, entity.AccountUpdates{ApprovalStatus: &approved})
	if err != nil {
		t.Fatalf("UpdateAccount error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteAccountNotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "accounts"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.DeleteAccount(context.Background(), 99)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("want gorm.ErrRecordNotFound, got %v", err)
	}
}
