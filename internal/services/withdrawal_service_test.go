package services

import (
	"testing"

	"parcel_market/internal/models"
	"parcel_market/internal/repository"
	"parcel_market/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newWithdrawalFixture(t *testing.T) (WithdrawalService, *gorm.DB) {
	db := testutil.OpenTestDB(t)
	return NewWithdrawalService(repository.NewWithdrawalRepository(db)), db
}

func seedWallet(t *testing.T, db *gorm.DB, driverID uint, balance float64) {
	t.Helper()
	require.NoError(t, db.Create(&models.Wallet{DriverID: driverID, Balance: balance}).Error)
}

func TestRequestWithdrawal(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 100)

	withdrawal, err := svc.RequestWithdrawal(1, 60)
	require.NoError(t, err)
	assert.Equal(t, string(models.WithdrawalPending), withdrawal.Status)

	// Balance is only checked at request time, not reserved.
	var wallet models.Wallet
	require.NoError(t, db.Where("driver_id = ?", 1).First(&wallet).Error)
	assert.Equal(t, 100.0, wallet.Balance)
}

func TestRequestWithdrawalOverBalance(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 40)

	_, err := svc.RequestWithdrawal(1, 60)
	assertConflict(t, err)

	_, err = svc.RequestWithdrawal(1, 0)
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)
}

func TestApproveDebitsWallet(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 100)

	withdrawal, err := svc.RequestWithdrawal(1, 60)
	require.NoError(t, err)

	approved, err := svc.UpdateStatus(withdrawal.ID, string(models.WithdrawalApproved), "looks good")
	require.NoError(t, err)
	assert.Equal(t, string(models.WithdrawalApproved), approved.Status)

	var wallet models.Wallet
	require.NoError(t, db.Preload("Transactions").Where("driver_id = ?", 1).First(&wallet).Error)
	assert.Equal(t, 40.0, wallet.Balance)
	require.Len(t, wallet.Transactions, 1)
	assert.Equal(t, string(models.TransactionDebit), wallet.Transactions[0].Type)
}

func TestStatusTransitions(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 100)

	withdrawal, err := svc.RequestWithdrawal(1, 30)
	require.NoError(t, err)

	// pending -> paid skips approval and must fail.
	_, err = svc.UpdateStatus(withdrawal.ID, string(models.WithdrawalPaid), "")
	assertConflict(t, err)

	_, err = svc.UpdateStatus(withdrawal.ID, string(models.WithdrawalApproved), "")
	require.NoError(t, err)

	// approved -> rejected is not allowed.
	_, err = svc.UpdateStatus(withdrawal.ID, string(models.WithdrawalRejected), "")
	assertConflict(t, err)

	paid, err := svc.UpdateStatus(withdrawal.ID, string(models.WithdrawalPaid), "transferred")
	require.NoError(t, err)
	assert.Equal(t, string(models.WithdrawalPaid), paid.Status)

	_, err = svc.UpdateStatus(withdrawal.ID, "lost", "")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, svcErr.Code)
}

func TestApproveWithDrainedWallet(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 100)

	first, err := svc.RequestWithdrawal(1, 80)
	require.NoError(t, err)
	second, err := svc.RequestWithdrawal(1, 80)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(first.ID, string(models.WithdrawalApproved), "")
	require.NoError(t, err)

	// The second request passed the check at request time but the wallet
	// can no longer cover it.
	_, err = svc.UpdateStatus(second.ID, string(models.WithdrawalApproved), "")
	assertConflict(t, err)
}

func TestWithdrawalVisibility(t *testing.T) {
	svc, db := newWithdrawalFixture(t)
	seedWallet(t, db, 1, 100)
	seedWallet(t, db, 2, 100)

	mine, err := svc.RequestWithdrawal(1, 10)
	require.NoError(t, err)

	_, err = svc.GetForDriver(1, mine.ID)
	require.NoError(t, err)

	// Another driver cannot read it.
	_, err = svc.GetForDriver(2, mine.ID)
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, svcErr.Code)
}
