package services

import (
	"testing"

	"parcel_market/internal/auth"
	"parcel_market/internal/models"
	"parcel_market/internal/repository"
	"parcel_market/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDriverService(t *testing.T) DriverService {
	db := testutil.OpenTestDB(t)
	return NewDriverService(repository.NewDriverRepository(db), auth.NewManager("test-secret"))
}

func TestDriverRegisterAndLogin(t *testing.T) {
	svc := newDriverService(t)

	driver := &models.Driver{Name: "Hassan", Phone: "0509998888", Email: "hassan@example.com"}
	require.NoError(t, svc.Register(driver, "roadrunner"))
	assert.True(t, driver.IsAvailable)

	token, logged, err := svc.Login("0509998888", "roadrunner")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, driver.ID, logged.ID)

	_, _, err = svc.Login("0509998888", "wrong")
	require.Error(t, err)
	svcErr, ok := err.(*ServiceError)
	require.True(t, ok)
	assert.Equal(t, CodeUnauthorized, svcErr.Code)
}

func TestDriverRegisterDuplicatePhone(t *testing.T) {
	svc := newDriverService(t)

	require.NoError(t, svc.Register(&models.Driver{Name: "A", Phone: "0501231234"}, "pw"))

	err := svc.Register(&models.Driver{Name: "B", Phone: "0501231234"}, "pw")
	assertConflict(t, err)
}
