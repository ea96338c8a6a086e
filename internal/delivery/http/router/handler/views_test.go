package handler

import (
	"encoding/json"
	"testing"
	"time"

	"rituality/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserView_NeverExposesCredentials(t *testing.T) {
	now := time.Now()
	user := &entity.User{
		ID:              uuid.New(),
		Email:           "owner@example.com",
		Name:            "Owner",
		PasswordHash:    "$2a$10$secret-hash",
		UserType:        entity.UserTypeHomeowner,
		EmailVerifiedAt: &now,
		Permissions:     entity.DefaultPermissions(uuid.New()),
		CreatedAt:       now,
	}

	payload, err := json.Marshal(toUserView(user))
	require.NoError(t, err)

	body := string(payload)
	assert.NotContains(t, body, "secret-hash")
	assert.NotContains(t, body, "PasswordHash")
	assert.Contains(t, body, `"emailVerified":true`)
	assert.Contains(t, body, `"marketingOptIn":true`)
	assert.Contains(t, body, `"calendarAccess":false`)
}

func TestUserView_OmitsPermissionsWhenNotLoaded(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		UserType: entity.UserTypeHomeowner,
	}

	payload, err := json.Marshal(toUserView(user))
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "permissions")
	assert.Contains(t, string(payload), `"emailVerified":false`)
}

func TestDeviceView_NeverExposesTokenHashes(t *testing.T) {
	device := &entity.UserDevice{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		TokenHash:        "access-hash",
		RefreshTokenHash: "refresh-hash",
		DeviceType:       "ios",
		DeviceName:       "iPhone",
	}

	payload, err := json.Marshal(toDeviceView(device))
	require.NoError(t, err)

	body := string(payload)
	assert.NotContains(t, body, "access-hash")
	assert.NotContains(t, body, "refresh-hash")
	assert.Contains(t, body, `"deviceType":"ios"`)
}

func TestProviderProfileView_MapsTags(t *testing.T) {
	designer := &entity.DesignerProfile{
		UserID:   uuid.New(),
		Styles:   []string{"scandinavian", "industrial"},
		Verified: true,
	}
	contractor := &entity.ContractorProfile{
		UserID: uuid.New(),
		Trades: []string{"plumbing"},
	}

	assert.Equal(t, []string{"scandinavian", "industrial"}, toDesignerProfileView(designer).Tags)
	assert.True(t, toDesignerProfileView(designer).Verified)
	assert.Equal(t, []string{"plumbing"}, toContractorProfileView(contractor).Tags)
	assert.False(t, toContractorProfileView(contractor).Verified)
}
