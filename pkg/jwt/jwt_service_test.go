package jwt

import (
	"family-foodie/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := NewJWTService()

	token := service.GenerateTokenUser("user-1", "household-1", domain.RoleMember)
	require.NotEmpty(t, token)

	userID, householdID, role, err := service.GetClaimsByToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "household-1", householdID)
	assert.Equal(t, domain.RoleMember, role)
}

func TestGetClaimsByTokenRejectsGarbage(t *testing.T) {
	service := NewJWTService()

	_, _, _, err := service.GetClaimsByToken("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestGetClaimsByTokenRejectsForeignSignature(t *testing.T) {
	service := NewJWTService()
	foreign := &jwtService{secretKey: "some-other-secret", issuer: "FAMILY_FOODIE"}

	token := foreign.GenerateTokenUser("user-1", "household-1", domain.RoleAdmin)
	_, _, _, err := service.GetClaimsByToken(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
