package auth

import (
	"collab-hub/domain"
	"collab-hub/errors"
	"collab-hub/mocks"
	"context"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var secret = []byte("test_secret_with_enough_entropy_2026")

func TestGatekeeper_Authenticate_Success(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIUserDirectory(ctrl)
	gate := NewGatekeeper(logs.GetLoggerFromLevel(slog.LevelDebug), secret, directory)

	// Given a token carrying the preferred claim
	token, err := GenerateToken(secret, "userId", "u1", time.Minute)
	req.NoError(err)
	directory.EXPECT().FindUser(gomock.Any(), "u1").
		Return(domain.User{ID: "u1", Name: "Ada"}, nil).Times(1)

	// When the handshake is authenticated
	user, err := gate.Authenticate(context.Background(), "Bearer "+token)

	// Then the user record is resolved
	req.NoError(err)
	req.Equal(domain.User{ID: "u1", Name: "Ada"}, user)
}

func TestGatekeeper_Authenticate_Legacy_Claims(t *testing.T) {
	for _, claim := range []string{"user_id", "id", "sub"} {
		t.Run(claim, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			directory := mocks.NewMockIUserDirectory(ctrl)
			gate := NewGatekeeper(slog.Default(), secret, directory)

			token, err := GenerateToken(secret, claim, "legacy", time.Minute)
			req.NoError(err)
			directory.EXPECT().FindUser(gomock.Any(), "legacy").
				Return(domain.User{ID: "legacy"}, nil).Times(1)

			user, err := gate.Authenticate(context.Background(), token)
			req.NoError(err)
			req.Equal("legacy", user.ID)
		})
	}
}

func TestGatekeeper_Authenticate_Falls_Through_Unresolvable_Claims(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIUserDirectory(ctrl)
	gate := NewGatekeeper(slog.Default(), secret, directory)

	// Given a token where "userId" points to a deleted user and "sub" to a live one
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "ghost",
		"sub":    "u2",
		"exp":    jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(secret)
	req.NoError(err)

	gomock.InOrder(
		directory.EXPECT().FindUser(gomock.Any(), "ghost").Return(domain.User{}, errors.ErrUserNotFound),
		directory.EXPECT().FindUser(gomock.Any(), "u2").Return(domain.User{ID: "u2"}, nil),
	)

	// When the handshake is authenticated
	user, err := gate.Authenticate(context.Background(), token)

	// Then the first resolvable claim in order is used
	req.NoError(err)
	req.Equal("u2", user.ID)
}

func TestGatekeeper_Authenticate_Rejections(t *testing.T) {
	expired, err := GenerateToken(secret, "userId", "u1", -time.Minute)
	require.NoError(t, err)
	foreign, err := GenerateToken([]byte("another_secret"), "userId", "u1", time.Minute)
	require.NoError(t, err)
	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"userId": "u1"}).SignedString(secret)
	require.NoError(t, err)
	noIdentity, err := GenerateToken(secret, "email", "u1@example.com", time.Minute)
	require.NoError(t, err)

	tests := []struct {
		name       string
		credential string
	}{
		{"Missing credential", ""},
		{"Garbage credential", "not-a-jwt"},
		{"Expired credential", expired},
		{"Signed with another key", foreign},
		{"Without expiry", noExpiry},
		{"Without identity claim", noIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			directory := mocks.NewMockIUserDirectory(ctrl)
			directory.EXPECT().FindUser(gomock.Any(), gomock.Any()).Times(0)
			gate := NewGatekeeper(slog.Default(), secret, directory)

			_, err := gate.Authenticate(context.Background(), tt.credential)
			req.True(errors.IsAuthentication(err))
		})
	}
}

func TestGatekeeper_Authenticate_Unknown_User(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIUserDirectory(ctrl)
	gate := NewGatekeeper(slog.Default(), secret, directory)

	token, err := GenerateToken(secret, "userId", "ghost", time.Minute)
	req.NoError(err)
	directory.EXPECT().FindUser(gomock.Any(), "ghost").Return(domain.User{}, errors.ErrUserNotFound)

	_, err = gate.Authenticate(context.Background(), token)
	req.True(errors.IsAuthentication(err))
	req.ErrorIs(err, errors.ErrNoIdentityClaim)
}

func TestCredentialFromRequest(t *testing.T) {
	req := require.New(t)

	r := httptest.NewRequest("GET", "/ws?token=from-query", nil)
	req.Equal("from-query", CredentialFromRequest(r))

	r.Header.Set("Authorization", "Bearer from-header")
	req.Equal("from-header", CredentialFromRequest(r))
}

func TestStripBearer_Is_Case_Insensitive(t *testing.T) {
	tests := []struct {
		credential string
		expected   string
	}{
		{"Bearer abc", "abc"},
		{"bearer abc", "abc"},
		{"BEARER   abc ", "abc"},
		{"abc", "abc"},
		{"Basic abc", "Basic abc"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.credential, func(t *testing.T) {
			require.Equal(t, tt.expected, StripBearer(tt.credential))
		})
	}
}

func TestGatekeeper_Authenticate_Lowercase_Scheme(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	directory := mocks.NewMockIUserDirectory(ctrl)
	gate := NewGatekeeper(slog.Default(), secret, directory)

	// Given a header using a lowercase scheme
	token, err := GenerateToken(secret, "userId", "u1", time.Minute)
	req.NoError(err)
	r := httptest.NewRequest("GET", "/ws", nil)
	r.Header.Set("Authorization", "bearer "+token)
	directory.EXPECT().FindUser(gomock.Any(), "u1").Return(domain.User{ID: "u1"}, nil)

	// When the handshake is authenticated
	user, err := gate.Authenticate(context.Background(), CredentialFromRequest(r))

	// Then the token is accepted
	req.NoError(err)
	req.Equal("u1", user.ID)
}
