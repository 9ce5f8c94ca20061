package auth

import (
	"collab-hub/contract"
	"collab-hub/domain"
	"collab-hub/errors"
	"context"
	stderrors "errors"
	"log/slog"
)

var _ contract.IAuthenticator = (*Gatekeeper)(nil)

// Gatekeeper authenticates the handshake credential of a new connection.
// A rejected handshake is never retried here.
type Gatekeeper struct {
	log        *slog.Logger
	secret     []byte
	directory  contract.IUserDirectory
	extractors []ClaimExtractor
}

func NewGatekeeper(log *slog.Logger, secret []byte, directory contract.IUserDirectory) *Gatekeeper {
	return &Gatekeeper{
		log:        log.With("component", "gatekeeper"),
		secret:     secret,
		directory:  directory,
		extractors: IdentityClaims,
	}
}

// Authenticate validates the bearer credential and resolves exactly one user record.
// Every failure is an *errors.AuthenticationError.
func (g *Gatekeeper) Authenticate(ctx context.Context, credential string) (domain.User, error) {
	credential = StripBearer(credential)
	if credential == "" {
		return domain.User{}, errors.NewAuthenticationError("missing credential", errors.ErrMissingCredential)
	}

	claims, err := ValidateToken(g.secret, credential)
	if err != nil {
		g.log.Debug("Rejected credential", "error", err)
		return domain.User{}, errors.NewAuthenticationError("invalid or expired credential", err)
	}

	for _, extractor := range g.extractors {
		userID, ok := extractor.Extract(claims)
		if !ok {
			continue
		}
		user, err := g.directory.FindUser(ctx, userID)
		if stderrors.Is(err, errors.ErrUserNotFound) {
			g.log.Debug("Identity claim does not resolve", "claim", extractor.Name, "userID", userID)
			continue
		}
		if err != nil {
			return domain.User{}, errors.NewAuthenticationError("user lookup failed", err)
		}
		if user.ID == "" {
			user.ID = userID
		}
		return user, nil
	}
	return domain.User{}, errors.NewAuthenticationError("unknown user", errors.ErrNoIdentityClaim)
}
