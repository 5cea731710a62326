package auth

import "errors"

// Token errors returned by JWTService.
var (
	ErrInvalidToken        = errors.New("invalid authentication token")
	ErrExpiredToken        = errors.New("authentication token has expired")
	ErrTokenNotYetValid    = errors.New("authentication token not yet valid")
	ErrMissingToken        = errors.New("authentication token is missing")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrExpiredRefreshToken = errors.New("refresh token has expired")

	// ErrWrongTokenType is returned when a refresh token is presented where
	// an access token is expected, or the other way round.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
