package jwtx

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "dev-secret-change-me"

func mintToken(t *testing.T, secret string, claims Claims) string {
	t.Helper()

	signer, err := NewSignerHS256([]byte(secret))
	require.NoError(t, err)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func TestHS256RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	claims := NewAccessClaims(
		"user:ops1",
		[]string{"ops.block:read", "ops.block:create"},
		time.Hour,
		"payhold",
		now,
	)

	token := mintToken(t, testSecret, claims)

	verifier := NewCommonHS256([]byte(testSecret), "payhold")
	got, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user:ops1", got.Subject)
	require.Equal(t, []string{"ops.block:read", "ops.block:create"}, got.Roles)
}

func TestHS256RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	claims := NewAccessClaims("user:ops1", nil, time.Hour, "", time.Now().UTC())
	token := mintToken(t, testSecret, claims)

	verifier := NewCommonHS256([]byte("other-secret"), "")
	_, err := verifier.Verify(token)
	require.Error(t, err)
}

func TestHS256RejectsExpired(t *testing.T) {
	t.Parallel()

	claims := NewAccessClaims("user:ops1", nil, time.Hour, "", time.Now().UTC().Add(-2*time.Hour))
	token := mintToken(t, testSecret, claims)

	verifier := NewCommonHS256([]byte(testSecret), "")
	_, err := verifier.Verify(token)
	require.Error(t, err)
}

func TestHS256RejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	claims := NewAccessClaims("user:ops1", nil, time.Hour, "someone-else", time.Now().UTC())
	token := mintToken(t, testSecret, claims)

	verifier := NewCommonHS256([]byte(testSecret), "payhold")
	_, err := verifier.Verify(token)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestHS256IssuerNotEnforcedWhenEmpty(t *testing.T) {
	t.Parallel()

	claims := NewAccessClaims("user:ops1", nil, time.Hour, "whatever", time.Now().UTC())
	token := mintToken(t, testSecret, claims)

	verifier := NewCommonHS256([]byte(testSecret), "")
	_, err := verifier.Verify(token)
	require.NoError(t, err)
}

func TestHS256RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	// "none" and asymmetric algs must both be refused by the parser.
	noneToken := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user:ops1"})
	raw, err := noneToken.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	verifier := NewCommonHS256([]byte(testSecret), "")
	_, err = verifier.Verify(raw)
	require.Error(t, err)
}

func TestHS256RejectsGarbage(t *testing.T) {
	t.Parallel()

	verifier := NewCommonHS256([]byte(testSecret), "")
	_, err := verifier.Verify("not.a.token")
	require.Error(t, err)
}

func TestPrincipalSubjectDefaultsToSentinel(t *testing.T) {
	t.Parallel()

	c := Claims{}
	require.Equal(t, SubjectUnknown, c.PrincipalSubject())

	c.Subject = "user:ops1"
	require.Equal(t, "user:ops1", c.PrincipalSubject())
}
