//go:build unit

package user_test

import (
	"strings"
	"testing"
	"time"

	"click-collect/internal/domain/user"
	"click-collect/internal/pkg/errs"
	"click-collect/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(user.User{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

var now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

func TestUser(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		username, _ := user.NewUsername("amina")
		email, _ := user.NewEmail("amina@example.com")
		phone := "+242 06 123 4567"
		expected := user.NewUser(username, email, &phone, "hash", now)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "amina", actual.Username().Value())
		assert.Nil(t, actual.Reset())
		assert.Nil(t, actual.TwoFactor())
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid address", mutate: func(b *builder.UserBuilder) { b.WithEmail("valid@example.com") }},
			{name: "upper case is accepted", mutate: func(b *builder.UserBuilder) { b.WithEmail("Amina@Example.COM") }},
			{name: "empty", mutate: func(b *builder.UserBuilder) { b.WithEmail("") }, errIs: user.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalid-email") }, errIs: user.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.UserBuilder) { b.WithEmail("invalidemail.com") }, errIs: user.ErrInvalidEmail},
		})
	})

	t.Run("username validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "3 chars", mutate: func(b *builder.UserBuilder) { b.WithUsername("abc") }},
			{name: "50 chars", mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 50)) }},
			{name: "2 chars", mutate: func(b *builder.UserBuilder) { b.WithUsername("ab") }, errIs: user.ErrInvalidUsername},
			{name: "51 chars", mutate: func(b *builder.UserBuilder) { b.WithUsername(strings.Repeat("a", 51)) }, errIs: user.ErrInvalidUsername},
			{name: "blank after trim", mutate: func(b *builder.UserBuilder) { b.WithUsername("    ") }, errIs: user.ErrInvalidUsername},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "international", mutate: func(b *builder.UserBuilder) { b.WithPhone("+242061234567") }},
			{name: "absent", mutate: func(b *builder.UserBuilder) { b.WithoutPhone() }},
			{name: "letters", mutate: func(b *builder.UserBuilder) { b.WithPhone("call me") }, errIs: user.ErrInvalidPhone},
			{name: "too short", mutate: func(b *builder.UserBuilder) { b.WithPhone("123") }, errIs: user.ErrInvalidPhone},
		})
	})

	t.Run("email is lowercased", func(t *testing.T) {
		u, err := builder.NewUserBuilder().WithEmail("  Amina@Example.COM ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "amina@example.com", u.Email().Value())
	})
}

func TestPasswordReset(t *testing.T) {
	newUser := func(t *testing.T) *user.User {
		u, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		return u
	}

	t.Run("token is selector plus verifier", func(t *testing.T) {
		u := newUser(t)
		token, err := u.BeginPasswordReset(now)
		require.NoError(t, err)

		selector, verifier, ok := user.SplitResetToken(token)
		require.True(t, ok)
		assert.Len(t, token, 48)
		assert.Equal(t, u.Reset().Selector(), selector)
		assert.NotContains(t, u.Reset().Encoded(), verifier)
		assert.Equal(t, now.Add(user.ResetTokenTTL), u.Reset().ExpiresAt())
	})

	t.Run("token works once", func(t *testing.T) {
		u := newUser(t)
		token, err := u.BeginPasswordReset(now)
		require.NoError(t, err)

		require.NoError(t, u.CompletePasswordReset(token, "new-hash", now.Add(time.Minute)))
		assert.Equal(t, "new-hash", u.PasswordHash())
		assert.Nil(t, u.Reset())

		err = u.CompletePasswordReset(token, "other-hash", now.Add(2*time.Minute))
		assert.True(t, errs.Is(err, user.ErrInvalidResetToken))
		assert.Equal(t, "new-hash", u.PasswordHash())
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		u := newUser(t)
		token, err := u.BeginPasswordReset(now)
		require.NoError(t, err)

		err = u.CompletePasswordReset(token, "new-hash", now.Add(user.ResetTokenTTL))
		assert.True(t, errs.Is(err, user.ErrInvalidResetToken))
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("wrong verifier is rejected", func(t *testing.T) {
		u := newUser(t)
		token, err := u.BeginPasswordReset(now)
		require.NoError(t, err)

		tampered := token[:16] + strings.Repeat("x", 32)
		err = u.CompletePasswordReset(tampered, "new-hash", now)
		assert.True(t, errs.Is(err, user.ErrInvalidResetToken))
	})

	t.Run("malformed token", func(t *testing.T) {
		_, _, ok := user.SplitResetToken("short")
		assert.False(t, ok)
	})

	t.Run("a new request replaces the pending one", func(t *testing.T) {
		u := newUser(t)
		first, err := u.BeginPasswordReset(now)
		require.NoError(t, err)
		second, err := u.BeginPasswordReset(now)
		require.NoError(t, err)

		assert.Error(t, u.CompletePasswordReset(first, "h", now))
		assert.NoError(t, u.CompletePasswordReset(second, "h", now))
	})
}

func TestTwoFactor(t *testing.T) {
	u, err := builder.NewUserBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("no pending code", func(t *testing.T) {
		assert.ErrorIs(t, u.VerifyTwoFactor("123456", now), user.ErrNoSecret)
	})

	code, err := u.BeginTwoFactor(now)
	require.NoError(t, err)
	assert.Len(t, code, 6)

	t.Run("wrong code keeps the pending one", func(t *testing.T) {
		wrong := "000000"
		if code == wrong {
			wrong = "111111"
		}
		assert.ErrorIs(t, u.VerifyTwoFactor(wrong, now), user.ErrSecretMismatch)
		assert.NotNil(t, u.TwoFactor())
	})

	t.Run("expired code", func(t *testing.T) {
		assert.ErrorIs(t, u.VerifyTwoFactor(code, now.Add(user.TwoFactorTTL)), user.ErrSecretExpired)
	})

	t.Run("correct code clears it", func(t *testing.T) {
		require.NoError(t, u.VerifyTwoFactor(code, now.Add(time.Minute)))
		assert.Nil(t, u.TwoFactor())
	})
}

func TestReconstructSecret(t *testing.T) {
	assert.Nil(t, user.ReconstructSecret("sel", "no-separator", now))

	s := user.ReconstructSecret("sel", "salt$digest", now)
	require.NotNil(t, s)
	assert.Equal(t, "salt$digest", s.Encoded())
	assert.Equal(t, "sel", s.Selector())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}

			result, err := b.BuildDomain()

			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, result)
			}
		})
	}
}
