//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"click-collect/internal/domain/user"
	"click-collect/internal/infra"
	"click-collect/internal/infra/memstore"
	"click-collect/internal/pkg/clock"
	"click-collect/internal/pkg/config"
	"click-collect/internal/pkg/errs"
	"click-collect/internal/pkg/jwt"
	"click-collect/internal/pkg/ptr"
	"click-collect/internal/usecase/commands"
	"click-collect/internal/usecase/shared"
	"click-collect/tests/common/builder"
	commandsmock "click-collect/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx        context.Context
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	cmds       commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.uow = memstore.NewUoW(memstore.New())
	s.jwtService = jwt.NewService(config.NewTestConfig().JWT.Secret, 15*time.Minute, 168*time.Hour)
	s.cmds = commands.NewAuthCommands(s.uow, s.jwtService, clock.NewMockClock(testNow))
}

func (s *AuthCommandsTestSuite) register(mutate func(in *commands.RegisterInput)) (uuid.UUID, error) {
	in := commands.RegisterInput{
		Username: "amina",
		Email:    "Amina@Example.com",
		Password: "password123",
		Phone:    "+242 06 123 4567",
	}
	if mutate != nil {
		mutate(&in)
	}
	return s.cmds.Register(s.ctx, in)
}

func (s *AuthCommandsTestSuite) TestRegister() {
	id, err := s.register(nil)
	s.Require().NoError(err)

	u, err := s.uow.Reads().Users().FindByID(s.ctx, id)
	s.Require().NoError(err)
	s.Equal("amina@example.com", u.Email().Value())
	s.NotEqual("password123", u.PasswordHash())

	tests := []struct {
		name        string
		mutate      func(in *commands.RegisterInput)
		expectErr   error
		expectClass error
	}{
		{
			name:      "email taken",
			mutate:    func(in *commands.RegisterInput) { in.Username = "someone" },
			expectErr: commands.ErrEmailTaken,
		},
		{
			name:      "username taken",
			mutate:    func(in *commands.RegisterInput) { in.Email = "other@example.com" },
			expectErr: commands.ErrUsernameTaken,
		},
		{
			name: "short password",
			mutate: func(in *commands.RegisterInput) {
				in.Username, in.Email, in.Password = "kevin", "kevin@example.com", "abc"
			},
			expectClass: errs.ErrValidation,
		},
		{
			name: "malformed email",
			mutate: func(in *commands.RegisterInput) {
				in.Username, in.Email = "kevin", "not-an-email"
			},
			expectClass: errs.ErrValidation,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.register(tt.mutate)
			s.Require().Error(err)
			if tt.expectErr != nil {
				s.ErrorIs(err, tt.expectErr)
			}
			if tt.expectClass != nil {
				s.True(errs.Is(err, tt.expectClass), "unexpected class: %v", err)
			}
		})
	}
}

func (s *AuthCommandsTestSuite) TestRegister_LateRival() {
	_, err := s.register(nil)
	s.Require().NoError(err)
	cmds := commands.NewAuthCommands(lateRivalUoW{s.uow}, s.jwtService, clock.NewMockClock(testNow))

	_, err = cmds.Register(s.ctx, commands.RegisterInput{
		Username: "someone", Email: "amina@example.com", Password: "password123",
	})
	s.ErrorIs(err, commands.ErrEmailTaken)

	_, err = cmds.Register(s.ctx, commands.RegisterInput{
		Username: "amina", Email: "someone@example.com", Password: "password123",
	})
	s.ErrorIs(err, commands.ErrUsernameTaken)
}

func (s *AuthCommandsTestSuite) TestLogin() {
	id, err := s.register(nil)
	s.Require().NoError(err)

	for _, login := range []string{"amina", "AMINA@example.com"} {
		s.Run("with "+login, func() {
			res, err := s.cmds.Login(s.ctx, commands.LoginInput{EmailOrUsername: login, Password: "password123"})
			s.Require().NoError(err)
			s.Equal(id, res.UserID)

			claims, err := s.jwtService.ValidateTyped(res.TokenPair.AccessToken, jwt.TokenTypeAccess)
			s.Require().NoError(err)
			s.Equal(id, claims.UserID)
			_, err = s.jwtService.ValidateTyped(res.TokenPair.RefreshToken, jwt.TokenTypeRefresh)
			s.NoError(err)
		})
	}

	s.Run("wrong password and unknown user look the same", func() {
		_, err := s.cmds.Login(s.ctx, commands.LoginInput{EmailOrUsername: "amina", Password: "wrong-password"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)

		_, err = s.cmds.Login(s.ctx, commands.LoginInput{EmailOrUsername: "nobody", Password: "password123"})
		s.ErrorIs(err, commands.ErrInvalidCredentials)
	})
}

func (s *AuthCommandsTestSuite) TestRefreshToken() {
	id, err := s.register(nil)
	s.Require().NoError(err)
	refresh, err := s.jwtService.GenerateRefreshToken(id)
	s.Require().NoError(err)
	access, err := s.jwtService.GenerateAccessToken(id)
	s.Require().NoError(err)

	s.Run("issues an access token only", func() {
		pair, err := s.cmds.RefreshToken(s.ctx, refresh)
		s.Require().NoError(err)
		s.Empty(pair.RefreshToken)
		_, err = s.jwtService.ValidateTyped(pair.AccessToken, jwt.TokenTypeAccess)
		s.NoError(err)
	})

	s.Run("missing token", func() {
		_, err := s.cmds.RefreshToken(s.ctx, " ")
		s.ErrorIs(err, commands.ErrRefreshTokenMissing)
	})

	s.Run("access token is not accepted", func() {
		_, err := s.cmds.RefreshToken(s.ctx, access)
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("deleted account", func() {
		orphan, err := s.jwtService.GenerateRefreshToken(uuid.New())
		s.Require().NoError(err)
		_, err = s.cmds.RefreshToken(s.ctx, orphan)
		s.ErrorIs(err, commands.ErrTokenValidation)
	})
}

type AccountCommandsTestSuite struct {
	suite.Suite
	ctx          context.Context
	mockCtrl     *gomock.Controller
	mockNotifier *commandsmock.MockNotifier
	clock        *clock.MockClock
	uow          shared.UnitOfWork
	cmds         commands.AccountCommands
	userID       uuid.UUID
}

func TestAccountCommandsSuite(t *testing.T) {
	suite.Run(t, new(AccountCommandsTestSuite))
}

func (s *AccountCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNotifier = commandsmock.NewMockNotifier(s.mockCtrl)
	s.clock = clock.NewMockClock(testNow)
	s.uow = memstore.NewUoW(memstore.New())
	s.cmds = commands.NewAccountCommands(s.uow, s.mockNotifier, s.clock, config.NewTestConfig())

	u, err := builder.NewUserBuilder().BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, u)
	}))
	s.userID = u.ID()
}

func (s *AccountCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// requestReset returns the token carried by the emailed link.
func (s *AccountCommandsTestSuite) requestReset() string {
	const prefix = "http://localhost:5000/reset-password?token="
	var link string
	s.mockNotifier.EXPECT().PasswordResetEmail(gomock.Any(), "amina@example.com", "amina", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, resetURL string) error {
			link = resetURL
			return nil
		})
	s.Require().NoError(s.cmds.ForgotPassword(s.ctx, "amina@example.com"))
	s.Require().Contains(link, prefix)
	return link[len(prefix):]
}

func (s *AccountCommandsTestSuite) TestPasswordReset() {
	s.Run("token works once", func() {
		token := s.requestReset()

		s.Require().NoError(s.cmds.ResetPassword(s.ctx, token, "new-password-1"))
		s.ErrorIs(s.cmds.ResetPassword(s.ctx, token, "new-password-2"), user.ErrInvalidResetToken)
	})

	s.Run("expired token", func() {
		token := s.requestReset()
		s.clock.Add(user.ResetTokenTTL + time.Minute)

		err := s.cmds.ResetPassword(s.ctx, token, "new-password-1")
		s.True(errs.Is(err, errs.ErrUnauthenticated))
	})

	s.Run("garbage token", func() {
		s.ErrorIs(s.cmds.ResetPassword(s.ctx, "nope", "new-password-1"), user.ErrInvalidResetToken)
	})

	s.Run("unknown address is silent", func() {
		s.NoError(s.cmds.ForgotPassword(s.ctx, "ghost@example.com"))
	})
}

func (s *AccountCommandsTestSuite) TestUpdateProfile() {
	s.Run("new password needs the current one", func() {
		err := s.cmds.UpdateProfile(s.ctx, s.userID, commands.UpdateProfileInput{NewPassword: ptr.To("new-password-1")})
		s.ErrorIs(err, commands.ErrCurrentPasswordRequired)
	})

	s.Run("wrong current password", func() {
		err := s.cmds.UpdateProfile(s.ctx, s.userID, commands.UpdateProfileInput{
			CurrentPassword: ptr.To("wrong-password"),
			NewPassword:     ptr.To("new-password-1"),
		})
		s.ErrorIs(err, commands.ErrWrongPassword)
	})

	s.Run("email held by someone else", func() {
		other, err := builder.NewUserBuilder().WithUsername("kevin").WithEmail("kevin@example.com").BuildDomain()
		s.Require().NoError(err)
		s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, other)
		}))

		err = s.cmds.UpdateProfile(s.ctx, s.userID, commands.UpdateProfileInput{Email: ptr.To("kevin@example.com")})
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("rename keeps other fields", func() {
		s.Require().NoError(s.cmds.UpdateProfile(s.ctx, s.userID, commands.UpdateProfileInput{Username: ptr.To("amina_m")}))

		u, err := s.uow.Reads().Users().FindByID(s.ctx, s.userID)
		s.Require().NoError(err)
		s.Equal("amina_m", u.Username().Value())
		s.Equal("amina@example.com", u.Email().Value())
	})
}

// lateRivalUoW hides other users from the availability lookups, as if they
// committed between the check and the write.
type lateRivalUoW struct{ shared.UnitOfWork }

func (u lateRivalUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.UnitOfWork.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return fn(ctx, lateRivalTx{tx})
	})
}

type lateRivalTx struct{ shared.Tx }

func (t lateRivalTx) Users() shared.UserRepository { return lateRivalUsers{t.Tx.Users()} }

type lateRivalUsers struct{ shared.UserRepository }

func (lateRivalUsers) FindByEmail(context.Context, string) (*user.User, error) {
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
}

func (lateRivalUsers) FindByUsername(context.Context, string) (*user.User, error) {
	return nil, infra.NewRepoErr(infra.KindNotFound, "user not found", nil)
}

func (s *AccountCommandsTestSuite) TestUpdateProfile_LateRival() {
	rival, err := builder.NewUserBuilder().WithUsername("kevin").WithEmail("kevin@example.com").BuildDomain()
	s.Require().NoError(err)
	s.Require().NoError(s.uow.Within(s.ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, rival)
	}))
	cmds := commands.NewAccountCommands(lateRivalUoW{s.uow}, s.mockNotifier, s.clock, config.NewTestConfig())

	tests := []struct {
		name      string
		in        commands.UpdateProfileInput
		expectErr error
	}{
		{name: "username", in: commands.UpdateProfileInput{Username: ptr.To("kevin")}, expectErr: commands.ErrUsernameTaken},
		{name: "email", in: commands.UpdateProfileInput{Email: ptr.To("kevin@example.com")}, expectErr: commands.ErrEmailTaken},
		{
			name:      "both",
			in:        commands.UpdateProfileInput{Username: ptr.To("kevin"), Email: ptr.To("kevin@example.com")},
			expectErr: commands.ErrUsernameTaken,
		},
		{
			name:      "only the username collides",
			in:        commands.UpdateProfileInput{Username: ptr.To("kevin"), Email: ptr.To("amina.m@example.com")},
			expectErr: commands.ErrUsernameTaken,
		},
		{
			name:      "only the email collides",
			in:        commands.UpdateProfileInput{Username: ptr.To("amina_m"), Email: ptr.To("kevin@example.com")},
			expectErr: commands.ErrEmailTaken,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.ErrorIs(cmds.UpdateProfile(s.ctx, s.userID, tt.in), tt.expectErr)

			u, err := s.uow.Reads().Users().FindByID(s.ctx, s.userID)
			s.Require().NoError(err)
			s.Equal("amina", u.Username().Value())
		})
	}
}

func (s *AccountCommandsTestSuite) TestTwoFactor() {
	var code string
	s.mockNotifier.EXPECT().TwoFactorEmail(gomock.Any(), "amina@example.com", "amina", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, c string) error {
			code = c
			return nil
		})
	s.Require().NoError(s.cmds.RequestTwoFactor(s.ctx, s.userID, "EMAIL"))
	s.Len(code, 6)

	s.ErrorIs(s.cmds.VerifyTwoFactor(s.ctx, s.userID, "000000x"), user.ErrSecretMismatch)
	s.Require().NoError(s.cmds.VerifyTwoFactor(s.ctx, s.userID, code))
	s.ErrorIs(s.cmds.VerifyTwoFactor(s.ctx, s.userID, code), user.ErrNoSecret)

	s.ErrorIs(s.cmds.RequestTwoFactor(s.ctx, s.userID, "pigeon"), commands.ErrInvalidTwoFactorMethod)
}
