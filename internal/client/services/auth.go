// Package services contains the application services of the FinSync client.
// This file defines the authentication service: login, signup, restoring a
// session on start-up, and logout.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/finsync/internal/client/client"
	"github.com/dmitrijs2005/finsync/internal/client/models"
	"github.com/dmitrijs2005/finsync/internal/client/session"
	"github.com/dmitrijs2005/finsync/internal/client/store"
	"github.com/dmitrijs2005/finsync/internal/client/uploader"
	"github.com/dmitrijs2005/finsync/internal/common"
	"github.com/dmitrijs2005/finsync/internal/logging"
)

// AuthService establishes and tears down the session.
//
// Contract:
//   - Login: validate, call the server, then write the durable store, then
//     the session container, then navigate to the dashboard.
//   - Signup: validate, upload the image (if any), create the account,
//     store the token and navigate to the login page.
//   - Bootstrap: restore the container from the durable store on start-up.
//   - Logout: remove the session from both representations.
//
// Failures are reported through the Notifier and returned; none of them
// leaves the store and the container disagreeing.
type AuthService interface {
	Login(ctx context.Context, in LoginInput) error
	Signup(ctx context.Context, in SignupInput) error
	Bootstrap(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	LoginFlow() *Flow
	SignupFlow() *Flow
}

// Deps are the collaborators of the auth service.
type Deps struct {
	Client    client.Client
	Store     store.Store
	Session   *session.Container
	Uploader  uploader.Uploader
	Navigator Navigator
	Notifier  Notifier
	Logger    logging.Logger
}

type authService struct {
	Deps
	login  Flow
	signup Flow
	now    func() time.Time
}

// NewAuthService constructs an AuthService from d.
func NewAuthService(d Deps) AuthService {
	if d.Logger == nil {
		d.Logger = logging.Discard()
	}
	return &authService{Deps: d, now: time.Now}
}

func (a *authService) LoginFlow() *Flow  { return &a.login }
func (a *authService) SignupFlow() *Flow { return &a.signup }

// Login authenticates with the server and commits the session.
//
// Validation errors are returned as errorz.InvalidInput before any request
// is made. ErrInFlight is returned while a previous login is pending.
func (a *authService) Login(ctx context.Context, in LoginInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	gen, err := a.login.Begin()
	if err != nil {
		return err
	}

	log := a.Logger.With("flow", "login")

	resp, err := a.Client.Login(ctx, models.LoginRequest{Email: in.Email, Password: in.Password})
	if errors.Is(err, client.ErrMalformedBody) {
		log.Error(ctx, "login error", "error", err)
		return a.fail(&a.login, gen, MsgLoginMalformed, fmt.Errorf("%w: %w", ErrMalformedResponse, err))
	}
	if err != nil {
		msg := messageFor(err, MsgLoginFailed)
		log.Error(ctx, "login error", "error", err)
		return a.fail(&a.login, gen, msg, err)
	}

	if resp.Token == "" || resp.User == nil {
		log.Error(ctx, "login error", "error", ErrMalformedResponse)
		return a.fail(&a.login, gen, MsgLoginMalformed, ErrMalformedResponse)
	}

	if !a.login.Current(gen) {
		log.Warn(ctx, "discarding login response of abandoned submission")
		return ErrStaleResponse
	}

	record := resp.User.Record()
	if err := a.commit(ctx, resp.Token, record); err != nil {
		log.Error(ctx, "session commit error", "error", err)
		return a.fail(&a.login, gen, MsgSessionStoreFailed, err)
	}

	msg := common.FirstNonEmpty(resp.Message, MsgLoginSuccess)
	a.login.Succeed(gen, msg)
	log.Info(ctx, "login succeeded", "user_id", record.ID)
	a.Notifier.Success(msg)
	a.Navigator.Navigate(RouteDashboard)
	return nil
}

// commit is the single place where a session is written: durable store
// first, in one transaction, then the container in one update. Anything
// reacting to the container can therefore already read the store.
func (a *authService) commit(ctx context.Context, token string, r models.Record) error {
	if err := store.SaveSession(ctx, a.Store, token, r); err != nil {
		return err
	}
	a.Session.Commit(r)
	return nil
}

// Signup creates an account. A selected image is uploaded first and the
// account request waits for it; a failed upload ends the attempt before the
// account request is sent. On success only the token is stored and the user
// is sent to the login page.
func (a *authService) Signup(ctx context.Context, in SignupInput) error {
	if err := in.Validate(); err != nil {
		return err
	}

	gen, err := a.signup.Begin()
	if err != nil {
		return err
	}

	log := a.Logger.With("flow", "signup")

	var imageURL *string
	if in.Image != nil {
		url, err := a.Uploader.Upload(ctx, *in.Image)
		if err != nil {
			log.Error(ctx, "signup error", "stage", "upload", "error", err)
			return a.fail(&a.signup, gen, MsgImageUploadFailed, err)
		}
		if url != "" {
			imageURL = &url
		}
	}

	resp, err := a.Client.Register(ctx, models.RegisterRequest{
		FullName:        in.FullName,
		Email:           in.Email,
		Password:        in.Password,
		ProfileImageURL: imageURL,
	})
	if errors.Is(err, client.ErrMalformedBody) {
		log.Error(ctx, "signup error", "stage", "register", "error", err)
		return a.fail(&a.signup, gen, MsgSignupMalformed, fmt.Errorf("%w: %w", ErrMalformedResponse, err))
	}
	if err != nil {
		log.Error(ctx, "signup error", "stage", "register", "error", err)
		return a.fail(&a.signup, gen, messageFor(err, MsgSignupFailed), err)
	}

	if resp.Token == "" {
		log.Error(ctx, "signup error", "stage", "register", "error", ErrMalformedResponse)
		return a.fail(&a.signup, gen, MsgSignupMalformed, ErrMalformedResponse)
	}

	if !a.signup.Current(gen) {
		log.Warn(ctx, "discarding signup response of abandoned submission")
		return ErrStaleResponse
	}

	if err := a.Store.Set(ctx, store.KeyToken, resp.Token); err != nil {
		log.Error(ctx, "token save error", "error", err)
		return a.fail(&a.signup, gen, MsgSessionStoreFailed, err)
	}

	msg := common.FirstNonEmpty(resp.Message, MsgSignupSuccess)
	a.signup.Succeed(gen, msg)
	log.Info(ctx, "signup succeeded", "email", in.Email)
	a.Notifier.Success(msg)
	a.Navigator.Navigate(RouteLogin)
	return nil
}

// Bootstrap loads a stored session into the container. It returns true when
// a session was restored. A stored JWT that has already expired is removed.
func (a *authService) Bootstrap(ctx context.Context) (bool, error) {
	s, ok, err := store.LoadSession(ctx, a.Store)
	if err != nil {
		return false, fmt.Errorf("load session: %w", err)
	}
	if !ok {
		return false, nil
	}

	if tokenExpired(s.Token, a.now()) {
		a.Logger.Info(ctx, "stored session expired, clearing", "user_id", s.Record.ID)
		if err := store.ClearSession(ctx, a.Store); err != nil {
			return false, err
		}
		return false, nil
	}

	a.Session.Commit(s.Record)
	a.Logger.Debug(ctx, "session restored", "user_id", s.Record.ID)
	return true, nil
}

// Logout clears the durable session, then the container, abandons pending
// submissions and returns to the login page.
func (a *authService) Logout(ctx context.Context) error {
	if err := store.ClearSession(ctx, a.Store); err != nil {
		return err
	}
	a.Session.Reset()
	a.login.Abandon()
	a.signup.Abandon()
	a.Notifier.Success(MsgLoggedOut)
	a.Navigator.Navigate(RouteLogin)
	return nil
}

func (a *authService) fail(f *Flow, gen uint64, msg string, err error) error {
	if !f.Current(gen) {
		return ErrStaleResponse
	}
	f.Fail(gen, msg)
	a.Notifier.Error(msg)
	return err
}

// messageFor picks the server-supplied message carried by err, or fallback.
func messageFor(err error, fallback string) string {
	if msg, ok := client.ServerMessage(err); ok {
		return msg
	}
	return fallback
}
