package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/abookhq/abook/internal/account"
	"github.com/abookhq/abook/internal/common"
	"github.com/abookhq/abook/internal/logging"
)

func stubInputs(t *testing.T, username string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return username, nil }
	// Return a fresh buffer per call, like the real GetPassword: callers wipe
	// the returned slice, and aliasing one buffer would corrupt later reads.
	getPassword = func(_ io.Writer) ([]byte, error) { return append([]byte(nil), password...), nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

type fakeSession struct {
	// Register
	regUser   string
	regPass   string
	regUserID string
	regErr    error

	// Login
	loginUser string
	loginPass string
	loginErr  error

	logoutCalled bool
	current      *account.Account
}

func (f *fakeSession) Register(_ context.Context, username, password, userID string) (account.Account, error) {
	f.regUser, f.regPass, f.regUserID = username, password, userID
	if f.regErr != nil {
		return account.Account{}, f.regErr
	}
	return account.Account{Username: username, UserID: userID}, nil
}

func (f *fakeSession) Login(_ context.Context, username, password string) (account.Account, error) {
	f.loginUser, f.loginPass = username, password
	if f.loginErr != nil {
		return account.Account{}, f.loginErr
	}
	a := account.Account{Username: username, UserID: "u01"}
	f.current = &a
	return a, nil
}

func (f *fakeSession) Logout(context.Context) {
	f.logoutCalled = true
	f.current = nil
}

func (f *fakeSession) CurrentAccount() (account.Account, bool) {
	if f.current == nil {
		return account.Account{}, false
	}
	return *f.current, true
}

func (f *fakeSession) IsLoggedIn() bool { return f.current != nil }

func newTestApp(f *fakeSession) *App {
	return &App{session: f, log: logging.NewNopLogger()}
}

func TestRegister_PassesInputsAndAssignsUserID(t *testing.T) {
	f := &fakeSession{}
	a := newTestApp(f)

	restore := stubInputs(t, "alice", []byte("hunter2"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if f.regUser != "alice" {
		t.Fatalf("Register user mismatch: %q", f.regUser)
	}
	if f.regPass != "hunter2" {
		t.Fatalf("Register pass mismatch: %q", f.regPass)
	}
	if f.regUserID == "" {
		t.Fatalf("Register must assign a user id")
	}
}

func TestRegister_DuplicateIsReportedNotReturned(t *testing.T) {
	f := &fakeSession{regErr: common.ErrDuplicateUsername}
	a := newTestApp(f)

	restore := stubInputs(t, "alice", []byte("pw"))
	defer restore()

	if err := a.Register(context.Background()); err != nil {
		t.Fatalf("duplicate username should not error out of the command: %v", err)
	}
}

func TestRegister_UnexpectedErrorPropagates(t *testing.T) {
	f := &fakeSession{regErr: errors.New("disk gone")}
	a := newTestApp(f)

	restore := stubInputs(t, "alice", []byte("pw"))
	defer restore()

	if err := a.Register(context.Background()); err == nil {
		t.Fatalf("want error")
	}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeSession{}
	a := newTestApp(f)

	restore := stubInputs(t, "alice", []byte("hunter2"))
	defer restore()

	if err := a.Login(context.Background()); err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if f.loginUser != "alice" || f.loginPass != "hunter2" {
		t.Fatalf("Login got %q/%q", f.loginUser, f.loginPass)
	}
	if !a.isLoggedIn() {
		t.Fatalf("expected logged-in app")
	}
}

func TestLogin_BadCredentialsAndUnknownUserLookAlike(t *testing.T) {
	for _, sentinel := range []error{common.ErrBadCredentials, common.ErrNotFound} {
		f := &fakeSession{loginErr: sentinel}
		a := newTestApp(f)

		restore := stubInputs(t, "alice", []byte("wrong"))

		// both failure kinds resolve to a printed message, not an error
		if err := a.Login(context.Background()); err != nil {
			t.Fatalf("%v should not escape the command: %v", sentinel, err)
		}
		restore()
	}
}

func TestLogout_DelegatesToSession(t *testing.T) {
	f := &fakeSession{current: &account.Account{Username: "alice"}}
	a := newTestApp(f)

	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout err: %v", err)
	}
	if !f.logoutCalled {
		t.Fatalf("session.Logout not called")
	}
}

func TestStatus(t *testing.T) {
	f := &fakeSession{}
	a := newTestApp(f)

	if got := a.status(); got != "logged out" {
		t.Fatalf("status = %q", got)
	}

	f.current = &account.Account{Username: "alice"}
	if got := a.status(); got != "alice" {
		t.Fatalf("status = %q", got)
	}
}
