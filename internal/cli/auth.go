package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/shoplens/shoplens/internal/common"
)

// getSimpleText, getPassword and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo

// Register prompts for a name, email and password and attempts to create a
// new account. A successful registration signs the user in with a
// remembered session.
//
// The password byte slice is securely wiped before returning. Any I/O
// error is returned unchanged; a rejected registration prints a generic
// message and returns nil.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if len(password) < 8 {
		fmt.Println("Password must be at least 8 characters long.")
		return nil
	}

	if !a.auth.Register(ctx, name, email, string(password)) {
		fmt.Println("Registration failed. Check the email address or try another one.")
		return nil
	}

	fmt.Printf("Welcome to ShopLens, %s!\n", name)
	return nil
}

// Login prompts for credentials and tries to authenticate. The rememberMe
// answer decides whether the session survives a restart.
//
// A failed login prints a single generic message; whether the email was
// unknown or the password wrong is never revealed. The password is
// securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	rememberMe, err := getYesNo(a.reader, "Remember me on this device?", os.Stdout)
	if err != nil {
		return err
	}

	if !a.auth.Login(ctx, email, string(password), rememberMe) {
		fmt.Println("Login failed: check your email and password.")
		return nil
	}

	if user := a.auth.CurrentUser(); user != nil {
		fmt.Printf("Welcome, %s!\n", user.Name)
	}
	return nil
}

// Logout ends the session and removes any remembered state from the device.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	fmt.Println("Logged out.")
	return nil
}

// WhoAmI prints the signed-in user.
func (a *App) WhoAmI(_ context.Context) error {
	user := a.auth.CurrentUser()
	if user == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s <%s>, role %s, member since %s\n",
		user.Name, user.Email, user.Role, user.CreatedAt.Format("2006-01-02"))
	return nil
}
