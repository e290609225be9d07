package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the registration form and parks the account as
// pending confirmation. The user still has to run "confirm" to sign in.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Пароль (не менее 6 символов)")
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "ФИО", os.Stdout)
	if err != nil {
		return err
	}
	organization, err := getSimpleText(a.reader, "Организация", os.Stdout)
	if err != nil {
		return err
	}
	jobTitle, err := getSimpleText(a.reader, "Должность", os.Stdout)
	if err != nil {
		return err
	}

	_, err = a.users.Register(ctx, services.RegisterDraft{
		Email:        email,
		Password:     string(password),
		FullName:     fullName,
		Organization: organization,
		JobTitle:     jobTitle,
	})
	if err != nil {
		log.Printf("Registration unsuccessfull: %s", err.Error())
		return err
	}

	printlnFn("Аккаунт создан. Выполните команду confirm для подтверждения.")
	return nil
}

// Confirm promotes a pending account and signs it in.
func (a *App) Confirm(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}

	u, err := a.users.Confirm(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNoPendingUser) {
			printlnFn("Нет ожидающей подтверждения регистрации для", email)
			return nil
		}
		log.Printf("Confirmation unsuccessfull: %s", err.Error())
		return err
	}

	printlnFn("Аккаунт подтверждён. Добро пожаловать,", u.FullName)
	a.printWelcome()
	return nil
}

// Login prompts for credentials and authenticates against the local account
// list. An unconfirmed account is routed back to the confirm command.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Пароль")
	if err != nil {
		return err
	}

	_, err = a.users.Login(ctx, email, string(password))
	switch {
	case errors.Is(err, common.ErrorNotVerified):
		printlnFn("Аккаунт не подтверждён. Выполните команду confirm.")
		return nil
	case errors.Is(err, common.ErrorInvalidCredentials):
		printlnFn("Неверный email или пароль.")
		return nil
	case err != nil:
		log.Printf("Login unsuccessfull: %s", err.Error())
		return err
	}

	log.Printf("Login successfull")
	a.printWelcome()
	return nil
}

// Logout drops the local session; the account and its data stay.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		return err
	}
	a.recordSel.Clear()
	a.catalogSel.Clear()
	a.fileSel.Clear()
	printlnFn("Вы вышли из аккаунта.")
	return nil
}
