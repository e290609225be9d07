package cli

import (
	"context"
	"errors"
	"os"

	"github.com/avelichko/schoolinv/internal/common"
	"github.com/avelichko/schoolinv/internal/models"
)

// Profile prints the current account.
func (a *App) Profile(ctx context.Context) error {
	u := a.users.Current()
	if u == nil {
		return nil
	}

	printlnFn("Email:       ", u.Email)
	printlnFn("ФИО:         ", u.FullName)
	printlnFn("Организация: ", u.Organization)
	printlnFn("Должность:   ", u.JobTitle)
	if u.IsAdmin {
		printlnFn("Роль:         администратор")
	}
	if u.NotificationsEnabled {
		printlnFn("Уведомления:  включены")
	} else {
		printlnFn("Уведомления:  отключены")
	}
	return nil
}

// EditProfile updates the editable account fields. An empty answer keeps the
// current value.
func (a *App) EditProfile(ctx context.Context) error {
	u := a.users.Current()
	if u == nil {
		return nil
	}

	fullName, err := GetTextDefault(a.reader, "ФИО", u.FullName, os.Stdout)
	if err != nil {
		return err
	}
	organization, err := GetTextDefault(a.reader, "Организация", u.Organization, os.Stdout)
	if err != nil {
		return err
	}
	jobTitle, err := GetTextDefault(a.reader, "Должность", u.JobTitle, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.users.UpdateProfile(ctx, fullName, organization, jobTitle); err != nil {
		printlnFn("Ошибка сохранения:", err.Error())
		return err
	}
	printlnFn("Профиль обновлён.")
	return nil
}

// ChangePassword runs the password-change form.
func (a *App) ChangePassword(ctx context.Context) error {
	current, err := getPassword(os.Stdout, "Текущий пароль")
	if err != nil {
		return err
	}
	next, err := getPassword(os.Stdout, "Новый пароль")
	if err != nil {
		return err
	}
	confirm, err := getPassword(os.Stdout, "Повторите новый пароль")
	if err != nil {
		return err
	}

	err = a.users.ChangePassword(ctx, string(current), string(next), string(confirm))
	switch {
	case errors.Is(err, common.ErrorWrongPassword):
		printlnFn("Текущий пароль указан неверно.")
	case errors.Is(err, common.ErrorPasswordMismatch):
		printlnFn("Пароли не совпадают.")
	case errors.Is(err, common.ErrorPasswordTooShort):
		printlnFn("Пароль должен быть не короче 6 символов.")
	case err != nil:
		printlnFn("Ошибка:", err.Error())
	default:
		printlnFn("Пароль изменён.")
	}
	return err
}

// ToggleNotifications flips the notification setting.
func (a *App) ToggleNotifications(ctx context.Context) error {
	on, err := a.users.ToggleNotifications(ctx)
	if err != nil {
		printlnFn("Ошибка:", err.Error())
		return err
	}
	if on {
		printlnFn("Уведомления включены.")
	} else {
		printlnFn("Уведомления отключены.")
	}
	return nil
}

// DeleteAccount removes the account and its records after a password check
// and an explicit confirmation.
func (a *App) DeleteAccount(ctx context.Context) error {
	if !Confirm(a.reader, "Удалить аккаунт и все записи? Это действие необратимо.", os.Stdout) {
		printlnFn("Отменено.")
		return nil
	}

	password, err := getPassword(os.Stdout, "Пароль")
	if err != nil {
		return err
	}

	err = a.users.DeleteAccount(ctx, string(password))
	if errors.Is(err, common.ErrorWrongPassword) {
		printlnFn("Пароль указан неверно. Ничего не удалено.")
		return nil
	}
	if err != nil {
		printlnFn("Ошибка удаления:", err.Error())
		return err
	}

	// записи удалены транзакцией вместе с аккаунтом; сбрасываем память
	if err := a.registry.PurgeAll(ctx); err != nil {
		return err
	}
	a.recordSel.Clear()
	a.navigate(models.ViewWelcome)
	printlnFn("Аккаунт удалён.")
	return nil
}
