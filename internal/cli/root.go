package cli

import (
	"bufio"
	"context"
	"log"
	"os"

	"github.com/avelichko/schoolinv/internal/models"
)

func (a *App) Root(ctx context.Context) {
	log.Println("Welcome to SchoolInv CLI (type 'help' for commands)")

	if u := a.users.Current(); u != nil {
		log.Printf("Restored session for %s\n", u.Email)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// navigateCmd dispatches view-switch commands. It returns false for anything
// that is not a view name. Entering a view immediately renders it.
func (a *App) navigateCmd(name string) bool {
	v, ok := models.ParseView(name)
	if !ok {
		return false
	}

	ctx := context.Background()
	a.navigate(v)

	switch v {
	case models.ViewWelcome:
		a.printWelcome()
	case models.ViewProfile:
		_ = a.Profile(ctx)
	case models.ViewStats:
		_ = a.Stats(ctx)
	case models.ViewRegistry:
		_ = a.List(ctx, "")
	case models.ViewAdd:
		_ = a.Add(ctx)
	case models.ViewImport:
		_ = a.Files(ctx)
	}
	return true
}

func (a *App) printWelcome() {
	u := a.users.Current()
	if u == nil {
		return
	}
	printlnFn("Здравствуйте,", u.FullName)
	printlnFn(u.Organization, "—", u.JobTitle)

	st := a.registry.Stats()
	printlnFn("Записей в реестре:", st.Records)
}
