package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) navigateCmd(name string) bool {
	switch name {
	case "welcome", "profile", "stats", "registry", "add", "import":
		f.calls = append(f.calls, "view:"+name)
		return true
	}
	return false
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Confirm(ctx context.Context) error {
	f.calls = append(f.calls, "confirm")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) List(ctx context.Context, term string) error {
	f.calls = append(f.calls, "list")
	f.args = append(f.args, term)
	return nil
}
func (f *fakeExec) Select(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "select")
	f.args = append(f.args, args...)
	return nil
}
func (f *fakeExec) SelectAll(ctx context.Context) error {
	f.calls = append(f.calls, "selectall")
	return nil
}
func (f *fakeExec) ClearSelection(ctx context.Context) error {
	f.calls = append(f.calls, "clearsel")
	return nil
}
func (f *fakeExec) Delete(ctx context.Context) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeExec) Export(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}
func (f *fakeExec) Add(ctx context.Context) error {
	f.calls = append(f.calls, "addrec")
	return nil
}
func (f *fakeExec) Upload(ctx context.Context, path string) error {
	f.calls = append(f.calls, "upload")
	f.args = append(f.args, path)
	return nil
}
func (f *fakeExec) Files(ctx context.Context) error {
	f.calls = append(f.calls, "files")
	return nil
}
func (f *fakeExec) SelectFile(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "selfile")
	return nil
}
func (f *fakeExec) DeleteFiles(ctx context.Context) error {
	f.calls = append(f.calls, "delfiles")
	return nil
}
func (f *fakeExec) Items(ctx context.Context) error {
	f.calls = append(f.calls, "items")
	return nil
}
func (f *fakeExec) SelectItem(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "selitem")
	return nil
}
func (f *fakeExec) DeleteItems(ctx context.Context) error {
	f.calls = append(f.calls, "delitems")
	return nil
}
func (f *fakeExec) ClearCatalog(ctx context.Context) error {
	f.calls = append(f.calls, "clearcat")
	return nil
}
func (f *fakeExec) Stats(ctx context.Context) error {
	f.calls = append(f.calls, "stats")
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) EditProfile(ctx context.Context) error {
	f.calls = append(f.calls, "editprofile")
	return nil
}
func (f *fakeExec) ChangePassword(ctx context.Context) error {
	f.calls = append(f.calls, "passwd")
	return nil
}
func (f *fakeExec) ToggleNotifications(ctx context.Context) error {
	f.calls = append(f.calls, "notify")
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "delacc")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list проектор",
		"select 1 3",
		"delete",
		"export",
		"upload catalog.xlsx",
		"files",
		"foobar",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "list", "select", "delete", "export", "upload", "files"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
}

func TestRunREPL_LoggedOutGate(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	// до входа команды работы с данными недоступны
	input := strings.NewReader("list\ndelete\nexport\nregistry\nexit\n")
	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_NavigationDispatch(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("registry\nimport\nstats\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	want := []string{"view:registry", "view:import", "view:stats"}
	if len(exec.calls) != len(want) {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	for i, c := range want {
		if exec.calls[i] != c {
			t.Fatalf("call %d: got %s, want %s", i, exec.calls[i], c)
		}
	}
}

func TestRunREPL_UsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("upload\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
