package models

// View names one of the application screens. Every view is reachable from
// every other view; the only gate is that a verified, logged-in user is
// required for anything beyond login/registration.
type View string

const (
	ViewWelcome  View = "welcome"
	ViewProfile  View = "profile"
	ViewStats    View = "stats"
	ViewRegistry View = "registry"
	ViewAdd      View = "add"
	ViewImport   View = "import"
)

var viewTitles = map[View]string{
	ViewWelcome:  "Главная",
	ViewProfile:  "Личный кабинет",
	ViewStats:    "Статистика",
	ViewRegistry: "Реестр имущества",
	ViewAdd:      "Новая инвентаризация",
	ViewImport:   "Импорт номенклатуры",
}

// Title returns the user-facing screen title, or the raw view name for an
// unknown value.
func (v View) Title() string {
	if t, ok := viewTitles[v]; ok {
		return t
	}
	return string(v)
}

// ParseView resolves a navigation command to a view.
func ParseView(s string) (View, bool) {
	switch View(s) {
	case ViewWelcome, ViewProfile, ViewStats, ViewRegistry, ViewAdd, ViewImport:
		return View(s), true
	}
	return "", false
}
