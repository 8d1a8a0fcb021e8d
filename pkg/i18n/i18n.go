// Package i18n renders user-facing text for the display locale chosen at
// start-up. Russian is the default; English is the only other locale.
package i18n

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"soul-tracker/pkg/souls"
)

// Message keys.
const (
	Title            = "title"
	Subtitle         = "subtitle"
	SoulsCollected   = "souls.collected"
	SoulsToMilestone = "souls.to_milestone"
	MobCaption       = "mob.caption"
	MobButton        = "mob.button"
	MobSoulsTotal    = "mob.souls_total"
	PlayerCaption    = "player.caption"
	PlayerButton     = "player.button"
	PlayerSoulsTotal = "player.souls_total"
	HistoryTitle     = "history.title"
	HistoryEmpty     = "history.empty"
	HistoryMob       = "history.mob"
	HistoryPlayer    = "history.player"
	StatPlayerShare  = "stats.player_share"
	StatTotalKills   = "stats.total_kills"
	StatMilestones   = "stats.milestones"
	ToastMobTitle    = "toast.mob.title"
	ToastPlayerTitle = "toast.player.title"
	ToastSoulsAdded  = "toast.souls_added"
	Footer           = "footer"
)

var supported = []language.Tag{language.Russian, language.AmericanEnglish}

var matcher = language.NewMatcher(supported)

var plain = map[string][2]string{ // ru, en
	Title:            {"ELVEN SOULS", "ELVEN SOULS"},
	Subtitle:         {"Drinari • Древняя магия учёта душ", "Drinari • Ancient magic of soul keeping"},
	SoulsCollected:   {"Собрано душ", "Souls collected"},
	MobCaption:       {"Души мобов", "Mob souls"},
	MobButton:        {"Убить моба (+1)", "Kill a mob (+1)"},
	MobSoulsTotal:    {"Всего душ от мобов: %s", "Total souls from mobs: %s"},
	PlayerCaption:    {"Души игроков", "Player souls"},
	PlayerButton:     {"Убить игрока (+5)", "Kill a player (+5)"},
	PlayerSoulsTotal: {"Всего душ от игроков: %s", "Total souls from players: %s"},
	HistoryTitle:     {"История убийств", "Kill history"},
	HistoryEmpty:     {"Пока нет записей... Начни охоту за душами", "No entries yet... Start hunting for souls"},
	HistoryMob:       {"Моб убит", "Mob slain"},
	HistoryPlayer:    {"Игрок повержен", "Player defeated"},
	StatPlayerShare:  {"Процент игроков", "Player share"},
	StatTotalKills:   {"Всего убийств", "Total kills"},
	StatMilestones:   {"Достигнуто вех", "Milestones reached"},
	ToastMobTitle:    {"✨ Душа моба получена", "✨ Mob soul collected"},
	ToastPlayerTitle: {"💫 Душа игрока получена", "💫 Player soul collected"},
	Footer:           {"Starbound • Elven Souls Mod v1.0 • Made with ancient Drinari magic ✨", "Starbound • Elven Souls Mod v1.0 • Made with ancient Drinari magic ✨"},
}

// timeLayouts mirror each locale's default time-of-day rendering.
var timeLayouts = map[language.Tag]string{
	language.Russian:         "15:04:05",
	language.AmericanEnglish: "3:04:05 PM",
}

func newCatalog() (catalog.Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(language.Russian))
	for key, texts := range plain {
		for i, tag := range supported {
			if err := b.SetString(tag, key, texts[i]); err != nil {
				return nil, fmt.Errorf("set %s/%s: %w", tag, key, err)
			}
		}
	}

	plurals := []struct {
		tag  language.Tag
		key  string
		msgs catalog.Message
	}{
		{language.Russian, ToastSoulsAdded, plural.Selectf(1, "%d",
			plural.One, "+%d душа добавлено",
			plural.Few, "+%d души добавлено",
			plural.Many, "+%d душ добавлено",
			plural.Other, "+%d душ добавлено")},
		{language.AmericanEnglish, ToastSoulsAdded, plural.Selectf(1, "%d",
			plural.One, "+%d soul added",
			plural.Other, "+%d souls added")},
		{language.Russian, SoulsToMilestone, plural.Selectf(1, "%d",
			plural.One, "До следующей вехи: %d душа",
			plural.Few, "До следующей вехи: %d души",
			plural.Many, "До следующей вехи: %d душ",
			plural.Other, "До следующей вехи: %d душ")},
		{language.AmericanEnglish, SoulsToMilestone, plural.Selectf(1, "%d",
			plural.One, "Next milestone in %d soul",
			plural.Other, "Next milestone in %d souls")},
	}
	for _, p := range plurals {
		if err := b.Set(p.tag, p.key, p.msgs); err != nil {
			return nil, fmt.Errorf("set %s/%s: %w", p.tag, p.key, err)
		}
	}
	return b, nil
}

// Printer renders text in one locale.
type Printer struct {
	tag        language.Tag
	p          *message.Printer
	timeLayout string
}

// New returns a Printer for the supported locale closest to locale.
func New(locale string) (*Printer, error) {
	requested, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	_, idx, conf := matcher.Match(requested)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported locale %q", locale)
	}
	tag := supported[idx]

	cat, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return &Printer{
		tag:        tag,
		p:          message.NewPrinter(tag, message.Catalog(cat)),
		timeLayout: timeLayouts[tag],
	}, nil
}

// Tag is the locale in use.
func (p *Printer) Tag() language.Tag {
	return p.tag
}

// T renders the message stored under key.
func (p *Printer) T(key string, args ...any) string {
	return p.p.Sprintf(key, args...)
}

// ToastTitle is the notification title for a kill of the given kind.
func (p *Printer) ToastTitle(kind souls.Kind) string {
	if kind == souls.Player {
		return p.T(ToastPlayerTitle)
	}
	return p.T(ToastMobTitle)
}

// ToastBody is the notification body announcing n gained souls.
func (p *Printer) ToastBody(n int) string {
	return p.T(ToastSoulsAdded, n)
}

// KillLabel is the history row label for a kind.
func (p *Printer) KillLabel(kind souls.Kind) string {
	if kind == souls.Player {
		return p.T(HistoryPlayer)
	}
	return p.T(HistoryMob)
}

// SoulsTotal is the per-kind soul total shown under a kill card. The number
// is not digit-grouped, matching the counters.
func (p *Printer) SoulsTotal(kind souls.Kind, n int) string {
	if kind == souls.Player {
		return p.T(PlayerSoulsTotal, strconv.Itoa(n))
	}
	return p.T(MobSoulsTotal, strconv.Itoa(n))
}

// Delta renders a signed soul gain.
func (p *Printer) Delta(n int) string {
	return fmt.Sprintf("+%d", n)
}

// TimeOfDay renders t in local time using the locale's clock format.
func (p *Printer) TimeOfDay(t time.Time) string {
	return t.Local().Format(p.timeLayout)
}
