package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soul-tracker/pkg/i18n"
	"soul-tracker/pkg/souls"
	"soul-tracker/pkg/tracker"
)

type queuedScheduler struct {
	queue []func()
}

func (q *queuedScheduler) AfterFunc(_ time.Duration, f func()) {
	q.queue = append(q.queue, f)
}

func newTestView(t *testing.T, locale string) (*TrackerView, *queuedScheduler, fyne.App) {
	t.Helper()
	a := test.NewTempApp(t)
	printer, err := i18n.New(locale)
	require.NoError(t, err)

	sched := &queuedScheduler{}
	clock := time.Date(2024, 3, 1, 21, 15, 0, 0, time.Local)
	tr := tracker.New(printer, &appNotifier{app: a},
		tracker.WithScheduler(sched),
		tracker.WithClock(func() time.Time { return clock }),
	)
	return NewTrackerView(tr, printer), sched, a
}

func historyRowLabels(t *testing.T, row fyne.CanvasObject) (label, delta, at string) {
	t.Helper()
	border := row.(*fyne.Container)
	require.Len(t, border.Objects, 2)
	left := border.Objects[0].(*fyne.Container)
	right := border.Objects[1].(*fyne.Container)
	return left.Objects[1].(*widget.Label).Text,
		right.Objects[0].(*widget.Label).Text,
		right.Objects[1].(*widget.Label).Text
}

func TestInitialRender(t *testing.T) {
	v, _, _ := newTestView(t, "ru-RU")

	assert.Equal(t, "0", v.totalText.Text)
	assert.Equal(t, "До следующей вехи: 0 душ", v.remaining.Text)
	assert.Equal(t, 0.0, v.progress.Value)
	assert.False(t, v.sparkle.Visible())
	assert.Equal(t, "0.0%", v.stats.playerShare.Text)
	assert.Equal(t, "0", v.stats.totalKills.Text)
	assert.Equal(t, "0", v.stats.milestones.Text)

	require.Len(t, v.history.container.Objects, 1)
	assert.Same(t, v.history.empty, v.history.container.Objects[0])
	assert.Equal(t, "Пока нет записей... Начни охоту за душами", v.history.empty.Text)
}

func TestTapMobButton(t *testing.T) {
	v, sched, _ := newTestView(t, "ru-RU")

	test.Tap(v.mobButton)

	assert.Equal(t, "1", v.totalText.Text)
	assert.Equal(t, "1", v.mobCount.Text)
	assert.Equal(t, "0", v.playerCount.Text)
	assert.Equal(t, "До следующей вехи: 99 душ", v.remaining.Text)
	assert.InDelta(t, 1.0, v.progress.Value, 1e-9)
	assert.Equal(t, "Всего душ от мобов: 1", v.mobTotal.Text)
	assert.True(t, v.sparkle.Visible())

	require.Len(t, v.history.container.Objects, 1)
	label, delta, at := historyRowLabels(t, v.history.container.Objects[0])
	assert.Equal(t, "Моб убит", label)
	assert.Equal(t, "+1", delta)
	assert.Equal(t, "21:15:00", at)

	require.Len(t, sched.queue, 1)
	sched.queue[0]()
	assert.False(t, v.sparkle.Visible())
}

func TestTapPlayerButtonUpdatesStats(t *testing.T) {
	v, _, _ := newTestView(t, "ru-RU")

	test.Tap(v.mobButton)
	for i := 0; i < 5; i++ {
		test.Tap(v.playerButton)
	}

	assert.Equal(t, "26", v.totalText.Text)
	assert.Equal(t, "5", v.playerCount.Text)
	assert.Equal(t, "Всего душ от игроков: 25", v.playerTotal.Text)
	assert.Equal(t, "83.3%", v.stats.playerShare.Text)
	assert.Equal(t, "6", v.stats.totalKills.Text)

	label, delta, _ := historyRowLabels(t, v.history.container.Objects[0])
	assert.Equal(t, "Игрок повержен", label)
	assert.Equal(t, "+5", delta)
}

func TestHistoryShowsTenRows(t *testing.T) {
	v, _, _ := newTestView(t, "en-US")

	for i := 0; i < 12; i++ {
		test.Tap(v.mobButton)
	}

	assert.Len(t, v.history.container.Objects, souls.HistoryLimit)
	_, _, at := historyRowLabels(t, v.history.container.Objects[0])
	assert.Equal(t, "9:15:00 PM", at)
}

func TestMilestoneResetsProgress(t *testing.T) {
	v, _, _ := newTestView(t, "en-US")

	for i := 0; i < 20; i++ {
		test.Tap(v.playerButton)
	}

	assert.Equal(t, "100", v.totalText.Text)
	assert.Equal(t, 0.0, v.progress.Value)
	assert.Equal(t, "Next milestone in 0 souls", v.remaining.Text)
	assert.Equal(t, "1", v.stats.milestones.Text)
}

func TestNotificationSentOnTap(t *testing.T) {
	v, _, _ := newTestView(t, "ru-RU")

	test.AssertNotificationSent(t, fyne.NewNotification("💫 Душа игрока получена", "+5 душ добавлено"), func() {
		test.Tap(v.playerButton)
	})
	test.AssertNotificationSent(t, fyne.NewNotification("✨ Душа моба получена", "+1 душа добавлено"), func() {
		test.Tap(v.mobButton)
	})
}

func TestLargeSoulTotalsMatchCounters(t *testing.T) {
	v, _, _ := newTestView(t, "ru-RU")

	for i := 0; i < 200; i++ {
		test.Tap(v.playerButton)
	}

	assert.Equal(t, "1000", v.totalText.Text)
	assert.Equal(t, "Всего душ от игроков: 1000", v.playerTotal.Text)
}

// children lists the objects directly nested in obj.
func children(obj fyne.CanvasObject) []fyne.CanvasObject {
	switch o := obj.(type) {
	case *fyne.Container:
		return o.Objects
	case *widget.Card:
		return []fyne.CanvasObject{o.Content}
	case *container.Scroll:
		return []fyne.CanvasObject{o.Content}
	}
	return nil
}

func contains(root, target fyne.CanvasObject) bool {
	if root == target {
		return true
	}
	for _, c := range children(root) {
		if contains(c, target) {
			return true
		}
	}
	return false
}

// outermostCard returns the first card, in pre-order, that holds target.
func outermostCard(root, target fyne.CanvasObject) *widget.Card {
	if card, ok := root.(*widget.Card); ok && contains(card, target) {
		return card
	}
	for _, c := range children(root) {
		if card := outermostCard(c, target); card != nil {
			return card
		}
	}
	return nil
}

func TestLayoutTree(t *testing.T) {
	v, _, a := newTestView(t, "ru-RU")
	w := a.NewWindow("souls")
	w.SetContent(v.Content())

	root := w.Content()
	for name, obj := range map[string]fyne.CanvasObject{
		"mob button":    v.mobButton,
		"player button": v.playerButton,
		"history":       v.history.Content(),
		"stats":         v.stats.Content(),
		"progress":      v.progress,
	} {
		assert.True(t, contains(root, obj), name)
	}

	soulCard := outermostCard(root, v.sparkle)
	require.NotNil(t, soulCard)
	stack, ok := soulCard.Content.(*fyne.Container)
	require.True(t, ok)
	require.Len(t, stack.Objects, 2)
	assert.True(t, contains(stack.Objects[0], v.totalText))
	assert.True(t, contains(stack.Objects[0], v.mobButton))
	assert.True(t, contains(stack.Objects[0], v.playerButton))
	assert.True(t, contains(stack.Objects[1], v.sparkle))
	assert.False(t, contains(soulCard, v.history.Content()))
}
