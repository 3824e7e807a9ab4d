// internal/encounter/table.go
package encounter

import (
	"fmt"
	"log/slog"
	"strings"

	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/config"
	"go-crown-quest/internal/defs"
	"go-crown-quest/internal/unit"
	"go-crown-quest/internal/utils"
)

const (
	titleTime     = "Time is of the Essence"
	heroSprite    = 4
	chestSprite   = 9
	presentSprite = 10
	villageSprite = 16
	towerSprite   = 17
	obeliskSprite = 24
)

// Host — игровая сессия, в которую события вносят изменения при нажатии OK
type Host interface {
	RemoveEventAt(tileIndex int)
	AddGold(amount int)
	AddItem(itemID int)
	AddExp(exp int) (levels int, before, after unit.Hero)
	Day() int
	Win()
	Lose()
	Do(e *Event)
	PlaySound(name string)
}

type encounterCard struct {
	level int
	army  Army
}

// Table создает события. Колоды предметов и отрядов перемешиваются один раз
// при создании, и каждое событие забирает карты из них.
type Table struct {
	MaxDays int

	lib        *defs.Library
	rng        *utils.PRNGService
	storeItems []int
	giftItems  []int
	recruits   []defs.RecruitOffer
	cards      []encounterCard
}

// NewTable готовит колоды по определениям
func NewTable(lib *defs.Library, rng *utils.PRNGService) *Table {
	t := &Table{
		MaxDays:    config.MaxDays,
		lib:        lib,
		rng:        rng,
		storeItems: append([]int(nil), lib.StoreItems...),
		giftItems:  append([]int(nil), lib.GiftItems...),
		recruits:   append([]defs.RecruitOffer(nil), lib.Recruits...),
	}
	utils.Shuffle(rng, t.storeItems)
	utils.Shuffle(rng, t.giftItems)

	for _, e := range lib.Encounters {
		for i := 0; i < max(e.Copies, 1); i++ {
			stack := e.Min
			if e.Max > e.Min {
				stack = rng.RollNearest5(float64(e.Min), float64(e.Max))
			}
			t.cards = append(t.cards, encounterCard{level: e.Level, army: Army{Class: e.Class, Stack: stack}})
		}
	}
	utils.Shuffle(rng, t.recruits)
	utils.Shuffle(rng, t.cards)
	return t
}

func (t *Table) takeCard(level int) (Army, bool) {
	for i, c := range t.cards {
		if c.level == level {
			t.cards = append(t.cards[:i], t.cards[i+1:]...)
			return c.army, true
		}
	}
	return Army{}, false
}

func (t *Table) takeRecruit(level int) (defs.RecruitOffer, bool) {
	for i, r := range t.recruits {
		if r.Level == level {
			t.recruits = append(t.recruits[:i], t.recruits[i+1:]...)
			return r, true
		}
	}
	return defs.RecruitOffer{}, false
}

func shift(s *[]int) (int, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}

// Create строит событие. false означает, что для такого события нет шаблона
// или колода исчерпана.
func (t *Table) Create(host Host, kind Kind, level, tileIndex int) (*Event, bool) {
	e := &Event{Kind: kind, Level: level, TileIndex: tileIndex}
	switch kind {
	case KindBattle:
		army, ok := t.takeCard(level)
		if !ok {
			slog.Warn("no encounter left", "level", level, "tile", tileIndex)
			return nil, false
		}
		e.Label = "Battle"
		e.Sound = audio.ReadyToFight
		e.Battle = &Battle{Units: []Army{army}, TileIndex: tileIndex}

	case KindChest:
		gold := t.rng.RollNearest5(float64(level*20), float64(level*100))
		e.Label = "Chest"
		e.Sound = audio.Gold
		e.Dialog = &Dialog{
			Type:   DialogInfo,
			Title:  "Chest",
			Sprite: chestSprite,
			Text:   fmt.Sprintf("You found %d GOLD!", gold),
			OnOk: func() {
				host.RemoveEventAt(tileIndex)
				host.AddGold(gold)
			},
		}

	case KindPresent:
		itemID, ok := shift(&t.giftItems)
		if !ok {
			return nil, false
		}
		item, _ := t.lib.Item(itemID)
		text := fmt.Sprintf("You found: %s!", item.Name)
		if s := StatsText(item.Stats); s != "" {
			text += "  " + s
		}
		e.Label = "Present"
		e.Sound = audio.Item
		e.Dialog = &Dialog{
			Type:   DialogInfo,
			Title:  "Present",
			Sprite: presentSprite,
			Text:   text,
			OnOk: func() {
				host.RemoveEventAt(tileIndex)
				host.AddItem(itemID)
			},
		}

	case KindCastle:
		e.Label = "Castle"
		e.Sound = audio.BattleWin
		e.Dialog = &Dialog{
			Type:   DialogInfo,
			Title:  titleTime,
			Sprite: heroSprite,
			Text:   "You made it!  You brought us the Crown of Light and the Kingdom is saved!",
			OnOk:   host.Win,
		}

	case KindVillage:
		var items []int
		for i := 0; i < 2; i++ {
			if id, ok := shift(&t.storeItems); ok {
				items = append(items, id)
			}
		}
		e.Label = "Village"
		e.Sound = audio.VisitVillage
		e.Store = &Store{
			Text:   "You found a village! Need to buy or sell items?",
			Sprite: villageSprite,
			Items:  items,
		}

	case KindTower:
		offer, ok := t.takeRecruit(level)
		if !ok {
			slog.Warn("no recruits left", "level", level, "tile", tileIndex)
			return nil, false
		}
		e.Label = "Tower"
		e.Sound = audio.VisitVillage
		e.Store = &Store{
			Text:     "The Tower can provide you with fresh recruits.",
			Sprite:   towerSprite,
			Recruits: []defs.RecruitOffer{offer},
		}

	case KindObelisk:
		exp := t.rng.RollNearest5(float64(level*50), float64(level*100))
		e.Label = "Obelisk"
		e.Sound = audio.Exp
		e.Dialog = &Dialog{
			Type:   DialogInfo,
			Title:  "Obelisk",
			Sprite: obeliskSprite,
			Text:   fmt.Sprintf("The obelisk grants you %d experience!", exp),
			OnOk: func() {
				host.RemoveEventAt(tileIndex)
				levels, before, after := host.AddExp(exp)
				if levels > 0 {
					host.Do(LevelUpEvent(levels, before, after))
				}
			},
		}

	case KindDay1:
		e.Sound = audio.NewTurn
		e.Dialog = timeDialog(fmt.Sprintf("The first day is done, and %d days remain. Is there still enough time? The Kingdom is counting on you.", t.MaxDays-1), nil)

	case KindDayN:
		e.Sound = audio.NewTurn
		e.Dialog = timeDialog(fmt.Sprintf("Dawn of the next day... %d days remain to save the kingdom.", t.MaxDays-host.Day()), nil)

	case KindDay13:
		e.Sound = audio.Blip
		e.Dialog = timeDialog("Dawn of the FINAL day. You MUST save the Kingdom by day's end or all is lost.", nil)

	case KindDayLoss:
		e.Sound = audio.Fight
		e.Dialog = timeDialog("You have failed to save the Kingdom. We are lost.", host.Lose)

	case KindDayStart:
		e.Dialog = timeDialog(fmt.Sprintf("Hero! The kingdom is in peril!\n\nYou have %d days to bring the Crown of Light to the capital city in the EAST.  "+
			"The land is in chaos, and many of evil intent will try to stop you, but you must persevere.\n\n"+
			"If you fail in your quest, we will be lost.  Godspeed.", t.MaxDays),
			func() { host.PlaySound(audio.NewTurn) })

	default:
		return nil, false
	}
	return e, true
}

func timeDialog(text string, onOk func()) *Dialog {
	return &Dialog{Type: DialogInfo, Title: titleTime, Sprite: heroSprite, Text: text, OnOk: onOk}
}

// DayEventKind выбирает событие нового дня по числу оставшихся дней
// В коротких играх проигрыш и последний день важнее первого.
func DayEventKind(day, maxDays int) Kind {
	left := maxDays - day
	switch {
	case left <= 0:
		return KindDayLoss
	case left == 1:
		return KindDay13
	case day == 1:
		return KindDay1
	}
	return KindDayN
}

// LevelUpEvent — окно повышения уровня с приростом характеристик
func LevelUpEvent(levels int, before, after unit.Hero) *Event {
	var lines []string
	for _, s := range unit.HeroStats {
		diff := after.Bonus(s) - before.Bonus(s)
		if diff > 0 {
			lines = append(lines, fmt.Sprintf("%s: %d (+%d)", strings.ToUpper(string(s)), after.Bonus(s), diff))
		}
	}
	text := fmt.Sprintf("You gained %d level(s)!", levels)
	if len(lines) > 0 {
		text += "\n" + strings.Join(lines, "\n")
	}
	return &Event{
		Kind:  KindObelisk,
		Sound: audio.GainLevel,
		Dialog: &Dialog{
			Type:   DialogInfo,
			Title:  "Level Up!",
			Sprite: heroSprite,
			Text:   text,
		},
	}
}

// StatsText — "ATT: 1 DEF: 2" для бонусов предмета
func StatsText(stats map[string]int) string {
	var parts []string
	for _, s := range unit.HeroStats {
		if v, ok := stats[string(s)]; ok {
			parts = append(parts, fmt.Sprintf("%s: %d", strings.ToUpper(string(s)), v))
		}
	}
	return strings.Join(parts, " ")
}
