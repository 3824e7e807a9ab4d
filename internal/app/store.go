// internal/app/store.go
package app

import (
	"errors"
	"fmt"

	"go-crown-quest/internal/audio"
	"go-crown-quest/internal/encounter"
	"go-crown-quest/internal/event"
)

var (
	ErrNoStore         = errors.New("no store is open")
	ErrNotEnoughGold   = errors.New("not enough gold")
	ErrNotForSale      = errors.New("item cannot be sold")
	ErrNoSuchOffer     = errors.New("no such offer")
	ErrItemNotInBag    = errors.New("item is not in the bag")
	ErrRecruitsAreGone = errors.New("recruits already hired")
)

func (g *Game) openStore() (*encounter.Store, error) {
	w := g.TopWindow()
	if w == nil || w.Type != encounter.DialogStore || w.Store == nil {
		return nil, ErrNoStore
	}
	return w.Store, nil
}

// BuyItem покупает предмет из открытой лавки. Все копии этого предмета
// пропадают с прилавка.
func (g *Game) BuyItem(itemID int) error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	found := false
	for _, id := range store.Items {
		if id == itemID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("item %d: %w", itemID, ErrNoSuchOffer)
	}
	item, _ := g.Lib.Item(itemID)
	if g.Player.Gold < item.Cost {
		return ErrNotEnoughGold
	}
	g.Player.Gold -= item.Cost
	g.AddItem(itemID)

	kept := store.Items[:0]
	for _, id := range store.Items {
		if id != itemID {
			kept = append(kept, id)
		}
	}
	store.Items = kept

	g.PlaySound(audio.Blip)
	g.Dispatcher.Emit(event.GoldChanged, g.Player.Gold)
	return nil
}

// SellItem продает предмет из сумки. Корону продать нельзя.
func (g *Game) SellItem(itemID int) error {
	if _, err := g.openStore(); err != nil {
		return err
	}
	if itemID == g.startingItem {
		return ErrNotForSale
	}
	item, _ := g.Lib.Item(itemID)
	if !g.Player.RemoveItem(itemID, item.Stats) {
		return ErrItemNotInBag
	}
	g.Player.Gold += item.SellCost
	g.PlaySound(audio.Blip)
	g.Dispatcher.Emit(event.ItemsChanged, g.Player.Items)
	g.Dispatcher.Emit(event.GoldChanged, g.Player.Gold)
	return nil
}

// Recruit нанимает первое предложение башни. Бойцы вливаются в армию героя.
func (g *Game) Recruit() error {
	store, err := g.openStore()
	if err != nil {
		return err
	}
	if len(store.Recruits) == 0 {
		return ErrRecruitsAreGone
	}
	offer := store.Recruits[0]
	if g.Player.Gold < offer.Cost {
		return ErrNotEnoughGold
	}
	g.Player.Gold -= offer.Cost
	g.Player.Army.Stack += offer.Stack
	store.Recruits = store.Recruits[1:]

	g.PlaySound(audio.Blip)
	g.Dispatcher.Emit(event.GoldChanged, g.Player.Gold)
	return nil
}
