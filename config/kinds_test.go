package config

import (
	"math/rand"
	"testing"
)

func TestKindAttributes(t *testing.T) {
	tests := []struct {
		kind     KindID
		category Category
		speed    float64
		w, h     float64
		sound    string
		image    string
	}{
		{KindAttackNormal, CategoryAttack, 7, 25, 25, "normal", "normal"},
		{KindAttackFirst, CategoryAttack, 10, 30, 30, "first", "first"},
		{KindItemPortion, CategoryItem, 7, 25, 25, "recovery", "portion"},
		{KindItemSpeedUp, CategoryItem, 10, 30, 30, "powerup", "powerup"},
		{KindItemBig, CategoryItem, 5, 45, 45, "big", "big"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if !tt.kind.Valid() {
				t.Fatalf("%v should be valid", tt.kind)
			}
			if got := tt.kind.Category(); got != tt.category {
				t.Errorf("Category() = %v, want %v", got, tt.category)
			}
			if got := tt.kind.Speed(); got != tt.speed {
				t.Errorf("Speed() = %v, want %v", got, tt.speed)
			}
			w, h := tt.kind.Scale()
			if w != tt.w || h != tt.h {
				t.Errorf("Scale() = %vx%v, want %vx%v", w, h, tt.w, tt.h)
			}
			if got := tt.kind.SoundKey(); got != tt.sound {
				t.Errorf("SoundKey() = %q, want %q", got, tt.sound)
			}
			if got := tt.kind.ImageKey(); got != tt.image {
				t.Errorf("ImageKey() = %q, want %q", got, tt.image)
			}
		})
	}
}

func TestEveryKindMovesAndHasSize(t *testing.T) {
	for _, k := range append(append([]KindID{}, AttackKinds...), ItemKinds...) {
		if k.Speed() <= 0 {
			t.Errorf("%v: speed %v should be positive", k, k.Speed())
		}
		w, h := k.Scale()
		if w <= 0 || h <= 0 {
			t.Errorf("%v: scale %vx%v should be positive", k, w, h)
		}
	}
}

func TestCategoryListsMatchTable(t *testing.T) {
	for _, k := range AttackKinds {
		if k.Category() != CategoryAttack {
			t.Errorf("%v listed as attack but is %v", k, k.Category())
		}
	}
	for _, k := range ItemKinds {
		if k.Category() != CategoryItem {
			t.Errorf("%v listed as item but is %v", k, k.Category())
		}
	}
	if len(AttackKinds)+len(ItemKinds) != len(Kinds) {
		t.Errorf("kind lists cover %d kinds, table has %d", len(AttackKinds)+len(ItemKinds), len(Kinds))
	}
}

func TestUndefinedKindPanics(t *testing.T) {
	lookups := map[string]func(KindID){
		"Speed":    func(k KindID) { k.Speed() },
		"Scale":    func(k KindID) { k.Scale() },
		"SoundKey": func(k KindID) { k.SoundKey() },
		"ImageKey": func(k KindID) { k.ImageKey() },
		"Category": func(k KindID) { k.Category() },
	}

	for _, k := range []KindID{0, KindItemBig + 1, -3} {
		if k.Valid() {
			t.Fatalf("%v should not be valid", k)
		}
		for name, lookup := range lookups {
			func() {
				defer func() {
					if recover() == nil {
						t.Errorf("%s(%d) did not panic", name, int(k))
					}
				}()
				lookup(k)
			}()
		}
	}
}

func TestRandomKindsStayInCategory(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	seenAttack := map[KindID]bool{}
	seenItem := map[KindID]bool{}

	for i := 0; i < 500; i++ {
		a := RandomAttackKind(r)
		if a.Category() != CategoryAttack {
			t.Fatalf("RandomAttackKind returned %v", a)
		}
		seenAttack[a] = true

		it := RandomItemKind(r)
		if it.Category() != CategoryItem {
			t.Fatalf("RandomItemKind returned %v", it)
		}
		seenItem[it] = true
	}

	if len(seenAttack) != len(AttackKinds) {
		t.Errorf("attack draws covered %d of %d kinds", len(seenAttack), len(AttackKinds))
	}
	if len(seenItem) != len(ItemKinds) {
		t.Errorf("item draws covered %d of %d kinds", len(seenItem), len(ItemKinds))
	}
}
