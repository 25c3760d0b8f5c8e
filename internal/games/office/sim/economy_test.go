package sim

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/office-chase/internal/core"
	"github.com/vovakirdan/office-chase/internal/games/office/maze"
)

func TestInteractDamagesComputer(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(10, 6)
	s.Props = []Prop{{ID: 1, Kind: Computer, Pos: at(11, 6)}}

	next, ev := Tick(s, NewInput(true), rand.New(rand.NewSource(3)))

	p := next.Props[0]
	if !p.Damaged || p.DamageTicks <= 0 {
		t.Fatalf("computer not damaged: %+v", p)
	}
	if len(ev.Damaged) != 1 || ev.Damaged[0].Kind != Computer {
		t.Errorf("Damaged events = %+v", ev.Damaged)
	}
	if len(next.Coins) != 3 || ev.CoinsSpawned != 3 {
		t.Fatalf("spawned %d coins (event %d), want 3", len(next.Coins), ev.CoinsSpawned)
	}

	seen := map[maze.Cell]bool{}
	for _, c := range next.Coins {
		x, y := c.Pos.Cell()
		cell := maze.C(x, y)
		if seen[cell] {
			t.Errorf("two coins on cell %v", cell)
		}
		seen[cell] = true
		if !next.Grid.CanOccupy(c.Pos, next.Cfg.CoinFootprint) {
			t.Errorf("coin at %v is not footprint-clear", c.Pos)
		}
		if c.From != p.Pos {
			t.Errorf("coin bounces from %v, want the computer at %v", c.From, p.Pos)
		}
	}

	// the original state is untouched
	if s.Props[0].Damaged || len(s.Coins) != 0 {
		t.Error("Tick mutated its input state")
	}
}

func TestInteractPicksNearestItem(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = core.V(10.4, 6.5)
	s.Props = []Prop{
		{ID: 1, Kind: WallArt, Pos: at(11, 6)},
		{ID: 2, Kind: Coworker, Pos: at(9, 6)},
	}

	next, _ := Tick(s, NewInput(true), rand.New(rand.NewSource(1)))

	if next.Props[0].Damaged || !next.Props[1].Damaged {
		t.Errorf("expected only the nearer coworker damaged: %+v", next.Props)
	}
	if next.Props[1].DamageTicks != next.Cfg.CoworkerDamageTicks {
		t.Errorf("coworker damage timer = %d, want %d", next.Props[1].DamageTicks, next.Cfg.CoworkerDamageTicks)
	}
}

func TestInteractOutOfReachDoesNothing(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(10, 6)
	s.Props = []Prop{{ID: 1, Kind: Computer, Pos: at(13, 6)}}

	next, ev := Tick(s, NewInput(true), rand.New(rand.NewSource(1)))
	if next.Props[0].Damaged || len(ev.Damaged) != 0 || len(next.Coins) != 0 {
		t.Error("item two cells away should not be damaged")
	}
}

func TestInteractDrinksCoffee(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(10, 6)
	s.PowerUps = []PowerUp{{ID: 1, Pos: at(10, 7)}}

	next, ev := Tick(s, NewInput(true), rand.New(rand.NewSource(1)))

	if len(next.PowerUps) != 0 {
		t.Error("coffee should be removed")
	}
	if ev.PowerUpsConsumed != 1 {
		t.Errorf("PowerUpsConsumed = %d", ev.PowerUpsConsumed)
	}
	if next.Player.BoostTicks != next.Cfg.BoostTicks {
		t.Errorf("BoostTicks = %d, want %d", next.Player.BoostTicks, next.Cfg.BoostTicks)
	}
}

func TestInteractScaresAdjacentExecutive(t *testing.T) {
	s := roomState(room(24, 14))
	s.Player.Pos = at(12, 7)
	s.Executives = []Executive{
		{ID: 1, Pos: at(13, 7), Facing: core.V(1, 0)},
		{ID: 2, Pos: at(18, 7), Facing: core.V(1, 0)},
	}
	// both face away from the player; the closed gate keeps them still
	next, ev := Tick(s, NewInput(true), fixedRand{f: 0.99})

	if !next.Executives[0].IsScared() {
		t.Error("adjacent executive should be scared")
	}
	if next.Executives[1].IsScared() {
		t.Error("distant executive should keep patrolling")
	}
	if len(ev.Scared) != 1 || ev.Scared[0] != 1 {
		t.Errorf("Scared events = %v", ev.Scared)
	}
	if ev.CoinsSpawned != s.Cfg.CoinsPerScare {
		t.Errorf("CoinsSpawned = %d, want %d", ev.CoinsSpawned, s.Cfg.CoinsPerScare)
	}
}

func TestExpiredCoinAwardsNothing(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(3, 3)
	s.Coins = []Coin{{ID: 1, Pos: at(3, 3), Value: 10, Bounce: s.Cfg.BounceTicks, Expire: 1}}

	next, ev := Tick(s, Input{}, fixedRand{})

	if ev.ScoreDelta != 0 {
		t.Errorf("ScoreDelta = %d, want 0 for an expired coin", ev.ScoreDelta)
	}
	if ev.CoinsExpired != 1 || len(next.Coins) != 0 {
		t.Errorf("coin should expire: expired=%d remaining=%d", ev.CoinsExpired, len(next.Coins))
	}
}

func TestCoinCollectedOnce(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(5, 5)
	s.Coins = []Coin{{ID: 1, Pos: at(5, 5), Value: 10, Bounce: s.Cfg.BounceTicks, Expire: 500}}

	s, ev := Tick(s, Input{}, fixedRand{})
	if ev.ScoreDelta != 10 || ev.CoinsCollected != 1 {
		t.Fatalf("first tick: ScoreDelta=%d collected=%d", ev.ScoreDelta, ev.CoinsCollected)
	}

	total := ev.ScoreDelta
	for i := 0; i < s.Cfg.PopTicks+5; i++ {
		s, ev = Tick(s, Input{}, fixedRand{})
		total += ev.ScoreDelta
	}
	if total != 10 {
		t.Errorf("coin paid out %d in total, want 10", total)
	}
	if len(s.Coins) != 0 {
		t.Errorf("collected coin should be gone after its pop animation, %d left", len(s.Coins))
	}
}

func TestBouncingCoinCannotBeCollected(t *testing.T) {
	s := roomState(room(20, 12))
	s.Player.Pos = at(5, 5)
	s.Coins = []Coin{{ID: 1, Pos: at(5, 5), Value: 10, Expire: 500}}

	for i := 0; i < s.Cfg.BounceTicks-1; i++ {
		var ev Events
		s, ev = Tick(s, Input{}, fixedRand{})
		if ev.CoinsCollected != 0 {
			t.Fatalf("coin collected mid-bounce at tick %d", i)
		}
	}
	_, ev := Tick(s, Input{}, fixedRand{})
	if ev.CoinsCollected != 1 {
		t.Error("coin should be collectable once it lands")
	}
}

func TestDamageTimers(t *testing.T) {
	s := roomState(room(20, 12))
	s.Props = []Prop{
		{ID: 1, Kind: Computer, Pos: at(3, 3), Damaged: true, DamageTicks: 1},
		{ID: 2, Kind: Coworker, Pos: at(6, 3), Damaged: true, DamageTicks: 1},
		{ID: 3, Kind: WallArt, Pos: at(9, 3), Damaged: true, DamageTicks: 5},
	}

	next, ev := Tick(s, Input{}, fixedRand{})

	if ev.PropsRemoved != 1 {
		t.Errorf("PropsRemoved = %d, want 1", ev.PropsRemoved)
	}
	if len(next.Props) != 2 {
		t.Fatalf("props left = %d, want 2", len(next.Props))
	}
	if next.Props[0].Kind != Coworker || next.Props[0].Damaged {
		t.Errorf("coworker should recover: %+v", next.Props[0])
	}
	if next.Props[1].DamageTicks != 4 {
		t.Errorf("wall art timer = %d, want 4", next.Props[1].DamageTicks)
	}
}

func TestScheduledDrop(t *testing.T) {
	tests := []struct {
		name    string
		cap     int
		wantNew int
	}{
		{"below cap", 5, 1},
		{"at cap", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := roomState(room(24, 14))
			s.Cfg.DropCap = tt.cap
			s.DropTimer = 1
			s.Player.Pos = at(2, 2)
			s.Executives = []Executive{{ID: 1, Pos: at(12, 7), Facing: core.V(0, -1)}}

			next, ev := Tick(s, Input{}, rand.New(rand.NewSource(9)))

			if ev.ItemsDropped != tt.wantNew {
				t.Errorf("ItemsDropped = %d, want %d", ev.ItemsDropped, tt.wantNew)
			}
			if got := len(next.Props) + len(next.PowerUps); got != tt.wantNew {
				t.Errorf("items on floor = %d, want %d", got, tt.wantNew)
			}
			if next.DropTimer != s.Cfg.DropInterval {
				t.Errorf("DropTimer = %d, want reset to %d", next.DropTimer, s.Cfg.DropInterval)
			}
		})
	}
}

func TestCoinDropFromExecutive(t *testing.T) {
	s := roomState(room(24, 14))
	s.Cfg.CoinDropInterval = 10
	s.CoinDropTimer = 1
	s.Player.Pos = at(2, 2)
	s.Executives = []Executive{{ID: 1, Pos: at(12, 7), Facing: core.V(0, -1)}}

	next, ev := Tick(s, Input{}, rand.New(rand.NewSource(2)))

	if ev.CoinsSpawned != 1 || len(next.Coins) != 1 {
		t.Errorf("expected one dropped coin, got event %d, coins %d", ev.CoinsSpawned, len(next.Coins))
	}
	if next.CoinDropTimer != 10 {
		t.Errorf("CoinDropTimer = %d, want 10", next.CoinDropTimer)
	}
}
