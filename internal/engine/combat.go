package engine

import (
	"context"

	"github.com/tatianab/dungeon-mini/internal/models"
)

// maxRounds bounds a fight in which neither side can hurt the other.
const maxRounds = 10000

// CombatState is where an encounter stands.
type CombatState int

const (
	Ongoing CombatState = iota
	PlayerWins
	PlayerLoses
)

// Blow is one attack in a fight.
type Blow struct {
	ByPlayer bool
	Damage   int
	TargetHP int // target's hit points after the blow
}

// CombatResult summarizes a resolved fight.
type CombatResult struct {
	State          CombatState
	PlayerAttacks  int
	MonsterAttacks int
}

func judge(p *models.Player, m *models.Monster) CombatState {
	switch {
	case p.HP <= 0:
		return PlayerLoses
	case m.HP <= 0:
		return PlayerWins
	}
	return Ongoing
}

// Resolve fights p against m until one of them drops. The player strikes
// first with Attack; the monster answers with Level unless it already fell.
// report is called after every blow.
func Resolve(p *models.Player, m *models.Monster, report func(Blow)) CombatResult {
	var res CombatResult
	for round := 0; round < maxRounds; round++ {
		if res.State = judge(p, m); res.State != Ongoing {
			return res
		}

		m.HP -= p.Attack
		res.PlayerAttacks++
		report(Blow{ByPlayer: true, Damage: p.Attack, TargetHP: m.HP})
		if m.HP <= 0 {
			res.State = PlayerWins
			return res
		}

		p.HP -= m.Level
		res.MonsterAttacks++
		report(Blow{Damage: m.Level, TargetHP: p.HP})
	}
	res.State = judge(p, m)
	return res
}

type fightCommand struct{}

func (fightCommand) Name() string { return "fight" }

func (fightCommand) Execute(_ context.Context, s *Session, _ []string) error {
	room := s.State.CurrentRoom()
	monster := room.Monster
	if monster == nil {
		return invalid(ErrNoMonster)
	}

	res := Resolve(s.State.Player, monster, func(b Blow) {
		if b.ByPlayer {
			s.printf("You hit %s for %d. Monster HP: %d\n", monster.Name, b.Damage, b.TargetHP)
			return
		}
		s.printf("The monster strikes back for %d. Your HP: %d\n", b.Damage, b.TargetHP)
	})

	switch res.State {
	case PlayerWins:
		room.Monster = nil
		s.println("Monster defeated!")
	case PlayerLoses:
		s.println("You died!")
		return errDefeat
	default:
		s.printf("Neither of you can wound the other. You back away from %s.\n", monster.Name)
	}
	return nil
}
