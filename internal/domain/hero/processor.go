package hero

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"liferpg/internal/pkg/idgen"
)

// Processor is the stateless transition function of the engine: it never
// touches storage and never retries, it only maps (Hero, Action, now) to an
// Outcome or a typed error. Habit id generation is injectable for tests.
type Processor struct {
	NewHabitID func() string
}

func NewProcessor() Processor {
	return Processor{NewHabitID: idgen.NewHabitID}
}

func (p Processor) Apply(h Hero, act Action, now time.Time) (Outcome, error) {
	h.EnsureCatalogs()
	switch act.Type {
	case ActionWater:
		return drinkWater(h, act, now)
	case ActionSleepStart:
		return startSleep(h, now)
	case ActionSleepEnd:
		return endSleep(h, now)
	case ActionTask:
		return completeTask(h, act, now)
	case ActionBuyReward:
		return buyReward(h, act, now)
	case ActionBiometrics:
		return updateBiometrics(h, act, now)
	case ActionHabitAdd:
		return p.addHabit(h, act, now)
	case ActionHabitEdit:
		return editHabit(h, act, now)
	case ActionHabitDelete:
		return deleteHabit(h, act, now)
	default:
		return Outcome{}, ErrUnknownAction
	}
}

// applyGain credits XP and HP in one place: HP clamps at MaxHP, lifetime XP
// and month currency move together, progress accounting is re-derived.
func applyGain(h *Hero, xp, hp int) {
	h.HP += hp
	if h.HP > MaxHP {
		h.HP = MaxHP
	}
	h.XPTotal += xp
	h.MonthCurrency += xp
	h.syncProgress()
}

func commit(h *Hero, now time.Time) {
	h.Version++
	h.UpdatedAt = now
}

func drinkWater(h Hero, act Action, now time.Time) (Outcome, error) {
	amount := act.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 0 {
		return Outcome{}, ErrInvalidAmount
	}
	xp := amount * WaterXPPerGlass
	hp := amount * WaterHPPerGlass
	h.WaterCount += amount
	applyGain(&h, xp, hp)
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{XPGained: xp, HPGained: hp},
		Entry: &HistoryEntry{
			EventType:   EventWater,
			Description: fmt.Sprintf("Drank %d glass(es) of water", amount),
			XPDelta:     xp,
			HPDelta:     hp,
			Timestamp:   now,
		},
	}, nil
}

func startSleep(h Hero, now time.Time) (Outcome, error) {
	if h.SleepStart != nil {
		return Outcome{}, ErrAlreadySleeping
	}
	start := now
	h.SleepStart = &start
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{SleepStart: start.Format(time.RFC3339)},
	}, nil
}

func endSleep(h Hero, now time.Time) (Outcome, error) {
	if h.SleepStart == nil {
		return Outcome{}, ErrNotSleeping
	}
	hours := now.Sub(*h.SleepStart).Hours()
	tier := sleepTierFor(hours)
	h.SleepStart = nil
	applyGain(&h, tier.XP, tier.HP)
	commit(&h, now)

	rounded := math.Round(hours*10) / 10
	msg := "Sleep " + strconv.FormatFloat(rounded, 'f', 1, 64) + "h credited"
	return Outcome{
		Hero: h,
		Delta: Delta{
			XPGained:      tier.XP,
			HPGained:      tier.HP,
			DurationHours: rounded,
			Message:       msg,
		},
		Entry: &HistoryEntry{
			EventType:   EventSleep,
			Description: msg,
			XPDelta:     tier.XP,
			HPDelta:     tier.HP,
			Timestamp:   now,
		},
	}, nil
}

func sleepTierFor(hours float64) SleepTier {
	for _, tier := range SleepTiers {
		if hours >= tier.MinHours {
			return tier
		}
	}
	return SleepTiers[len(SleepTiers)-1]
}

func completeTask(h Hero, act Action, now time.Time) (Outcome, error) {
	name, xp, ok := lookupTask(h, act.TaskID)
	if !ok {
		return Outcome{}, ErrTaskNotFound
	}
	for _, done := range h.CompletedTasks {
		if done == act.TaskID {
			return Outcome{}, ErrTaskAlreadyCompleted
		}
	}
	h.CompletedTasks = append(append([]string{}, h.CompletedTasks...), act.TaskID)
	applyGain(&h, xp, 0)
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{XPGained: xp},
		Entry: &HistoryEntry{
			EventType:   EventTask,
			Description: name,
			XPDelta:     xp,
			Timestamp:   now,
		},
	}, nil
}

// lookupTask resolves an id against the union of the system catalog and the
// custom habits; a habit shadowing a system id wins, like the original
// client-side merge did.
func lookupTask(h Hero, taskID string) (name string, xp int, ok bool) {
	for _, habit := range h.CustomHabits {
		if habit.ID == taskID {
			return habit.Name, habit.XP, true
		}
	}
	if spec, found := h.SystemTasks[taskID]; found {
		return spec.Name, spec.XP, true
	}
	return "", 0, false
}

func buyReward(h Hero, act Action, now time.Time) (Outcome, error) {
	reward, ok := h.Rewards[act.RewardID]
	if !ok {
		return Outcome{}, ErrRewardNotFound
	}
	if h.MonthCurrency < reward.Cost {
		return Outcome{}, ErrInsufficientFunds
	}
	h.MonthCurrency -= reward.Cost
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{Purchased: reward.Name},
		Entry: &HistoryEntry{
			EventType:   EventShop,
			Description: "Bought " + reward.Name,
			Timestamp:   now,
		},
	}, nil
}

func updateBiometrics(h Hero, act Action, now time.Time) (Outcome, error) {
	if act.Weight <= 0 || act.Weight > MaxWeightKG {
		return Outcome{}, ErrInvalidWeight
	}
	if !IsValidActivityFactor(act.ActivityFactor) {
		return Outcome{}, ErrInvalidActivityFactor
	}
	h.Weight = act.Weight
	h.ActivityFactor = act.ActivityFactor
	h.WaterGoal = waterGoalFor(act.Weight, act.ActivityFactor)
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{WaterGoal: h.WaterGoal},
	}, nil
}

func waterGoalFor(weight, factor float64) int {
	goal := int(math.Round(weight * factor / WaterGoalDivisor))
	if goal < MinWaterGoal {
		goal = MinWaterGoal
	}
	return goal
}

func (p Processor) addHabit(h Hero, act Action, now time.Time) (Outcome, error) {
	name := strings.TrimSpace(act.Name)
	if name == "" || act.XP <= 0 {
		return Outcome{}, ErrInvalidHabit
	}
	category := strings.TrimSpace(act.Category)
	if category == "" {
		category = "custom"
	}
	newID := p.NewHabitID
	if newID == nil {
		newID = idgen.NewHabitID
	}
	// Short random ids can collide; re-roll until the id is free.
	id := newID()
	for habitIDTaken(h.CustomHabits, id) {
		id = newID()
	}
	habit := CustomHabit{ID: id, Name: name, XP: act.XP, Category: category}
	h.CustomHabits = append(append([]CustomHabit{}, h.CustomHabits...), habit)
	commit(&h, now)
	return Outcome{
		Hero:  h,
		Delta: Delta{HabitID: habit.ID},
		Entry: &HistoryEntry{
			EventType:   EventHabit,
			Description: "Added habit: " + name,
			Timestamp:   now,
		},
	}, nil
}

func editHabit(h Hero, act Action, now time.Time) (Outcome, error) {
	name := strings.TrimSpace(act.Name)
	if name == "" || act.XP <= 0 {
		return Outcome{}, ErrInvalidHabit
	}
	habits := append([]CustomHabit{}, h.CustomHabits...)
	for i := range habits {
		if habits[i].ID == act.HabitID {
			habits[i].Name = name
			habits[i].XP = act.XP
			h.CustomHabits = habits
			commit(&h, now)
			return Outcome{
				Hero: h,
				Entry: &HistoryEntry{
					EventType:   EventHabit,
					Description: "Edited habit: " + name,
					Timestamp:   now,
				},
			}, nil
		}
	}
	return Outcome{}, ErrHabitNotFound
}

func habitIDTaken(habits []CustomHabit, id string) bool {
	for _, habit := range habits {
		if habit.ID == id {
			return true
		}
	}
	return false
}

// deleteHabit is idempotent: deleting an absent id succeeds without a
// ledger entry, a version bump, or a timestamp touch.
func deleteHabit(h Hero, act Action, now time.Time) (Outcome, error) {
	kept := make([]CustomHabit, 0, len(h.CustomHabits))
	removed := ""
	for _, habit := range h.CustomHabits {
		if habit.ID == act.HabitID {
			removed = habit.Name
			continue
		}
		kept = append(kept, habit)
	}
	if removed == "" {
		return Outcome{Hero: h}, nil
	}
	h.CustomHabits = kept
	commit(&h, now)
	return Outcome{
		Hero: h,
		Entry: &HistoryEntry{
			EventType:   EventHabit,
			Description: "Deleted habit: " + removed,
			Timestamp:   now,
		},
	}, nil
}
