package game

import (
	"fmt"
	"strings"

	"github.com/27achang/2024WinterFinal/internal/models"
)

// Score compares the accusation guess with answer.
func Score(guess, answer models.Answer, stats models.Stats) models.Outcome {
	o := models.Outcome{
		Guess:          guess,
		Answer:         answer,
		SuspectCorrect: guess.Suspect == answer.Suspect,
		WeaponCorrect:  guess.Weapon == answer.Weapon,
		RoomCorrect:    guess.Room == answer.Room,
		Stats:          stats,
	}

	reveal := revealText(answer)
	switch o.CorrectCount() {
	case 3:
		o.Result = models.ResultSolved
		o.Message = fmt.Sprintf("Congratulations, detective! %s Thompson can finally rest in peace.", reveal)
	case 2:
		o.Result = models.ResultPartial
		o.Message = fmt.Sprintf("You were nearly there! %s", reveal)
	case 1:
		o.Result = models.ResultPartial
		o.Message = fmt.Sprintf("Well done on the %s, but that wasn't enough to convict. %s", correctField(o), reveal)
	default:
		o.Result = models.ResultFailed
		o.Message = fmt.Sprintf("The killer got away this time. %s Better luck on your next case.", reveal)
	}
	return o
}

// TimedOut is the outcome of a game where the detective ran out of turns.
func TimedOut(answer models.Answer, stats models.Stats) models.Outcome {
	return models.Outcome{
		Result:  models.ResultTimedOut,
		Answer:  answer,
		Message: fmt.Sprintf("You ran out of time and the killer fled the country. %s", revealText(answer)),
		Stats:   stats,
	}
}

func revealText(answer models.Answer) string {
	return fmt.Sprintf("It was %s with the %s in the %s.",
		answer.Suspect, strings.ToLower(answer.Weapon.String()), strings.ToLower(answer.Room.String()))
}

func correctField(o models.Outcome) string {
	switch {
	case o.SuspectCorrect:
		return "suspect"
	case o.WeaponCorrect:
		return "weapon"
	default:
		return "room"
	}
}
