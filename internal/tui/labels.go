package tui

import (
	"fmt"

	"github.com/lox/janken/internal/janken"
)

// Labels holds the user-facing strings for one language
type Labels struct {
	Title    string
	Hands    map[janken.Hand]string
	Outcomes map[janken.Outcome]string

	Results     string
	Wins        string
	Losses      string
	Draws       string
	PlayAgain   string
	ShowResults string
	Quit        string
}

var EnglishLabels = Labels{
	Title: "Janken",
	Hands: map[janken.Hand]string{
		janken.Rock:     "Rock",
		janken.Scissors: "Scissors",
		janken.Paper:    "Paper",
	},
	Outcomes: map[janken.Outcome]string{
		janken.Win:  "Win!",
		janken.Lose: "Lose!",
		janken.Draw: "Draw!",
	},
	Results:     "Results",
	Wins:        "Wins",
	Losses:      "Losses",
	Draws:       "Draws",
	PlayAgain:   "play again",
	ShowResults: "results",
	Quit:        "quit",
}

var JapaneseLabels = Labels{
	Title: "じゃんけん",
	Hands: map[janken.Hand]string{
		janken.Rock:     "グー",
		janken.Scissors: "チョキ",
		janken.Paper:    "パー",
	},
	Outcomes: map[janken.Outcome]string{
		janken.Win:  "勝ち!",
		janken.Lose: "負け!",
		janken.Draw: "あいこ!",
	},
	Results:     "結果",
	Wins:        "勝ち",
	Losses:      "負け",
	Draws:       "あいこ",
	PlayAgain:   "再戦する",
	ShowResults: "結果を見る",
	Quit:        "終了",
}

// LabelsFor returns the labels for a language code ("en" or "ja")
func LabelsFor(lang string) (Labels, error) {
	switch lang {
	case "en", "":
		return EnglishLabels, nil
	case "ja":
		return JapaneseLabels, nil
	default:
		return Labels{}, fmt.Errorf("unsupported language: %q", lang)
	}
}
