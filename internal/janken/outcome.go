package janken

// Outcome is the result of a round from the player's point of view
type Outcome int

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns the string representation of an outcome
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return "?"
	}
}

// Resolve decides the outcome of player against opponent
func Resolve(player, opponent Hand) Outcome {
	switch {
	case player.Beats(opponent):
		return Win
	case opponent.Beats(player):
		return Lose
	default:
		return Draw
	}
}

// Tally holds the running win/lose/draw counters for a session
type Tally struct {
	Wins   int
	Losses int
	Draws  int
}

// Record increments the counter for the given outcome
func (t *Tally) Record(o Outcome) {
	switch o {
	case Win:
		t.Wins++
	case Lose:
		t.Losses++
	case Draw:
		t.Draws++
	}
}

// Total returns the number of rounds recorded
func (t Tally) Total() int {
	return t.Wins + t.Losses + t.Draws
}

// WinRate returns wins as a fraction of all recorded rounds
func (t Tally) WinRate() float64 {
	if t.Total() == 0 {
		return 0
	}
	return float64(t.Wins) / float64(t.Total())
}
