package pattern

// question is one what-comes-next puzzle: a visible sequence and four
// candidate continuations.
type question struct {
	Sequence []string
	Options  [4]string
	Answer   int // index into Options
}

// questionBank holds every puzzle a session can draw from. A session
// shuffles the bank and takes the first N, so no puzzle repeats within
// a round.
var questionBank = []question{
	{
		Sequence: []string{"△", "○", "△", "○", "△"},
		Options:  [4]string{"△", "○", "□", "◇"},
		Answer:   1,
	},
	{
		Sequence: []string{"□", "□", "○", "□", "□"},
		Options:  [4]string{"□", "○", "△", "◇"},
		Answer:   1,
	},
	{
		Sequence: []string{"●", "○", "●", "○", "●"},
		Options:  [4]string{"●", "○", "□", "★"},
		Answer:   1,
	},
	{
		Sequence: []string{"△", "△", "○", "△", "△", "○", "△"},
		Options:  [4]string{"○", "△", "□", "●"},
		Answer:   1,
	},
	{
		Sequence: []string{"◇", "★", "★", "◇", "★", "★"},
		Options:  [4]string{"★", "◇", "○", "□"},
		Answer:   1,
	},
	{
		Sequence: []string{"■", "□", "■", "□", "■"},
		Options:  [4]string{"■", "□", "●", "○"},
		Answer:   1,
	},
	{
		Sequence: []string{"→", "↓", "←", "↑", "→", "↓"},
		Options:  [4]string{"↑", "←", "→", "↓"},
		Answer:   1,
	},
	{
		Sequence: []string{"↑", "→", "↓", "←", "↑", "→"},
		Options:  [4]string{"↑", "↓", "←", "→"},
		Answer:   1,
	},
	{
		Sequence: []string{"○", "○", "●", "●", "○", "○"},
		Options:  [4]string{"○", "●", "□", "△"},
		Answer:   1,
	},
	{
		Sequence: []string{"★", "○", "○", "★", "○", "○", "★"},
		Options:  [4]string{"★", "○", "●", "◇"},
		Answer:   1,
	},
	{
		Sequence: []string{"△", "□", "◇", "△", "□"},
		Options:  [4]string{"□", "△", "◇", "○"},
		Answer:   2,
	},
	{
		Sequence: []string{"●", "●", "●", "○", "●", "●", "●"},
		Options:  [4]string{"●", "△", "○", "□"},
		Answer:   2,
	},
	{
		Sequence: []string{"○", "△", "□", "○", "△"},
		Options:  [4]string{"○", "△", "□", "◇"},
		Answer:   2,
	},
	{
		Sequence: []string{"◇", "◇", "○", "◇", "◇", "○", "◇", "◇"},
		Options:  [4]string{"◇", "★", "○", "□"},
		Answer:   2,
	},
	{
		Sequence: []string{"■", "■", "□", "■", "■", "□", "■", "■"},
		Options:  [4]string{"■", "●", "○", "□"},
		Answer:   3,
	},
	{
		Sequence: []string{"←", "←", "→", "←", "←", "→", "←", "←"},
		Options:  [4]string{"←", "↑", "↓", "→"},
		Answer:   3,
	},
}
