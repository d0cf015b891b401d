package category

// wordBank maps each category to its member words. A round picks two
// categories and quizzes words drawn from both.
type wordSet struct {
	Name  string
	Words []string
}

var wordBank = []wordSet{
	{Name: "Animals", Words: []string{
		"dog", "cat", "horse", "eagle", "shark", "rabbit", "tiger", "whale",
		"sparrow", "lizard", "camel", "otter",
	}},
	{Name: "Fruits", Words: []string{
		"apple", "banana", "cherry", "mango", "grape", "peach", "plum", "kiwi",
		"lemon", "melon", "papaya", "fig",
	}},
	{Name: "Vehicles", Words: []string{
		"car", "truck", "bicycle", "train", "tram", "scooter", "ferry", "plane",
		"bus", "kayak", "sled", "van",
	}},
	{Name: "Tools", Words: []string{
		"hammer", "wrench", "pliers", "drill", "saw", "chisel", "file", "clamp",
		"level", "trowel", "axe", "vise",
	}},
	{Name: "Instruments", Words: []string{
		"piano", "violin", "drum", "flute", "cello", "trumpet", "harp", "oboe",
		"guitar", "banjo", "tuba", "organ",
	}},
	{Name: "Clothing", Words: []string{
		"shirt", "jacket", "scarf", "glove", "sock", "boot", "hat", "belt",
		"coat", "dress", "vest", "sandal",
	}},
}
