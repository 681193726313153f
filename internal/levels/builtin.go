package levels

// DefaultLevel is played when no level is named.
const DefaultLevel = "debug"

var builtins = []struct {
	id, title string
	rows      []string
}{
	{"debug", "Debug", []string{
		"0000000000000",
		"0000000000000",
		"0000000000000",
		"0000000000000",
		"0222222222220",
		"0111111111110",
		"0111111111110",
		"0222222222220",
		"0111111111110",
		"0111111111110",
		"0222222222220",
		"0111111111110",
		"0111111111110",
		"0222222222220",
		"0000000000000",
		"0000000000000",
		"0000000000000",
		"0000000000000",
	}},
	{"classic", "Classic", []string{
		".............",
		".............",
		"2222222222222",
		"2222222222222",
		"1111111111111",
		"1111111111111",
		"1111111111111",
		"1111111111111",
	}},
	{"checker", "Checker", []string{
		".............",
		".............",
		"1.2.1.2.1.2.1",
		".2.1.2.1.2.1.",
		"1.2.1.2.1.2.1",
		".2.1.2.1.2.1.",
		"1.2.1.2.1.2.1",
		".2.1.2.1.2.1.",
	}},
}

func init() {
	for _, b := range builtins {
		l, err := ParseTilesheet(b.id, b.title, b.rows)
		if err != nil {
			panic(err)
		}
		Register(l)
	}
}
